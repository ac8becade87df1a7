package model

// GramsPerPound is the avoirdupois grams-to-pounds conversion constant.
// Purchase quantities must stay bit-for-bit compatible with previously
// issued orders, so this exact value is used everywhere pounds are derived.
const GramsPerPound = 453.592

// GramsToPounds converts a gram quantity to pounds.
func GramsToPounds(grams float64) float64 {
	return grams / GramsPerPound
}

// PoundsToGrams converts a pound quantity to grams.
func PoundsToGrams(lbs float64) float64 {
	return lbs * GramsPerPound
}
