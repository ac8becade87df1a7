package engine

import "time"

// Schedule holds the two dates attached to a purchase order.
type Schedule struct {
	NeededBy   time.Time // latest date ingredients must be in-hand
	PickupDate time.Time // date ingredients are collected from the vendor
}

// CalculateDates derives the order dates from a cook date. NeededBy is
// always the calendar day before the cook, independent of lead time;
// PickupDate is leadTimeDays before the cook. A lead time of zero puts
// pickup on the cook day itself, which is allowed.
func CalculateDates(cookDate time.Time, leadTimeDays int) Schedule {
	return Schedule{
		NeededBy:   cookDate.AddDate(0, 0, -1),
		PickupDate: cookDate.AddDate(0, 0, -leadTimeDays),
	}
}
