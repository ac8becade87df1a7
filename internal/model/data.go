package model

// DefaultCatalog returns the built-in reference catalog: the kitchen's
// standardized 50 lb base batches and the ingredient category tables.
// Staff maintain the on-disk copy; this is the seed written when no
// catalog file exists yet.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Recipes: map[string]RecipeBaseBatch{
			"Beef & Quinoa Harvest": {
				TotalGrams:  22679.60,
				TotalPounds: 50.0,
				KcalPerKg:   1420,
				Ingredients: map[string]float64{
					"Ground beef (90% lean/10% fat)": 10205.82,
					"Beef Liver, Raw":                680.39,
					"Eggs, Liquid whole":             907.18,
					"Quinoa, cooked":                 3628.74,
					"Sweet Potato, cubed":            2721.55,
					"Carrots, diced":                 1814.37,
					"Green Beans, chopped":           1360.78,
					"Spinach":                        453.59,
					"Safflower Oil":                  340.19,
					"Salmon Oil":                     226.80,
					"Supplement Premix":              340.19,
				},
			},
			"Chicken & White Rice": {
				TotalGrams:  22679.60,
				TotalPounds: 50.0,
				KcalPerKg:   1330,
				Ingredients: map[string]float64{
					"Chicken Breast, Boneless Skinless": 9071.84,
					"Chicken Liver, Raw":                907.18,
					"Chicken Hearts":                    680.39,
					"White Rice, cooked":                4535.92,
					"Peas":                              1814.37,
					"Carrots, diced":                    1814.37,
					"Butternut Squash, cubed":           2267.96,
					"Kale, chopped":                     453.59,
					"Sunflower Oil":                     453.59,
					"Supplement Premix":                 680.39,
				},
			},
			"Turkey & Pumpkin Patch": {
				TotalGrams:  22679.60,
				TotalPounds: 50.0,
				KcalPerKg:   1280,
				Ingredients: map[string]float64{
					"Ground Turkey (93% lean)": 9525.43,
					"Turkey Liver, Raw":        907.18,
					"Eggs, Hard-boiled":        680.39,
					"Pumpkin Puree":            3175.14,
					"Brown Rice, cooked":       3628.74,
					"Zucchini, diced":          1814.37,
					"Cranberries":              907.18,
					"Broccoli Florets":         1360.78,
					"Flaxseed Oil":             226.80,
					"Supplement Premix":        453.59,
				},
			},
			"Pork & Apple Orchard": {
				TotalGrams:  22679.60,
				TotalPounds: 50.0,
				KcalPerKg:   1510,
				Ingredients: map[string]float64{
					"Ground Pork, Lean":              9071.84,
					"Pork Liver, Raw":                680.39,
					"Ground beef (90% lean/10% fat)": 1360.78,
					"Apples, cored & diced":          2267.96,
					"Oats, cooked":                   3628.74,
					"Sweet Potato, cubed":            2721.55,
					"Green Beans, chopped":           1360.78,
					"Cabbage, shredded":              907.18,
					"Coconut Oil":                    226.80,
					"Supplement Premix":              453.58,
				},
			},
		},
		Categories: []IngredientCategory{
			{
				Name:  ProteinCategoryName,
				Color: "#C62828",
				Icon:  "drumstick",
				Ingredients: []string{
					"Ground beef (90% lean/10% fat)",
					"Beef Liver, Raw",
					"Chicken Breast, Boneless Skinless",
					"Chicken Liver, Raw",
					"Chicken Hearts",
					"Ground Turkey (93% lean)",
					"Turkey Liver, Raw",
					"Ground Pork, Lean",
					"Pork Liver, Raw",
					"Eggs, Liquid whole",
					"Eggs, Hard-boiled",
				},
			},
			{
				Name:  "Produce",
				Color: "#2E7D32",
				Icon:  "carrot",
				Ingredients: []string{
					"Sweet Potato, cubed",
					"Carrots, diced",
					"Green Beans, chopped",
					"Spinach",
					"Peas",
					"Butternut Squash, cubed",
					"Kale, chopped",
					"Pumpkin Puree",
					"Zucchini, diced",
					"Cranberries",
					"Broccoli Florets",
					"Apples, cored & diced",
					"Cabbage, shredded",
				},
			},
			{
				Name:  "Grains",
				Color: "#F9A825",
				Icon:  "wheat",
				Ingredients: []string{
					"Quinoa, cooked",
					"White Rice, cooked",
					"Brown Rice, cooked",
					"Oats, cooked",
				},
			},
			{
				Name:  "Oils",
				Color: "#6A1B9A",
				Icon:  "droplet",
				Ingredients: []string{
					"Safflower Oil",
					"Salmon Oil",
					"Sunflower Oil",
					"Flaxseed Oil",
					"Coconut Oil",
				},
			},
			{
				Name:        "Supplements",
				Color:       "#00838F",
				Icon:        "capsule",
				Ingredients: []string{"Supplement Premix"},
			},
		},
	}
}
