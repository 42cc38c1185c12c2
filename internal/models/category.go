package models

// Category labels a transaction. The known set below is fixed, but a
// Category read from storage may carry any string: unknown values are
// preserved verbatim and aggregate as their own group rather than being
// rejected or folded into CategoryOther.
type Category string

const (
	CategoryFood           Category = "Food"
	CategoryTransportation Category = "Transportation"
	CategoryHousing        Category = "Housing"
	CategoryEntertainment  Category = "Entertainment"
	CategoryShopping       Category = "Shopping"
	CategoryUtilities      Category = "Utilities"
	CategoryHealthcare     Category = "Healthcare"
	CategoryEducation      Category = "Education"
	CategoryTravel         Category = "Travel"
	CategoryPersonal       Category = "Personal"
	CategorySalary         Category = "Salary"
	CategoryInvestment     Category = "Investment"
	CategoryGift           Category = "Gift"
	CategoryOther          Category = "Other"
)

// Categories lists the known categories in their display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransportation,
	CategoryHousing,
	CategoryEntertainment,
	CategoryShopping,
	CategoryUtilities,
	CategoryHealthcare,
	CategoryEducation,
	CategoryTravel,
	CategoryPersonal,
	CategorySalary,
	CategoryInvestment,
	CategoryGift,
	CategoryOther,
}

var knownCategories = func() map[Category]bool {
	m := make(map[Category]bool, len(Categories))
	for _, c := range Categories {
		m[c] = true
	}
	return m
}()

// Known reports whether the category is one of the fixed known set.
func (c Category) Known() bool {
	return knownCategories[c]
}
