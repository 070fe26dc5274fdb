package models

// Spending categories that carry an explicit guideline
const (
	CategoryHousing        = "Housing"
	CategoryFood           = "Food"
	CategoryTransportation = "Transportation"
	CategoryEntertainment  = "Entertainment"
	CategoryShopping       = "Shopping"
	CategoryUtilities      = "Utilities"
	CategoryHealthcare     = "Healthcare"
	CategoryEducation      = "Education"
)

// AllCategories returns the categories with an explicit guideline in declaration order
func AllCategories() []string {
	return []string{
		CategoryHousing,
		CategoryFood,
		CategoryTransportation,
		CategoryEntertainment,
		CategoryShopping,
		CategoryUtilities,
		CategoryHealthcare,
		CategoryEducation,
	}
}

// IsKnownCategory reports whether name has an explicit guideline.
// The lookup is case-sensitive: "housing" falls back to the default guideline.
func IsKnownCategory(name string) bool {
	for _, category := range AllCategories() {
		if name == category {
			return true
		}
	}
	return false
}

// CategoryGuideline holds the ideal and high spending ratios (fractions of income) for a category
type CategoryGuideline struct {
	Ideal float64 `json:"ideal"`
	High  float64 `json:"high"`
}

// GuidelineEntry pairs a category name with its guideline for listing
type GuidelineEntry struct {
	Category  string            `json:"category"`
	Guideline CategoryGuideline `json:"guideline"`
	Default   bool              `json:"default,omitempty"`
}
