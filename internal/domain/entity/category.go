// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// SurveyCategory is one of the fixed survey topics a user can earn points from.
// Each category holds an independent point pot.
type SurveyCategory string

const (
	CategoryLifestyle     SurveyCategory = "lifestyle"
	CategoryDigital       SurveyCategory = "digital"
	CategoryFood          SurveyCategory = "food"
	CategoryEntertainment SurveyCategory = "entertainment"
	CategoryTravel        SurveyCategory = "travel"
	CategoryHealth        SurveyCategory = "health"
	CategoryEducation     SurveyCategory = "education"
	CategoryFinance       SurveyCategory = "finance"
)

// CategoryDrawOrder is the fixed priority sequence used when a single spend
// must be satisfied from multiple category pots. A debit drains categories in
// this order; the slice is the single source of truth so the drawdown is
// deterministic and testable rather than depending on map iteration order.
var CategoryDrawOrder = []SurveyCategory{
	CategoryLifestyle,
	CategoryDigital,
	CategoryFood,
	CategoryEntertainment,
	CategoryTravel,
	CategoryHealth,
	CategoryEducation,
	CategoryFinance,
}

// IsValid reports whether the category is one of the fixed survey topics.
func (c SurveyCategory) IsValid() bool {
	for _, known := range CategoryDrawOrder {
		if c == known {
			return true
		}
	}

	return false
}

// MinAwardPoints and MaxAwardPoints bound a single survey award.
// The survey subsystem clamps its scoring to this range; the store
// rejects anything outside it as a caller error.
const (
	MinAwardPoints = 1
	MaxAwardPoints = 10
)
