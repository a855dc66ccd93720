package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryPointBalance holds the most recently earned point value for one
// (user, category) pair. Awards replace the stored value rather than adding
// to it: completing the same category survey twice overwrites the first
// result. The invariant points >= 0 must hold across all mutations.
type CategoryPointBalance struct {
	UserID    uuid.UUID      `json:"user_id"`
	Category  SurveyCategory `json:"category"`
	Points    int            `json:"points"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// BalanceSnapshot is the derived view of a user's spendable balance. It is
// never stored independently: currency available is always the conversion of
// the summed category points, so the two can never drift apart.
type BalanceSnapshot struct {
	UserID              uuid.UUID        `json:"user_id"`
	TotalPoints         int              `json:"total_points"`
	CurrencyAvailable   decimal.Decimal  `json:"currency_available"`
	CurrencyDisplay     string           `json:"currency_display"`
	CompletedCategories []SurveyCategory `json:"completed_categories"`
}
