package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RefundType distinguishes a full reversal from a partial one.
type RefundType string

const (
	RefundTypeFull    RefundType = "full"
	RefundTypePartial RefundType = "partial"
)

// IsValid reports whether the refund type is known.
func (t RefundType) IsValid() bool {
	return t == RefundTypeFull || t == RefundTypePartial
}

// RefundRecord is the append-only audit record of a processed refund.
// Invariant: RefundAmount <= OriginalAmount, and a full refund carries
// RefundAmount == OriginalAmount.
type RefundRecord struct {
	ID             uuid.UUID       `json:"id"`
	OrderID        uuid.UUID       `json:"order_id"`
	OriginalAmount decimal.Decimal `json:"original_amount"`
	RefundAmount   decimal.Decimal `json:"refund_amount"`
	RefundType     RefundType      `json:"refund_type"`
	Status         string          `json:"status"`
	ProcessedAt    time.Time       `json:"processed_at"`
}
