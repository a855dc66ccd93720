package usecase

import (
	"context"

	"makan/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RefundInput describes a refund request against a completed order.
type RefundInput struct {
	OrderID uuid.UUID         `json:"-"`
	Amount  decimal.Decimal   `json:"amount" validate:"required"`
	Type    entity.RefundType `json:"type" validate:"required"`
}

// RefundUsecase validates and applies refunds. A refund is a bookkeeping
// action: it never re-credits points to the user's category balances.
type RefundUsecase interface {
	// Refund applies a full or partial refund to a completed order and
	// returns the audit record.
	Refund(ctx context.Context, input *RefundInput) (*entity.RefundRecord, error)

	// GetOrderRefunds returns the refund history of an order, newest first.
	GetOrderRefunds(ctx context.Context, orderID uuid.UUID) ([]*entity.RefundRecord, error)
}
