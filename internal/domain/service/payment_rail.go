// Package service defines domain service interfaces implemented by the infra
// layer or by external collaborators.
package service

import (
	"context"

	"makan/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SettlementRequest carries everything an external rail needs to settle an
// order total.
type SettlementRequest struct {
	OrderID uuid.UUID
	UserID  uuid.UUID
	Amount  decimal.Decimal
	Method  entity.PaymentMethod
}

// SettlementOutcome is the tagged result of a settlement attempt. A decline
// is a normal outcome, not an error: Success is false and Reason explains
// why. Errors are reserved for faults (the rail was unreachable).
type SettlementOutcome struct {
	Success       bool
	TransactionID string
	Reason        string
}

// PaymentRail abstracts one external payment method behind a settle call.
// Settlement is at-most-once: callers must not retry an ambiguous outcome,
// since a retry against a real gateway risks a double charge.
type PaymentRail interface {
	// Method returns the payment method this rail settles.
	Method() entity.PaymentMethod

	// Settle attempts to settle the amount. The context deadline bounds the
	// attempt; an expired deadline is reported as a decline, never left
	// pending.
	Settle(ctx context.Context, req *SettlementRequest) (*SettlementOutcome, error)
}
