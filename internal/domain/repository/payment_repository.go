package repository

import (
	"context"

	"makan/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentRepository defines the interface for payment record persistence.
// Records are append-only; there is no update surface.
type PaymentRepository interface {
	// CreatePayment persists a settlement record. A duplicate transaction id
	// returns ErrDuplicateTransaction so retried completions stay idempotent.
	CreatePayment(ctx context.Context, payment *entity.PaymentRecord) error

	// FindPaymentByOrder retrieves the payment record for a completed order.
	FindPaymentByOrder(ctx context.Context, orderID uuid.UUID) (*entity.PaymentRecord, error)
}
