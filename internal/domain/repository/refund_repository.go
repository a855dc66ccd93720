package repository

import (
	"context"

	"makan/internal/domain/entity"

	"github.com/google/uuid"
)

// RefundRepository defines the interface for refund record persistence.
// Records are append-only audit entries owned by the order they reverse.
type RefundRepository interface {
	// CreateRefund persists a refund record.
	CreateRefund(ctx context.Context, refund *entity.RefundRecord) error

	// FindRefundsByOrder retrieves all refund records for an order, newest
	// first.
	FindRefundsByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.RefundRecord, error)
}
