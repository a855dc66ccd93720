package usecase

import (
	"context"

	"makan/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminUsecase is the trusted back-office surface: manual payment
// verification and guarded status transitions.
type AdminUsecase interface {
	// VerifyPayment marks an order's payment as verified against out-of-band
	// proof, assigning a verification transaction id and completing the
	// order. Calling it again on an already verified order is a no-op that
	// returns the order unchanged.
	VerifyPayment(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// ForceStatus transitions an order to the target status. Transitions
	// are still restricted to the allowed lifecycle edges; even a trusted
	// actor cannot resurrect a cancelled or refunded order.
	ForceStatus(ctx context.Context, orderID uuid.UUID, target entity.OrderStatus) (*entity.Order, error)

	// ListOrders returns orders for back-office reporting, newest first,
	// optionally filtered by status.
	ListOrders(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error)
}
