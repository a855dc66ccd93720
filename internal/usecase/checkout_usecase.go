package usecase

import (
	"context"

	"makan/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutItemInput references a catalog item by id. Quantity must be
// positive; name and price are never accepted from the client.
type CheckoutItemInput struct {
	ItemID   uuid.UUID `json:"item_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"required,gt=0"`
}

// CheckoutInput is a structured order request, as produced by the ordering UI
// or the assistant's intent parser.
type CheckoutInput struct {
	UserID        uuid.UUID            `json:"-"`
	UserEmail     string               `json:"-"`
	Items         []CheckoutItemInput  `json:"items" validate:"required,min=1,dive"`
	PaymentMethod entity.PaymentMethod `json:"payment_method" validate:"required"`
}

// CheckoutUsecase is the order settlement coordinator: it owns the
// affordability check, the settlement, and the atomic persistence of the
// outcome.
type CheckoutUsecase interface {
	// Checkout settles and persists an order. Business failures
	// (insufficient balance, rail decline, invalid order) come back as
	// AppError values; the returned order is the persisted aggregate.
	Checkout(ctx context.Context, input *CheckoutInput) (*entity.Order, error)

	// GetOrderHistory returns the user's orders, newest first.
	GetOrderHistory(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}
