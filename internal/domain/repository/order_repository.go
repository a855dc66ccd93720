package repository

import (
	"context"

	"makan/internal/domain/entity"
	"makan/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateTransaction is returned when a settlement reference is
	// recorded twice.
	ErrDuplicateTransaction = errors.New("transaction already recorded")
)

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	// CreateOrder persists a new order with its line items.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order with its line items.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrderByIDForUpdate retrieves an order holding a row lock for the
	// rest of the surrounding transaction. Refund and verification use this
	// so concurrent mutations of the same order serialize.
	FindOrderByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrdersByUser retrieves a user's orders, newest first.
	FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindOrdersByStatus retrieves all orders in a given status, newest
	// first. An empty status returns every order. Back-office reporting only.
	FindOrdersByStatus(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error)

	// UpdateOrder persists the mutable fields of an order (status,
	// transaction id, refund annotation). Line items are immutable and are
	// never rewritten.
	UpdateOrder(ctx context.Context, order *entity.Order) error
}
