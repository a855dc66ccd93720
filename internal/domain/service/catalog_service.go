package service

import (
	"context"

	"makan/internal/domain/entity"
	"makan/internal/errors"

	"github.com/google/uuid"
)

// ErrItemNotFound is returned when the catalog has no item with the given id.
var ErrItemNotFound = errors.New("catalog item not found")

// CatalogService is the read-only boundary to the menu catalog collaborator.
// Checkout re-fetches items through it so order line items snapshot
// authoritative names and prices, never client-supplied ones.
type CatalogService interface {
	// FindItem retrieves a catalog item by id.
	FindItem(ctx context.Context, id uuid.UUID) (*entity.CatalogItem, error)
}
