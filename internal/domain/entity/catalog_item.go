package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogItem is the read-only view of a menu item served by the catalog
// collaborator. Checkout snapshots Name and Price from here so client-supplied
// prices are never trusted.
type CatalogItem struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
