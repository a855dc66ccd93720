package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table. The ID is
// minted by the application so settlement can reference the order before the
// row exists. transaction_id carries a partial unique index in the schema so
// one settlement reference completes at most one order.
type OrderModel struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key"`
	UserID        uuid.UUID         `gorm:"type:uuid;not null;index"`
	UserEmail     string            `gorm:"type:text;not null"`
	TotalAmount   decimal.Decimal   `gorm:"type:decimal(12,2);not null"`
	PaymentMethod string            `gorm:"type:text;not null"`
	Status        string            `gorm:"type:text;not null;index"`
	TransactionID string            `gorm:"type:text"`
	RefundStatus  string            `gorm:"type:text"`
	RefundAmount  decimal.Decimal   `gorm:"type:decimal(12,2);not null;default:0"`
	Items         []OrderItemModel  `gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
// Rows are immutable snapshots of catalog items at checkout time.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemID    uuid.UUID       `gorm:"type:uuid;not null"`
	Name      string          `gorm:"type:text;not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Quantity  int             `gorm:"not null;check:quantity > 0"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
