package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentRecordModel is the GORM-specific struct for the 'payment_records'
// table. The settlement reference is the primary key, which is what makes a
// replayed settlement surface as a duplicate key error instead of a second
// row.
type PaymentRecordModel struct {
	TransactionID string          `gorm:"type:text;primary_key"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentMethod string          `gorm:"type:text;not null"`
	Status        string          `gorm:"type:text;not null"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentRecordModel) TableName() string {
	return "payment_records"
}
