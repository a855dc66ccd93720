package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RefundRecordModel is the GORM-specific struct for the 'refund_records'
// table. Rows are append-only audit entries.
type RefundRecordModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	OriginalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	RefundAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	RefundType     string          `gorm:"type:text;not null"`
	Status         string          `gorm:"type:text;not null"`
	ProcessedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefundRecordModel) TableName() string {
	return "refund_records"
}
