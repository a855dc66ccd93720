// Package model contains the GORM-specific structs mapped to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryPointBalanceModel is the GORM-specific struct for the
// 'category_point_balances' table. The composite primary key (user_id,
// category) enforces one stored value per pair; awards replace it.
type CategoryPointBalanceModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Category  string    `gorm:"type:text;primaryKey"`
	Points    int       `gorm:"not null;check:points >= 0"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryPointBalanceModel) TableName() string {
	return "category_point_balances"
}
