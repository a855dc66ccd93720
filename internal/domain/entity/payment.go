package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the recorded outcome of a settlement. Only successful
// settlements are persisted; a declined rail leaves no payment record.
type PaymentStatus string

// PaymentStatusCompleted marks a successfully settled payment.
const PaymentStatusCompleted PaymentStatus = "completed"

// PaymentRecord is the append-only audit record of a successful settlement,
// one-to-one with a completed order via OrderID/TransactionID.
type PaymentRecord struct {
	TransactionID string          `json:"transaction_id"`
	OrderID       uuid.UUID       `json:"order_id"`
	UserID        uuid.UUID       `json:"user_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Status        PaymentStatus   `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}
