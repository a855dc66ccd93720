package service

import (
	"context"
)

// OrderEvent is published after an order settlement outcome commits, so
// downstream collaborators (receipts, notifications) can react without
// being part of the settlement transaction.
type OrderEvent struct {
	RequestID     string `json:"request_id,omitempty"` // For distributed tracing
	OrderID       string `json:"order_id"`
	UserID        string `json:"user_id"`
	Status        string `json:"status"`
	PaymentMethod string `json:"payment_method"`
	TotalAmount   string `json:"total_amount"` // Fixed 2-decimal rendering
	TransactionID string `json:"transaction_id,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order settlement event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
