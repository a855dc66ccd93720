package entity

import (
	"time"

	"makan/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order. Allowed transitions:
// pending -> completed | cancelled, completed -> refunded. cancelled and
// refunded are terminal.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusRefunded  OrderStatus = "refunded"
)

// IsValid reports whether the status is a known lifecycle state.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}

	return false
}

// PaymentMethod is the settlement rail chosen at checkout.
type PaymentMethod string

const (
	PaymentMethodPoints       PaymentMethod = "points"
	PaymentMethodGrabPay      PaymentMethod = "grabpay"
	PaymentMethodTouchNGo     PaymentMethod = "touchngo"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

// IsValid reports whether the payment method is supported.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodPoints, PaymentMethodGrabPay, PaymentMethodTouchNGo, PaymentMethodBankTransfer:
		return true
	}

	return false
}

// IsExternal reports whether settlement goes through an external rail rather
// than the internal points ledger.
func (m PaymentMethod) IsExternal() bool {
	return m.IsValid() && m != PaymentMethodPoints
}

// RefundStatus annotates a completed order that received a partial refund.
// A full refund moves the order status to refunded instead.
type RefundStatus string

const (
	RefundStatusNone    RefundStatus = ""
	RefundStatusPartial RefundStatus = "partial_refund"
)

// Sentinel errors for aggregate invariant violations. The usecase layer maps
// these onto the API-facing error taxonomy.
var (
	// ErrInvalidStatusTransition is returned when a status change does not
	// follow an allowed lifecycle edge.
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
	// ErrMissingTransactionID is returned when an order is completed without
	// a settlement reference.
	ErrMissingTransactionID = errors.New("transaction id required to complete order")
	// ErrRefundExceedsTotal is returned when a refund amount is larger than
	// the order total.
	ErrRefundExceedsTotal = errors.New("refund amount exceeds order total")
)

// OrderLineItem is an immutable snapshot of a catalog item at checkout time.
// Name and unit price are copied from the authoritative catalog so later
// catalog edits cannot rewrite order history.
type OrderLineItem struct {
	ItemID    uuid.UUID       `json:"item_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Subtotal returns unit price times quantity.
func (i OrderLineItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is the aggregate for a placed order. Items and TotalAmount are
// immutable after creation; Status, TransactionID and the refund fields are
// the only mutable state, and every mutation goes through the Mark* methods
// so the lifecycle invariants hold.
type Order struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	UserEmail     string          `json:"user_email"`
	Items         []OrderLineItem `json:"items"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Status        OrderStatus     `json:"status"`
	TransactionID string          `json:"transaction_id,omitempty"`
	RefundStatus  RefundStatus    `json:"refund_status,omitempty"`
	RefundAmount  decimal.Decimal `json:"refund_amount"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewOrder creates a pending order from snapshot line items. The total is
// always recomputed here from the items; callers never supply it.
func NewOrder(userID uuid.UUID, userEmail string, items []OrderLineItem, method PaymentMethod) *Order {
	now := time.Now()

	return &Order{
		ID:            uuid.New(),
		UserID:        userID,
		UserEmail:     userEmail,
		Items:         items,
		TotalAmount:   sumSubtotals(items),
		PaymentMethod: method,
		Status:        OrderStatusPending,
		RefundAmount:  decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func sumSubtotals(items []OrderLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}

	return total
}

// MarkCompleted transitions a pending order to completed with its settlement
// reference. A completed order with the same transaction id is a no-op so
// retried completions stay idempotent.
func (o *Order) MarkCompleted(transactionID string) error {
	if transactionID == "" {
		return ErrMissingTransactionID
	}
	if o.Status == OrderStatusCompleted && o.TransactionID == transactionID {
		return nil
	}
	if o.Status != OrderStatusPending {
		return ErrInvalidStatusTransition
	}

	o.Status = OrderStatusCompleted
	o.TransactionID = transactionID
	o.UpdatedAt = time.Now()

	return nil
}

// MarkCancelled transitions a pending order to cancelled.
func (o *Order) MarkCancelled() error {
	if o.Status != OrderStatusPending {
		return ErrInvalidStatusTransition
	}

	o.Status = OrderStatusCancelled
	o.UpdatedAt = time.Now()

	return nil
}

// UndoCompletion reverts an in-memory completion whose enclosing transaction
// rolled back, returning the order to pending so it can be re-marked or
// cancelled. Orders in any other state are left alone.
func (o *Order) UndoCompletion() {
	if o.Status != OrderStatusCompleted {
		return
	}

	o.Status = OrderStatusPending
	o.TransactionID = ""
	o.UpdatedAt = time.Now()
}

// MarkRefunded records a full refund. Only a completed order can be refunded,
// and the refund must equal the original total.
func (o *Order) MarkRefunded(amount decimal.Decimal) error {
	if o.Status != OrderStatusCompleted {
		return ErrInvalidStatusTransition
	}
	if !amount.Equal(o.TotalAmount) {
		return ErrRefundExceedsTotal
	}

	o.Status = OrderStatusRefunded
	o.RefundStatus = RefundStatusNone
	o.RefundAmount = amount
	o.UpdatedAt = time.Now()

	return nil
}

// ApplyPartialRefund annotates a completed order with a partial refund.
// The status itself does not change; only the annotation fields do.
func (o *Order) ApplyPartialRefund(amount decimal.Decimal) error {
	if o.Status != OrderStatusCompleted {
		return ErrInvalidStatusTransition
	}
	if amount.GreaterThan(o.TotalAmount) {
		return ErrRefundExceedsTotal
	}

	o.RefundStatus = RefundStatusPartial
	o.RefundAmount = amount
	o.UpdatedAt = time.Now()

	return nil
}

// CanTransitionTo reports whether moving to target follows an allowed edge.
// Used by the admin force-transition path so even a trusted actor cannot
// leave the state machine.
func (o *Order) CanTransitionTo(target OrderStatus) bool {
	switch o.Status {
	case OrderStatusPending:
		return target == OrderStatusCompleted || target == OrderStatusCancelled
	case OrderStatusCompleted:
		return target == OrderStatusRefunded
	default:
		return false
	}
}
