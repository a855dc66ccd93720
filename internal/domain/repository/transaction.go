package repository

import (
	"context"

	"makan/internal/errors"
)

// ErrConcurrencyConflict is returned when the database reports a
// serialization failure or deadlock for a transactional unit. Callers may
// retry the whole unit against fresh state a bounded number of times.
var ErrConcurrencyConflict = errors.New("concurrent update conflict")

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM. The ledger relies on it for the atomicity
// contract: a drawdown and the order completion it pays for either both
// persist or neither does.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations within the
	// function use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so every operation inside Execute shares one connection and
// one lock scope.
type RepositoryFactory interface {
	// NewPointBalanceRepository returns a PointBalanceRepository bound to the current transaction.
	NewPointBalanceRepository() PointBalanceRepository

	// NewOrderRepository returns an OrderRepository bound to the current transaction.
	NewOrderRepository() OrderRepository

	// NewPaymentRepository returns a PaymentRepository bound to the current transaction.
	NewPaymentRepository() PaymentRepository

	// NewRefundRepository returns a RefundRepository bound to the current transaction.
	NewRefundRepository() RefundRepository
}
