// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"makan/internal/domain/entity"

	"github.com/google/uuid"
)

// PointBalanceRepository defines the interface for category point balance
// persistence. Awards replace the stored value for a category; drawdowns
// mutate several categories as one logical unit inside a transaction.
type PointBalanceRepository interface {
	// UpsertBalance writes the balance for (user, category), replacing any
	// previously stored points value.
	UpsertBalance(ctx context.Context, balance *entity.CategoryPointBalance) error

	// FindBalancesByUser retrieves all category balances for a user.
	// Missing categories are simply absent; no rows means zero points.
	FindBalancesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CategoryPointBalance, error)

	// FindBalancesByUserForUpdate retrieves all category balances for a user
	// holding row locks for the rest of the surrounding transaction. This is
	// the serialization point for check-then-debit: a concurrent debit for
	// the same user blocks until the first transaction commits.
	FindBalancesByUserForUpdate(ctx context.Context, userID uuid.UUID) ([]*entity.CategoryPointBalance, error)

	// SaveBalances persists the mutated balances of a drawdown. Callers must
	// run this inside the same transaction that locked the rows.
	SaveBalances(ctx context.Context, balances []*entity.CategoryPointBalance) error
}
