package postgres

import (
	"context"

	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/repository"
	"makan/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pointBalanceRepository implements the repository.PointBalanceRepository interface.
type pointBalanceRepository struct {
	db *gorm.DB
}

// NewPointBalanceRepository is the constructor for pointBalanceRepository.
func NewPointBalanceRepository(db *gorm.DB) repository.PointBalanceRepository {
	return &pointBalanceRepository{
		db: db,
	}
}

// UpsertBalance writes the balance for (user, category), replacing any
// previously stored points value in a single statement.
func (repo *pointBalanceRepository) UpsertBalance(ctx context.Context, balance *entity.CategoryPointBalance) error {
	balanceM := fromPointBalanceDomain(balance)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "category"}},
			DoUpdates: clause.AssignmentColumns([]string{"points", "updated_at"}),
		}).
		Create(balanceM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required balance information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert point balance")
	}

	balance.UpdatedAt = balanceM.UpdatedAt

	return nil
}

// FindBalancesByUser retrieves all category balances for a user.
func (repo *pointBalanceRepository) FindBalancesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CategoryPointBalance, error) {
	return repo.findBalances(ctx, repo.db, userID)
}

// FindBalancesByUserForUpdate retrieves all category balances for a user
// holding row locks for the rest of the surrounding transaction.
func (repo *pointBalanceRepository) FindBalancesByUserForUpdate(ctx context.Context, userID uuid.UUID) ([]*entity.CategoryPointBalance, error) {
	locked := repo.db.Clauses(clause.Locking{Strength: "UPDATE"})

	return repo.findBalances(ctx, locked, userID)
}

func (repo *pointBalanceRepository) findBalances(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*entity.CategoryPointBalance, error) {
	var balanceModels []*model.CategoryPointBalanceModel

	if err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("category ASC").
		Find(&balanceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find point balances by user")
	}

	balances := make([]*entity.CategoryPointBalance, 0, len(balanceModels))
	for _, balanceM := range balanceModels {
		balances = append(balances, toPointBalanceDomain(balanceM))
	}

	return balances, nil
}

// SaveBalances persists the mutated balances of a drawdown. Callers must run
// this inside the same transaction that locked the rows.
func (repo *pointBalanceRepository) SaveBalances(ctx context.Context, balances []*entity.CategoryPointBalance) error {
	for _, balance := range balances {
		result := repo.db.WithContext(ctx).
			Model(&model.CategoryPointBalanceModel{}).
			Where("user_id = ? AND category = ?", balance.UserID, string(balance.Category)).
			Updates(map[string]interface{}{
				"points":     balance.Points,
				"updated_at": balance.UpdatedAt,
			})

		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save point balance")
		}

		if result.RowsAffected == 0 {
			return errors.Errorf("point balance row vanished for user %s category %s", balance.UserID, balance.Category)
		}
	}

	return nil
}

// --- Mapper Functions ---

// toPointBalanceDomain converts a GORM CategoryPointBalanceModel to a domain CategoryPointBalance entity.
func toPointBalanceDomain(data *model.CategoryPointBalanceModel) *entity.CategoryPointBalance {
	if data == nil {
		return nil
	}

	return &entity.CategoryPointBalance{
		UserID:    data.UserID,
		Category:  entity.SurveyCategory(data.Category),
		Points:    data.Points,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPointBalanceDomain converts a domain CategoryPointBalance entity to a GORM CategoryPointBalanceModel.
func fromPointBalanceDomain(data *entity.CategoryPointBalance) *model.CategoryPointBalanceModel {
	if data == nil {
		return nil
	}

	return &model.CategoryPointBalanceModel{
		UserID:    data.UserID,
		Category:  string(data.Category),
		Points:    data.Points,
		UpdatedAt: data.UpdatedAt,
	}
}
