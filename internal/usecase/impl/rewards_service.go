// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/points"
	"makan/internal/domain/repository"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type rewardsService struct {
	balanceRepo repository.PointBalanceRepository
	converter   *points.Converter
	logger      *slog.Logger
}

// RewardsServiceParams holds dependencies for RewardsService, injected by Fx.
type RewardsServiceParams struct {
	fx.In

	BalanceRepo repository.PointBalanceRepository
	Converter   *points.Converter
	Logger      *slog.Logger
}

// NewRewardsService creates a new rewards service instance
func NewRewardsService(params RewardsServiceParams) usecase.RewardsUsecase {
	return &rewardsService{
		balanceRepo: params.BalanceRepo,
		converter:   params.Converter,
		logger:      params.Logger,
	}
}

// AwardPoints records a survey completion for a category. The stored value is
// replaced, not incremented: completing the same category twice keeps only the
// latest result.
func (s *rewardsService) AwardPoints(ctx context.Context, input *usecase.AwardPointsInput) (*entity.CategoryPointBalance, error) {
	if !input.Category.IsValid() {
		return nil, domainerrors.ErrUnknownCategory.WithDetails(string(input.Category))
	}
	if input.Points < entity.MinAwardPoints || input.Points > entity.MaxAwardPoints {
		return nil, domainerrors.ErrInvalidPoints
	}

	balance := &entity.CategoryPointBalance{
		UserID:    input.UserID,
		Category:  input.Category,
		Points:    input.Points,
		UpdatedAt: time.Now(),
	}

	if err := s.balanceRepo.UpsertBalance(ctx, balance); err != nil {
		return nil, errors.Wrap(err, "failed to upsert category balance")
	}

	s.logger.Info("Survey points awarded",
		slog.String("user_id", input.UserID.String()),
		slog.String("category", string(input.Category)),
		slog.Int("points", input.Points),
	)

	return balance, nil
}

// GetBalance derives the user's spendable balance from the stored category
// balances. No rows means zero, never an error.
func (s *rewardsService) GetBalance(ctx context.Context, userID uuid.UUID) (*entity.BalanceSnapshot, error) {
	balances, err := s.balanceRepo.FindBalancesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find balances by user")
	}

	return s.snapshot(userID, balances), nil
}

func (s *rewardsService) snapshot(userID uuid.UUID, balances []*entity.CategoryPointBalance) *entity.BalanceSnapshot {
	total := 0
	completed := make([]entity.SurveyCategory, 0, len(balances))
	byCategory := make(map[entity.SurveyCategory]int, len(balances))
	for _, balance := range balances {
		// A corrupted negative value must not poison the sum.
		if balance.Points <= 0 {
			continue
		}
		total += balance.Points
		byCategory[balance.Category] = balance.Points
	}

	// Report completed categories in draw order so the output is stable.
	for _, category := range entity.CategoryDrawOrder {
		if byCategory[category] > 0 {
			completed = append(completed, category)
		}
	}

	available := s.converter.ToCurrency(total)

	return &entity.BalanceSnapshot{
		UserID:              userID,
		TotalPoints:         total,
		CurrencyAvailable:   available,
		CurrencyDisplay:     s.converter.Format(available),
		CompletedCategories: completed,
	}
}
