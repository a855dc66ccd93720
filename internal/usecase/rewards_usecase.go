// Package usecase defines the application-facing interfaces and their
// input/output DTOs. Implementations live in usecase/impl.
package usecase

import (
	"context"

	"makan/internal/domain/entity"

	"github.com/google/uuid"
)

// AwardPointsInput carries a survey completion result. Points arrive
// pre-clamped to the survey scoring range by the survey subsystem; the store
// still validates the range defensively.
type AwardPointsInput struct {
	UserID   uuid.UUID             `json:"-"`
	Category entity.SurveyCategory `json:"category" validate:"required"`
	Points   int                   `json:"points" validate:"required"`
}

// RewardsUsecase manages category-scoped earned points and the derived
// currency balance.
type RewardsUsecase interface {
	// AwardPoints records a survey completion, replacing the stored value
	// for that category.
	AwardPoints(ctx context.Context, input *AwardPointsInput) (*entity.CategoryPointBalance, error)

	// GetBalance returns the user's total points and derived currency
	// balance. A user with no recorded categories has a zero balance.
	GetBalance(ctx context.Context, userID uuid.UUID) (*entity.BalanceSnapshot, error)
}
