package impl

import (
	"context"
	"testing"

	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	mockRepo "makan/internal/mocks/repository"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRewardsService(balanceRepo *mockRepo.MockPointBalanceRepository) usecase.RewardsUsecase {
	return NewRewardsService(RewardsServiceParams{
		BalanceRepo: balanceRepo,
		Converter:   newTestConverter(),
		Logger:      newDiscardLogger(),
	})
}

func TestRewardsService_AwardPoints_ReplacesStoredValue(t *testing.T) {
	mockBalanceRepo := mockRepo.NewMockPointBalanceRepository(t)
	service := newRewardsService(mockBalanceRepo)

	ctx := context.Background()
	userID := uuid.New()

	mockBalanceRepo.EXPECT().
		UpsertBalance(ctx, mock.AnythingOfType("*entity.CategoryPointBalance")).
		Return(nil)

	balance, err := service.AwardPoints(ctx, &usecase.AwardPointsInput{
		UserID:   userID,
		Category: entity.CategoryFood,
		Points:   7,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, balance.UserID)
	assert.Equal(t, entity.CategoryFood, balance.Category)
	assert.Equal(t, 7, balance.Points)
}

func TestRewardsService_AwardPoints_UnknownCategory(t *testing.T) {
	mockBalanceRepo := mockRepo.NewMockPointBalanceRepository(t)
	service := newRewardsService(mockBalanceRepo)

	_, err := service.AwardPoints(context.Background(), &usecase.AwardPointsInput{
		UserID:   uuid.New(),
		Category: entity.SurveyCategory("astrology"),
		Points:   5,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownCategory))
}

func TestRewardsService_AwardPoints_PointsOutOfRange(t *testing.T) {
	mockBalanceRepo := mockRepo.NewMockPointBalanceRepository(t)
	service := newRewardsService(mockBalanceRepo)

	ctx := context.Background()

	for _, pts := range []int{0, -3, 11, 100} {
		_, err := service.AwardPoints(ctx, &usecase.AwardPointsInput{
			UserID:   uuid.New(),
			Category: entity.CategoryTravel,
			Points:   pts,
		})
		require.Error(t, err, "points=%d", pts)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidPoints))
	}
}

func TestRewardsService_GetBalance_EmptyStoreIsZero(t *testing.T) {
	mockBalanceRepo := mockRepo.NewMockPointBalanceRepository(t)
	service := newRewardsService(mockBalanceRepo)

	ctx := context.Background()
	userID := uuid.New()

	mockBalanceRepo.EXPECT().
		FindBalancesByUser(ctx, userID).
		Return(nil, nil)

	snapshot, err := service.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, snapshot.TotalPoints)
	assert.True(t, snapshot.CurrencyAvailable.IsZero())
	assert.Empty(t, snapshot.CompletedCategories)
	assert.Equal(t, "RM 0.00", snapshot.CurrencyDisplay)
}

func TestRewardsService_GetBalance_SumsAndOrdersCategories(t *testing.T) {
	mockBalanceRepo := mockRepo.NewMockPointBalanceRepository(t)
	service := newRewardsService(mockBalanceRepo)

	ctx := context.Background()
	userID := uuid.New()

	// Stored out of draw order on purpose.
	mockBalanceRepo.EXPECT().
		FindBalancesByUser(ctx, userID).
		Return([]*entity.CategoryPointBalance{
			{UserID: userID, Category: entity.CategoryTravel, Points: 9},
			{UserID: userID, Category: entity.CategoryLifestyle, Points: 4},
			{UserID: userID, Category: entity.CategoryFood, Points: 6},
		}, nil)

	snapshot, err := service.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 19, snapshot.TotalPoints)
	assert.Equal(t, "19", snapshot.CurrencyAvailable.String())
	assert.Equal(t, []entity.SurveyCategory{
		entity.CategoryLifestyle,
		entity.CategoryFood,
		entity.CategoryTravel,
	}, snapshot.CompletedCategories)
}
