package impl

import (
	"testing"

	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func balancesFor(userID uuid.UUID, pots map[entity.SurveyCategory]int) []*entity.CategoryPointBalance {
	balances := make([]*entity.CategoryPointBalance, 0, len(pots))
	for category, pts := range pots {
		balances = append(balances, &entity.CategoryPointBalance{
			UserID:   userID,
			Category: category,
			Points:   pts,
		})
	}

	return balances
}

func potsOf(balances []*entity.CategoryPointBalance) map[entity.SurveyCategory]int {
	pots := make(map[entity.SurveyCategory]int, len(balances))
	for _, balance := range balances {
		pots[balance.Category] = balance.Points
	}

	return pots
}

func TestDrawDown_FollowsDrawOrder(t *testing.T) {
	userID := uuid.New()
	balances := balancesFor(userID, map[entity.SurveyCategory]int{
		entity.CategoryLifestyle: 3,
		entity.CategoryDigital:   5,
		entity.CategoryFood:      8,
	})

	touched, err := drawDown(balances, 10)
	require.NoError(t, err)

	// lifestyle drained, digital drained, food covers the remainder.
	pots := potsOf(balances)
	assert.Equal(t, 0, pots[entity.CategoryLifestyle])
	assert.Equal(t, 0, pots[entity.CategoryDigital])
	assert.Equal(t, 6, pots[entity.CategoryFood])
	assert.Len(t, touched, 3)
}

func TestDrawDown_SkipsMissingCategories(t *testing.T) {
	userID := uuid.New()
	balances := balancesFor(userID, map[entity.SurveyCategory]int{
		entity.CategoryTravel:  4,
		entity.CategoryFinance: 4,
	})

	touched, err := drawDown(balances, 6)
	require.NoError(t, err)

	pots := potsOf(balances)
	assert.Equal(t, 0, pots[entity.CategoryTravel])
	assert.Equal(t, 2, pots[entity.CategoryFinance])
	assert.Len(t, touched, 2)
}

func TestDrawDown_InsufficientLeavesPotsUntouched(t *testing.T) {
	userID := uuid.New()
	balances := balancesFor(userID, map[entity.SurveyCategory]int{
		entity.CategoryLifestyle: 2,
		entity.CategoryHealth:    3,
	})

	touched, err := drawDown(balances, 6)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientBalance))
	assert.Nil(t, touched)

	// All-or-nothing: no partial deduction happened.
	pots := potsOf(balances)
	assert.Equal(t, 2, pots[entity.CategoryLifestyle])
	assert.Equal(t, 3, pots[entity.CategoryHealth])
}

func TestDrawDown_ZeroIsNoOpSuccess(t *testing.T) {
	userID := uuid.New()
	balances := balancesFor(userID, map[entity.SurveyCategory]int{
		entity.CategoryFood: 5,
	})

	touched, err := drawDown(balances, 0)
	assert.NoError(t, err)
	assert.Empty(t, touched)
	assert.Equal(t, 5, balances[0].Points)
}

func TestDrawDown_ExactCover(t *testing.T) {
	userID := uuid.New()
	balances := balancesFor(userID, map[entity.SurveyCategory]int{
		entity.CategoryLifestyle: 5,
		entity.CategoryDigital:   5,
	})

	touched, err := drawDown(balances, 10)
	require.NoError(t, err)
	assert.Len(t, touched, 2)

	for _, balance := range balances {
		assert.Equal(t, 0, balance.Points)
	}
}

func TestDrawDown_NegativeAmountRejected(t *testing.T) {
	userID := uuid.New()
	balances := balancesFor(userID, map[entity.SurveyCategory]int{
		entity.CategoryFood: 5,
	})

	touched, err := drawDown(balances, -1)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAmount))
	assert.Nil(t, touched)
	assert.Equal(t, 5, balances[0].Points)
}
