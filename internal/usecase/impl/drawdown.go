package impl

import (
	"time"

	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
)

// drawDown deducts pointsNeeded from the user's category pots following the
// fixed draw order, taking min(remaining, pot) from each category in turn.
// It returns only the touched balances, already mutated, so the caller can
// persist them as one unit. A negative amount is ErrInvalidAmount, a zero
// amount a no-op success, and pots that cannot cover the full amount yield
// ErrInsufficientBalance; in every failure case nothing is mutated, so a
// partial drawdown is never produced.
func drawDown(balances []*entity.CategoryPointBalance, pointsNeeded int) (touched []*entity.CategoryPointBalance, err error) {
	if pointsNeeded < 0 {
		return nil, domainerrors.ErrInvalidAmount
	}
	if pointsNeeded == 0 {
		return nil, nil
	}

	byCategory := make(map[entity.SurveyCategory]*entity.CategoryPointBalance, len(balances))
	total := 0
	for _, balance := range balances {
		if balance.Points <= 0 {
			continue
		}
		byCategory[balance.Category] = balance
		total += balance.Points
	}

	if total < pointsNeeded {
		return nil, domainerrors.ErrInsufficientBalance
	}

	now := time.Now()
	remaining := pointsNeeded
	for _, category := range entity.CategoryDrawOrder {
		if remaining == 0 {
			break
		}
		balance, found := byCategory[category]
		if !found {
			continue
		}

		take := balance.Points
		if take > remaining {
			take = remaining
		}

		balance.Points -= take
		balance.UpdatedAt = now
		remaining -= take
		touched = append(touched, balance)
	}

	return touched, nil
}
