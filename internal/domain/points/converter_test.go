package points

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConverter_RejectsNonPositiveRate(t *testing.T) {
	_, err := NewConverter(decimal.Zero, "RM", time.Now())
	assert.Error(t, err)

	_, err = NewConverter(decimal.NewFromInt(-1), "RM", time.Now())
	assert.Error(t, err)
}

func TestConverter_ToCurrency(t *testing.T) {
	conv, err := NewConverter(DefaultRate, "RM", time.Now())
	require.NoError(t, err)

	assert.True(t, conv.ToCurrency(0).IsZero())
	assert.True(t, conv.ToCurrency(-5).IsZero())
	assert.True(t, conv.ToCurrency(13).Equal(decimal.NewFromInt(13)))
}

func TestConverter_ToCurrency_Monotonic(t *testing.T) {
	conv, err := NewConverter(decimal.RequireFromString("0.5"), "RM", time.Now())
	require.NoError(t, err)

	prev := conv.ToCurrency(0)
	for pts := 1; pts <= 50; pts++ {
		cur := conv.ToCurrency(pts)
		assert.True(t, cur.GreaterThan(prev), "conversion must be monotonic at %d points", pts)
		prev = cur
	}
}

func TestConverter_PointsToCover(t *testing.T) {
	conv, err := NewConverter(DefaultRate, "RM", time.Now())
	require.NoError(t, err)

	assert.Equal(t, 0, conv.PointsToCover(decimal.Zero))
	assert.Equal(t, 10, conv.PointsToCover(decimal.RequireFromString("10.00")))

	// A fractional quotient rounds up: 10.50 currency at rate 1 needs 11 whole points.
	assert.Equal(t, 11, conv.PointsToCover(decimal.RequireFromString("10.50")))

	half, err := NewConverter(decimal.RequireFromString("0.5"), "RM", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 20, half.PointsToCover(decimal.RequireFromString("10.00")))
}

func TestConverter_Format(t *testing.T) {
	conv, err := NewConverter(DefaultRate, "RM", time.Now())
	require.NoError(t, err)

	assert.Equal(t, "RM 13.00", conv.Format(decimal.NewFromInt(13)))
	assert.Equal(t, "RM 0.50", conv.Format(decimal.RequireFromString("0.5")))

	bare, err := NewConverter(DefaultRate, "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "13.00", bare.Format(decimal.NewFromInt(13)))
}
