package payment

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"makan/internal/domain/entity"
	"makan/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRail(method entity.PaymentMethod, successRate float64, delay time.Duration) *simulatedRail {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return newSimulatedRail(method, successRate, delay, logger)
}

func newSettlementRequest(method entity.PaymentMethod) *service.SettlementRequest {
	return &service.SettlementRequest{
		OrderID: uuid.New(),
		UserID:  uuid.New(),
		Amount:  decimal.NewFromInt(42),
		Method:  method,
	}
}

func TestSimulatedRail_Settle_Success(t *testing.T) {
	t.Parallel()

	rail := newTestRail(entity.PaymentMethodGrabPay, 0.90, 0)
	rail.randFn = func() float64 { return 0.5 }

	outcome, err := rail.Settle(context.Background(), newSettlementRequest(entity.PaymentMethodGrabPay))
	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.NotEmpty(t, outcome.TransactionID)
	assert.Contains(t, outcome.TransactionID, "GP-")
}

func TestSimulatedRail_Settle_Decline(t *testing.T) {
	t.Parallel()

	rail := newTestRail(entity.PaymentMethodTouchNGo, 0.90, 0)
	rail.randFn = func() float64 { return 0.95 }

	outcome, err := rail.Settle(context.Background(), newSettlementRequest(entity.PaymentMethodTouchNGo))
	require.NoError(t, err)
	assert.False(t, outcome.Success)
	assert.Empty(t, outcome.TransactionID)
	assert.NotEmpty(t, outcome.Reason)
}

func TestSimulatedRail_Settle_TimeoutIsDecline(t *testing.T) {
	t.Parallel()

	rail := newTestRail(entity.PaymentMethodBankTransfer, 1.0, 500*time.Millisecond)
	rail.randFn = func() float64 { return 0.0 }

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	outcome, err := rail.Settle(ctx, newSettlementRequest(entity.PaymentMethodBankTransfer))
	require.NoError(t, err)
	assert.False(t, outcome.Success)
	assert.Equal(t, "settlement timed out", outcome.Reason)
}

func TestSimulatedRail_Method(t *testing.T) {
	t.Parallel()

	assert.Equal(t, entity.PaymentMethodGrabPay, newTestRail(entity.PaymentMethodGrabPay, 1, 0).Method())
	assert.Equal(t, entity.PaymentMethodTouchNGo, newTestRail(entity.PaymentMethodTouchNGo, 1, 0).Method())
	assert.Equal(t, entity.PaymentMethodBankTransfer, newTestRail(entity.PaymentMethodBankTransfer, 1, 0).Method())
}
