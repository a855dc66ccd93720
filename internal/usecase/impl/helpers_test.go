package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"makan/config"
	"makan/internal/domain/points"
	"makan/internal/domain/repository"

	"github.com/shopspring/decimal"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Rewards: &config.RewardsConfig{
			PointsConversionRate: "1.0",
			CurrencyPrefix:       "RM",
			MaxDebitRetries:      3,
		},
		Payment: &config.PaymentConfig{
			SettleTimeout: time.Second,
		},
	}

	return cfg
}

func newTestConverter() *points.Converter {
	converter, err := points.NewConverter(decimal.NewFromInt(1), "RM", time.Now())
	if err != nil {
		panic(err)
	}

	return converter
}

// stubRepoFactory hands out the repositories supplied by the test.
type stubRepoFactory struct {
	balanceRepo repository.PointBalanceRepository
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	refundRepo  repository.RefundRepository
}

func (f *stubRepoFactory) NewPointBalanceRepository() repository.PointBalanceRepository {
	return f.balanceRepo
}

func (f *stubRepoFactory) NewOrderRepository() repository.OrderRepository {
	return f.orderRepo
}

func (f *stubRepoFactory) NewPaymentRepository() repository.PaymentRepository {
	return f.paymentRepo
}

func (f *stubRepoFactory) NewRefundRepository() repository.RefundRepository {
	return f.refundRepo
}

// stubTxManager runs transactional units under a single mutex, emulating the
// database serializing two units that touch the same rows.
type stubTxManager struct {
	mu      sync.Mutex
	factory *stubRepoFactory
}

func newStubTxManager(factory *stubRepoFactory) *stubTxManager {
	return &stubTxManager{factory: factory}
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(m.factory)
}
