// Package payment provides the simulated external payment rails. Each rail
// settles with a configurable success probability and synthetic latency so
// the checkout flow exercises real decline and timeout paths without a live
// gateway.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"makan/config"
	"makan/internal/domain/entity"
	"makan/internal/domain/service"

	"github.com/google/uuid"
)

const (
	defaultGrabPaySuccessRate      = 0.90
	defaultTouchNGoSuccessRate     = 0.90
	defaultBankTransferSuccessRate = 0.95
)

// simulatedRail is a PaymentRail that settles probabilistically. randFn is a
// field so tests can pin the outcome.
type simulatedRail struct {
	method      entity.PaymentMethod
	successRate float64
	delay       time.Duration
	randFn      func() float64
	logger      *slog.Logger
}

func newSimulatedRail(method entity.PaymentMethod, successRate float64, delay time.Duration, logger *slog.Logger) *simulatedRail {
	return &simulatedRail{
		method:      method,
		successRate: successRate,
		delay:       delay,
		randFn:      rand.Float64,
		logger:      logger,
	}
}

// NewGrabPayRail creates the simulated GrabPay rail.
func NewGrabPayRail(cfg *config.Config, logger *slog.Logger) service.PaymentRail {
	rate := defaultGrabPaySuccessRate
	var delay time.Duration
	if cfg.Payment != nil {
		if cfg.Payment.GrabPaySuccessRate > 0 {
			rate = cfg.Payment.GrabPaySuccessRate
		}
		delay = cfg.Payment.SimulatedDelay
	}

	return newSimulatedRail(entity.PaymentMethodGrabPay, rate, delay, logger)
}

// NewTouchNGoRail creates the simulated Touch 'n Go rail.
func NewTouchNGoRail(cfg *config.Config, logger *slog.Logger) service.PaymentRail {
	rate := defaultTouchNGoSuccessRate
	var delay time.Duration
	if cfg.Payment != nil {
		if cfg.Payment.TouchNGoSuccessRate > 0 {
			rate = cfg.Payment.TouchNGoSuccessRate
		}
		delay = cfg.Payment.SimulatedDelay
	}

	return newSimulatedRail(entity.PaymentMethodTouchNGo, rate, delay, logger)
}

// NewBankTransferRail creates the simulated bank transfer rail.
func NewBankTransferRail(cfg *config.Config, logger *slog.Logger) service.PaymentRail {
	rate := defaultBankTransferSuccessRate
	var delay time.Duration
	if cfg.Payment != nil {
		if cfg.Payment.BankTransferSuccessRate > 0 {
			rate = cfg.Payment.BankTransferSuccessRate
		}
		delay = cfg.Payment.SimulatedDelay
	}

	return newSimulatedRail(entity.PaymentMethodBankTransfer, rate, delay, logger)
}

func (r *simulatedRail) Method() entity.PaymentMethod {
	return r.method
}

// Settle simulates one settlement attempt. The synthetic delay respects the
// context deadline, and an expired deadline is reported as a decline so the
// order never sits in limbo.
func (r *simulatedRail) Settle(ctx context.Context, req *service.SettlementRequest) (*service.SettlementOutcome, error) {
	if r.delay > 0 {
		timer := time.NewTimer(r.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			r.logger.WarnContext(ctx, "settlement timed out",
				slog.String("method", string(r.method)),
				slog.String("order_id", req.OrderID.String()))

			return &service.SettlementOutcome{
				Success: false,
				Reason:  "settlement timed out",
			}, nil
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return &service.SettlementOutcome{
			Success: false,
			Reason:  "settlement timed out",
		}, nil
	}

	if r.randFn() >= r.successRate {
		r.logger.InfoContext(ctx, "settlement declined",
			slog.String("method", string(r.method)),
			slog.String("order_id", req.OrderID.String()),
			slog.String("amount", req.Amount.String()))

		return &service.SettlementOutcome{
			Success: false,
			Reason:  fmt.Sprintf("%s declined the charge", r.method),
		}, nil
	}

	txnID := fmt.Sprintf("%s-%s", railTxnPrefix(r.method), uuid.New().String())
	r.logger.InfoContext(ctx, "settlement succeeded",
		slog.String("method", string(r.method)),
		slog.String("order_id", req.OrderID.String()),
		slog.String("transaction_id", txnID))

	return &service.SettlementOutcome{
		Success:       true,
		TransactionID: txnID,
	}, nil
}

func railTxnPrefix(method entity.PaymentMethod) string {
	switch method {
	case entity.PaymentMethodGrabPay:
		return "GP"
	case entity.PaymentMethodTouchNGo:
		return "TNG"
	case entity.PaymentMethodBankTransfer:
		return "BNK"
	default:
		return "EXT"
	}
}
