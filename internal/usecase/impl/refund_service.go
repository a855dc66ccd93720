package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "makan/internal/delivery/context"
	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/repository"
	"makan/internal/domain/service"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type refundService struct {
	txManager  repository.TransactionManager
	refundRepo repository.RefundRepository
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// RefundServiceParams holds dependencies for RefundService, injected by Fx.
type RefundServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RefundRepo repository.RefundRepository
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewRefundService creates a new refund service instance
func NewRefundService(params RefundServiceParams) usecase.RefundUsecase {
	return &refundService{
		txManager:  params.TxManager,
		refundRepo: params.RefundRepo,
		publisher:  params.Publisher,
		logger:     params.Logger,
	}
}

// Refund validates and applies a full or partial refund against a completed
// order. The order row is locked for the duration, so a concurrent refund or
// verification of the same order serializes behind this one. Out-of-range
// amounts are rejected, never clamped, and the order is left untouched.
// The refund is bookkeeping only: points paid are not re-credited.
func (s *refundService) Refund(ctx context.Context, input *usecase.RefundInput) (*entity.RefundRecord, error) {
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrInvalidRefundAmount.WithDetails("unknown refund type: " + string(input.Type))
	}
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerrors.ErrInvalidRefundAmount
	}

	var record *entity.RefundRecord
	var order *entity.Order
	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		found, err := f.NewOrderRepository().FindOrderByIDForUpdate(ctx, input.OrderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to lock order")
		}
		order = found

		if order.Status != entity.OrderStatusCompleted || order.TransactionID == "" {
			return domainerrors.ErrOrderNotEligible
		}

		switch input.Type {
		case entity.RefundTypeFull:
			if !input.Amount.Equal(order.TotalAmount) {
				return domainerrors.ErrInvalidRefundAmount.WithDetails("full refund must equal the order total")
			}
			if err := order.MarkRefunded(input.Amount); err != nil {
				return errors.Wrap(err, "failed to mark order refunded")
			}
		case entity.RefundTypePartial:
			if input.Amount.GreaterThan(order.TotalAmount) {
				return domainerrors.ErrInvalidRefundAmount
			}
			if err := order.ApplyPartialRefund(input.Amount); err != nil {
				return errors.Wrap(err, "failed to apply partial refund")
			}
		}

		if err := f.NewOrderRepository().UpdateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order")
		}

		record = &entity.RefundRecord{
			ID:             uuid.New(),
			OrderID:        order.ID,
			OriginalAmount: order.TotalAmount,
			RefundAmount:   input.Amount,
			RefundType:     input.Type,
			Status:         "processed",
			ProcessedAt:    time.Now(),
		}

		if err := f.NewRefundRepository().CreateRefund(ctx, record); err != nil {
			return errors.Wrap(err, "failed to create refund record")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Refund processed",
		slog.String("order_id", order.ID.String()),
		slog.String("refund_type", string(input.Type)),
		slog.String("refund_amount", input.Amount.StringFixed(2)),
	)
	s.publishRefundEvent(ctx, order)

	return record, nil
}

// GetOrderRefunds returns the refund history of an order, newest first.
func (s *refundService) GetOrderRefunds(ctx context.Context, orderID uuid.UUID) ([]*entity.RefundRecord, error) {
	refunds, err := s.refundRepo.FindRefundsByOrder(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find refunds by order")
	}

	return refunds, nil
}

func (s *refundService) publishRefundEvent(ctx context.Context, order *entity.Order) {
	if s.publisher == nil {
		return
	}

	event := &service.OrderEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:       order.ID.String(),
		UserID:        order.UserID.String(),
		Status:        string(order.Status),
		PaymentMethod: string(order.PaymentMethod),
		TotalAmount:   order.TotalAmount.StringFixed(2),
		TransactionID: order.TransactionID,
	}

	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish refund event",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)
	}
}
