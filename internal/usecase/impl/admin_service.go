package impl

import (
	"context"
	"log/slog"

	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/repository"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type adminService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

// VerifyPayment completes an order against out-of-band payment proof,
// assigning a verification transaction id and writing the matching payment
// record. Repeating the call on an already verified order returns the order
// unchanged: same transaction id, no second payment record. The order row is
// locked so verification serializes with refunds on the same order.
func (s *adminService) VerifyPayment(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	var order *entity.Order
	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		found, err := f.NewOrderRepository().FindOrderByIDForUpdate(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to lock order")
		}
		order = found

		// Already verified: idempotent no-op.
		if order.Status == entity.OrderStatusCompleted && order.TransactionID != "" {
			return nil
		}

		if order.Status != entity.OrderStatusPending {
			return domainerrors.ErrOrderNotEligible
		}

		transactionID := "VRF-" + uuid.NewString()
		if err := order.MarkCompleted(transactionID); err != nil {
			return errors.Wrap(err, "failed to complete order")
		}

		if err := f.NewOrderRepository().UpdateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order")
		}

		err = f.NewPaymentRepository().CreatePayment(ctx, &entity.PaymentRecord{
			TransactionID: order.TransactionID,
			OrderID:       order.ID,
			UserID:        order.UserID,
			Amount:        order.TotalAmount,
			PaymentMethod: order.PaymentMethod,
			Status:        entity.PaymentStatusCompleted,
			CreatedAt:     order.UpdatedAt,
		})
		if err != nil && !errors.Is(err, repository.ErrDuplicateTransaction) {
			return errors.Wrap(err, "failed to create payment record")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Payment verified",
		slog.String("order_id", order.ID.String()),
		slog.String("transaction_id", order.TransactionID),
	)

	return order, nil
}

// ForceStatus transitions an order to the target status along an allowed
// lifecycle edge. Everything else is rejected: the state machine binds the
// back office too.
func (s *adminService) ForceStatus(ctx context.Context, orderID uuid.UUID, target entity.OrderStatus) (*entity.Order, error) {
	if !target.IsValid() {
		return nil, domainerrors.ErrOrderNotEligible.WithDetails("unknown status: " + string(target))
	}

	var order *entity.Order
	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		found, err := f.NewOrderRepository().FindOrderByIDForUpdate(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to lock order")
		}
		order = found

		if order.Status == target {
			return nil
		}
		if !order.CanTransitionTo(target) {
			return domainerrors.ErrOrderNotEligible.WithDetails(
				"cannot transition from " + string(order.Status) + " to " + string(target))
		}

		switch target {
		case entity.OrderStatusCompleted:
			// Forced completion still needs a settlement reference.
			if err := order.MarkCompleted("ADM-" + uuid.NewString()); err != nil {
				return errors.Wrap(err, "failed to complete order")
			}
		case entity.OrderStatusCancelled:
			if err := order.MarkCancelled(); err != nil {
				return errors.Wrap(err, "failed to cancel order")
			}
		case entity.OrderStatusRefunded:
			if err := order.MarkRefunded(order.TotalAmount); err != nil {
				return errors.Wrap(err, "failed to refund order")
			}
		}

		if err := f.NewOrderRepository().UpdateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Order status forced",
		slog.String("order_id", order.ID.String()),
		slog.String("status", string(order.Status)),
	)

	return order, nil
}

// ListOrders returns orders for back-office reporting, newest first.
func (s *adminService) ListOrders(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error) {
	if status != "" && !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status: " + string(status))
	}

	orders, err := s.orderRepo.FindOrdersByStatus(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}
