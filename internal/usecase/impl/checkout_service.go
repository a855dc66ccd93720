package impl

import (
	"context"
	"log/slog"

	"makan/config"
	deliverycontext "makan/internal/delivery/context"
	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/points"
	"makan/internal/domain/repository"
	"makan/internal/domain/service"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type checkoutService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	catalog   service.CatalogService
	rails     map[entity.PaymentMethod]service.PaymentRail
	converter *points.Converter
	publisher service.EventPublisher
	config    *config.Config
	logger    *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Catalog   service.CatalogService
	Rails     []service.PaymentRail `group:"payment_rails"`
	Converter *points.Converter
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	rails := make(map[entity.PaymentMethod]service.PaymentRail, len(params.Rails))
	for _, rail := range params.Rails {
		rails[rail.Method()] = rail
	}

	return &checkoutService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		catalog:   params.Catalog,
		rails:     rails,
		converter: params.Converter,
		publisher: params.Publisher,
		config:    params.Config,
		logger:    params.Logger,
	}
}

// Checkout settles and persists an order. The total is always recomputed
// server-side from authoritative catalog prices; the affordability check and
// the drawdown for the points path run inside one transaction holding row
// locks on the user's balances, so two concurrent checkouts against the same
// pots serialize.
func (s *checkoutService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*entity.Order, error) {
	if len(input.Items) == 0 || !input.PaymentMethod.IsValid() {
		return nil, domainerrors.ErrInvalidOrder
	}

	items, err := s.snapshotItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	order := entity.NewOrder(input.UserID, input.UserEmail, items, input.PaymentMethod)
	if order.TotalAmount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerrors.ErrInvalidOrder.WithDetails("order total must be positive")
	}

	if input.PaymentMethod == entity.PaymentMethodPoints {
		return s.settleWithPoints(ctx, order)
	}

	return s.settleWithRail(ctx, order)
}

// GetOrderHistory returns the user's orders, newest first.
func (s *checkoutService) GetOrderHistory(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindOrdersByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	return orders, nil
}

// snapshotItems re-fetches every item from the catalog and copies name and
// price into immutable line items. Client-supplied prices never enter here.
func (s *checkoutService) snapshotItems(ctx context.Context, inputs []usecase.CheckoutItemInput) ([]entity.OrderLineItem, error) {
	items := make([]entity.OrderLineItem, 0, len(inputs))
	for _, in := range inputs {
		if in.Quantity <= 0 {
			return nil, domainerrors.ErrInvalidOrder.WithDetails("item quantity must be positive")
		}

		catalogItem, err := s.catalog.FindItem(ctx, in.ItemID)
		if err != nil {
			if errors.Is(err, service.ErrItemNotFound) {
				return nil, domainerrors.ErrUnknownItem.WithDetails(in.ItemID.String())
			}

			return nil, errors.Wrap(err, "failed to look up catalog item")
		}

		items = append(items, entity.OrderLineItem{
			ItemID:    catalogItem.ID,
			Name:      catalogItem.Name,
			UnitPrice: catalogItem.Price,
			Quantity:  in.Quantity,
		})
	}

	return items, nil
}

// settleWithPoints runs the check-then-debit sequence. Everything between the
// locked balance read and the payment record write is one transaction: a
// failure anywhere rolls the whole unit back, so a debited-but-order-absent
// state cannot persist. Serialization conflicts are retried a bounded number
// of times against fresh state.
func (s *checkoutService) settleWithPoints(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	pointsNeeded := s.converter.PointsToCover(order.TotalAmount)

	// Minted once, outside the loop: a retried attempt re-marks the order
	// with the same reference, so the idempotent completion branch absorbs
	// it and the payment record key stays stable across attempts.
	transactionID := "PTS-" + uuid.NewString()

	var lastErr error
	for attempt := 0; attempt < s.config.Rewards.MaxDebitRetries; attempt++ {
		err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
			balances, err := f.NewPointBalanceRepository().FindBalancesByUserForUpdate(ctx, order.UserID)
			if err != nil {
				return errors.Wrap(err, "failed to lock category balances")
			}

			touched, err := drawDown(balances, pointsNeeded)
			if err != nil {
				return err
			}

			if len(touched) > 0 {
				if err := f.NewPointBalanceRepository().SaveBalances(ctx, touched); err != nil {
					return errors.Wrap(err, "failed to save drawn-down balances")
				}
			}

			if err := order.MarkCompleted(transactionID); err != nil {
				return errors.Wrap(err, "failed to complete order")
			}

			if err := f.NewOrderRepository().CreateOrder(ctx, order); err != nil {
				return errors.Wrap(err, "failed to create order")
			}

			return s.recordPayment(ctx, f, order)
		})
		if err == nil {
			s.logger.Info("Order settled from points balance",
				slog.String("order_id", order.ID.String()),
				slog.String("user_id", order.UserID.String()),
				slog.Int("points_drawn", pointsNeeded),
			)
			s.publishOrderEvent(ctx, order)

			return order, nil
		}

		if errors.Is(err, repository.ErrConcurrencyConflict) {
			lastErr = err

			continue
		}

		if errors.Is(err, domainerrors.ErrInsufficientBalance) {
			return nil, s.failOrder(ctx, order, domainerrors.ErrInsufficientBalance)
		}

		return nil, err
	}

	s.logger.Warn("Debit retries exhausted",
		slog.String("order_id", order.ID.String()),
		slog.Any("error", lastErr),
	)

	return nil, s.failOrder(ctx, order, domainerrors.ErrConcurrencyConflict)
}

// settleWithRail attempts an external settlement with a bounded deadline,
// then persists the outcome. The rail call happens before any persistence:
// a decline writes a cancelled order and no payment record.
func (s *checkoutService) settleWithRail(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	rail, found := s.rails[order.PaymentMethod]
	if !found {
		return nil, domainerrors.ErrInvalidOrder.WithDetails("unsupported payment method: " + string(order.PaymentMethod))
	}

	settleCtx := ctx
	if s.config.Payment != nil && s.config.Payment.SettleTimeout > 0 {
		var cancel context.CancelFunc
		settleCtx, cancel = context.WithTimeout(ctx, s.config.Payment.SettleTimeout)
		defer cancel()
	}

	outcome, err := rail.Settle(settleCtx, &service.SettlementRequest{
		OrderID: order.ID,
		UserID:  order.UserID,
		Amount:  order.TotalAmount,
		Method:  order.PaymentMethod,
	})
	if err != nil {
		return nil, errors.Wrap(err, "payment rail fault")
	}

	if !outcome.Success {
		s.logger.Info("External settlement declined",
			slog.String("order_id", order.ID.String()),
			slog.String("method", string(order.PaymentMethod)),
			slog.String("reason", outcome.Reason),
		)

		return nil, s.failOrder(ctx, order, domainerrors.ErrRailDeclined.WithDetails(outcome.Reason))
	}

	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := order.MarkCompleted(outcome.TransactionID); err != nil {
			return errors.Wrap(err, "failed to complete order")
		}

		if err := f.NewOrderRepository().CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return s.recordPayment(ctx, f, order)
	})
	if err != nil {
		return nil, err
	}

	s.publishOrderEvent(ctx, order)

	return order, nil
}

// recordPayment writes the append-only settlement record. A duplicate
// transaction id means a retried completion already recorded it; that is not
// a failure.
func (s *checkoutService) recordPayment(ctx context.Context, f repository.RepositoryFactory, order *entity.Order) error {
	err := f.NewPaymentRepository().CreatePayment(ctx, &entity.PaymentRecord{
		TransactionID: order.TransactionID,
		OrderID:       order.ID,
		UserID:        order.UserID,
		Amount:        order.TotalAmount,
		PaymentMethod: order.PaymentMethod,
		Status:        entity.PaymentStatusCompleted,
		CreatedAt:     order.UpdatedAt,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateTransaction) {
			s.logger.Warn("Payment already recorded, skipping duplicate",
				slog.String("transaction_id", order.TransactionID),
			)

			return nil
		}

		return errors.Wrap(err, "failed to create payment record")
	}

	return nil
}

// failOrder persists the order as cancelled and returns the business failure.
// No currency was deducted on this path; the cancelled row documents the
// attempt. Persistence trouble here is logged but the original failure is
// what the caller sees.
func (s *checkoutService) failOrder(ctx context.Context, order *entity.Order, failure error) error {
	// An attempt may have marked the order completed in memory before its
	// transaction rolled back; undo that so the cancel edge is valid.
	order.UndoCompletion()
	if err := order.MarkCancelled(); err != nil {
		return errors.Wrap(err, "failed to cancel order")
	}

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewOrderRepository().CreateOrder(ctx, order)
	})
	if err != nil {
		s.logger.Error("Failed to persist cancelled order",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)
	} else {
		s.publishOrderEvent(ctx, order)
	}

	return failure
}

// publishOrderEvent emits a settlement event for downstream collaborators.
// Publishing is best-effort: a broker problem never fails the request.
func (s *checkoutService) publishOrderEvent(ctx context.Context, order *entity.Order) {
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
		s.logger.Warn("Failed to publish order event",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)
	}
}
