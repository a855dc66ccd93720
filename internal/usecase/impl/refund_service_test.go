package impl

import (
	"context"
	"testing"

	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/repository"
	mockRepo "makan/internal/mocks/repository"
	mockSvc "makan/internal/mocks/service"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type refundFixture struct {
	service    usecase.RefundUsecase
	orderRepo  *mockRepo.MockOrderRepository
	refundRepo *mockRepo.MockRefundRepository
	publisher  *mockSvc.MockEventPublisher
}

func newRefundFixture(t *testing.T) *refundFixture {
	t.Helper()

	orderRepo := mockRepo.NewMockOrderRepository(t)
	refundRepo := mockRepo.NewMockRefundRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	refundUC := NewRefundService(RefundServiceParams{
		TxManager: newStubTxManager(&stubRepoFactory{
			orderRepo:  orderRepo,
			refundRepo: refundRepo,
		}),
		RefundRepo: refundRepo,
		Publisher:  publisher,
		Logger:     newDiscardLogger(),
	})

	return &refundFixture{
		service:    refundUC,
		orderRepo:  orderRepo,
		refundRepo: refundRepo,
		publisher:  publisher,
	}
}

func completedOrder(total string) *entity.Order {
	return &entity.Order{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		TotalAmount:   decimal.RequireFromString(total),
		PaymentMethod: entity.PaymentMethodGrabPay,
		Status:        entity.OrderStatusCompleted,
		TransactionID: "GP-settled",
		RefundAmount:  decimal.Zero,
	}
}

func TestRefundService_Refund_FullMovesOrderToRefunded(t *testing.T) {
	fixture := newRefundFixture(t)
	order := completedOrder("25.00")

	fixture.orderRepo.EXPECT().FindOrderByIDForUpdate(mock.Anything, order.ID).Return(order, nil)
	fixture.orderRepo.EXPECT().UpdateOrder(mock.Anything, order).Return(nil)
	fixture.refundRepo.EXPECT().CreateRefund(mock.Anything, mock.AnythingOfType("*entity.RefundRecord")).Return(nil)
	fixture.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	record, err := fixture.service.Refund(context.Background(), &usecase.RefundInput{
		OrderID: order.ID,
		Amount:  decimal.RequireFromString("25.00"),
		Type:    entity.RefundTypeFull,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusRefunded, order.Status)
	assert.True(t, order.RefundAmount.Equal(order.TotalAmount))
	assert.Equal(t, entity.RefundTypeFull, record.RefundType)
	assert.Equal(t, order.ID, record.OrderID)
	assert.True(t, record.RefundAmount.Equal(order.TotalAmount))
}

func TestRefundService_Refund_FullMustEqualTotal(t *testing.T) {
	fixture := newRefundFixture(t)
	order := completedOrder("25.00")

	fixture.orderRepo.EXPECT().FindOrderByIDForUpdate(mock.Anything, order.ID).Return(order, nil)

	_, err := fixture.service.Refund(context.Background(), &usecase.RefundInput{
		OrderID: order.ID,
		Amount:  decimal.RequireFromString("20.00"),
		Type:    entity.RefundTypeFull,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRefundAmount))
	assert.Equal(t, entity.OrderStatusCompleted, order.Status)
}

func TestRefundService_Refund_PartialAnnotatesOrder(t *testing.T) {
	fixture := newRefundFixture(t)
	order := completedOrder("30.00")

	fixture.orderRepo.EXPECT().FindOrderByIDForUpdate(mock.Anything, order.ID).Return(order, nil)
	fixture.orderRepo.EXPECT().UpdateOrder(mock.Anything, order).Return(nil)
	fixture.refundRepo.EXPECT().CreateRefund(mock.Anything, mock.AnythingOfType("*entity.RefundRecord")).Return(nil)
	fixture.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	record, err := fixture.service.Refund(context.Background(), &usecase.RefundInput{
		OrderID: order.ID,
		Amount:  decimal.RequireFromString("10.00"),
		Type:    entity.RefundTypePartial,
	})
	require.NoError(t, err)

	// A partial refund is an annotation; the order stays completed.
	assert.Equal(t, entity.OrderStatusCompleted, order.Status)
	assert.Equal(t, entity.RefundStatusPartial, order.RefundStatus)
	assert.Equal(t, "10.00", order.RefundAmount.StringFixed(2))
	assert.Equal(t, entity.RefundTypePartial, record.RefundType)
}

func TestRefundService_Refund_OverTotalRejectedNeverClamped(t *testing.T) {
	fixture := newRefundFixture(t)
	order := completedOrder("30.00")

	fixture.orderRepo.EXPECT().FindOrderByIDForUpdate(mock.Anything, order.ID).Return(order, nil)

	_, err := fixture.service.Refund(context.Background(), &usecase.RefundInput{
		OrderID: order.ID,
		Amount:  decimal.RequireFromString("30.01"),
		Type:    entity.RefundTypePartial,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRefundAmount))
	assert.Equal(t, entity.RefundStatusNone, order.RefundStatus)
	assert.True(t, order.RefundAmount.IsZero())
}

func TestRefundService_Refund_IneligibleOrders(t *testing.T) {
	tests := []struct {
		name  string
		setup func(order *entity.Order)
	}{
		{
			name: "pending order",
			setup: func(order *entity.Order) {
				order.Status = entity.OrderStatusPending
				order.TransactionID = ""
			},
		},
		{
			name: "cancelled order",
			setup: func(order *entity.Order) {
				order.Status = entity.OrderStatusCancelled
				order.TransactionID = ""
			},
		},
		{
			name: "already refunded order",
			setup: func(order *entity.Order) {
				order.Status = entity.OrderStatusRefunded
			},
		},
		{
			name: "completed without settlement reference",
			setup: func(order *entity.Order) {
				order.TransactionID = ""
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fixture := newRefundFixture(t)
			order := completedOrder("12.00")
			tc.setup(order)

			fixture.orderRepo.EXPECT().FindOrderByIDForUpdate(mock.Anything, order.ID).Return(order, nil)

			_, err := fixture.service.Refund(context.Background(), &usecase.RefundInput{
				OrderID: order.ID,
				Amount:  decimal.RequireFromString("12.00"),
				Type:    entity.RefundTypeFull,
			})
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrOrderNotEligible))
		})
	}
}

func TestRefundService_Refund_OrderNotFound(t *testing.T) {
	fixture := newRefundFixture(t)
	orderID := uuid.New()

	fixture.orderRepo.EXPECT().
		FindOrderByIDForUpdate(mock.Anything, orderID).
		Return(nil, repository.ErrOrderNotFound)

	_, err := fixture.service.Refund(context.Background(), &usecase.RefundInput{
		OrderID: orderID,
		Amount:  decimal.RequireFromString("5.00"),
		Type:    entity.RefundTypeFull,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestRefundService_Refund_RejectsBadInput(t *testing.T) {
	fixture := newRefundFixture(t)
	ctx := context.Background()

	_, err := fixture.service.Refund(ctx, &usecase.RefundInput{
		OrderID: uuid.New(),
		Amount:  decimal.Zero,
		Type:    entity.RefundTypeFull,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRefundAmount))

	_, err = fixture.service.Refund(ctx, &usecase.RefundInput{
		OrderID: uuid.New(),
		Amount:  decimal.RequireFromString("5.00"),
		Type:    entity.RefundType("store_credit"),
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRefundAmount))
}

func TestRefundService_GetOrderRefunds(t *testing.T) {
	fixture := newRefundFixture(t)

	ctx := context.Background()
	orderID := uuid.New()
	stored := []*entity.RefundRecord{
		{ID: uuid.New(), OrderID: orderID, RefundType: entity.RefundTypePartial},
	}

	fixture.refundRepo.EXPECT().FindRefundsByOrder(ctx, orderID).Return(stored, nil)

	refunds, err := fixture.service.GetOrderRefunds(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, stored, refunds)
}
