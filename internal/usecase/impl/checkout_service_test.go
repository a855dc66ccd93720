package impl

import (
	"context"
	"strings"
	"sync"
	"testing"

	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/repository"
	"makan/internal/domain/service"
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

// fakeBalanceRepo is an in-memory balance store for one user. Combined with
// stubTxManager's mutex it behaves like row-locked reads: a second
// transactional unit always sees the first one's committed writes.
type fakeBalanceRepo struct {
	mu   sync.Mutex
	pots map[entity.SurveyCategory]int
}

func newFakeBalanceRepo(pots map[entity.SurveyCategory]int) *fakeBalanceRepo {
	copied := make(map[entity.SurveyCategory]int, len(pots))
	for category, pts := range pots {
		copied[category] = pts
	}

	return &fakeBalanceRepo{pots: copied}
}

func (r *fakeBalanceRepo) UpsertBalance(_ context.Context, balance *entity.CategoryPointBalance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pots[balance.Category] = balance.Points

	return nil
}

func (r *fakeBalanceRepo) FindBalancesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CategoryPointBalance, error) {
	return r.FindBalancesByUserForUpdate(ctx, userID)
}

func (r *fakeBalanceRepo) FindBalancesByUserForUpdate(_ context.Context, userID uuid.UUID) ([]*entity.CategoryPointBalance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	balances := make([]*entity.CategoryPointBalance, 0, len(r.pots))
	for _, category := range entity.CategoryDrawOrder {
		pts, found := r.pots[category]
		if !found {
			continue
		}
		balances = append(balances, &entity.CategoryPointBalance{
			UserID:   userID,
			Category: category,
			Points:   pts,
		})
	}

	return balances, nil
}

func (r *fakeBalanceRepo) SaveBalances(_ context.Context, balances []*entity.CategoryPointBalance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, balance := range balances {
		r.pots[balance.Category] = balance.Points
	}

	return nil
}

func (r *fakeBalanceRepo) total() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for _, pts := range r.pots {
		total += pts
	}

	return total
}

type checkoutFixture struct {
	service     usecase.CheckoutUsecase
	balanceRepo *fakeBalanceRepo
	orderRepo   *mockRepo.MockOrderRepository
	paymentRepo *mockRepo.MockPaymentRepository
	catalog     *mockSvc.MockCatalogService
	publisher   *mockSvc.MockEventPublisher
	rail        *mockSvc.MockPaymentRail
}

func newCheckoutFixture(t *testing.T, pots map[entity.SurveyCategory]int) *checkoutFixture {
	t.Helper()

	balanceRepo := newFakeBalanceRepo(pots)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	catalog := mockSvc.NewMockCatalogService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	rail := mockSvc.NewMockPaymentRail(t)
	rail.EXPECT().Method().Return(entity.PaymentMethodGrabPay)

	txManager := newStubTxManager(&stubRepoFactory{
		balanceRepo: balanceRepo,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
	})

	checkoutUC := NewCheckoutService(CheckoutServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Catalog:   catalog,
		Rails:     []service.PaymentRail{rail},
		Converter: newTestConverter(),
		Publisher: publisher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return &checkoutFixture{
		service:     checkoutUC,
		balanceRepo: balanceRepo,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		catalog:     catalog,
		publisher:   publisher,
		rail:        rail,
	}
}

func (f *checkoutFixture) stubCatalogItem(itemID uuid.UUID, name string, price string) {
	f.catalog.EXPECT().
		FindItem(mock.Anything, itemID).
		Return(&entity.CatalogItem{
			ID:    itemID,
			Name:  name,
			Price: decimal.RequireFromString(price),
		}, nil)
}

func TestCheckoutService_Checkout_PointsSuccess(t *testing.T) {
	fixture := newCheckoutFixture(t, map[entity.SurveyCategory]int{
		entity.CategoryLifestyle: 5,
		entity.CategoryDigital:   10,
	})

	itemID := uuid.New()
	fixture.stubCatalogItem(itemID, "nasi lemak", "6.50")
	fixture.orderRepo.EXPECT().CreateOrder(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil)
	fixture.paymentRepo.EXPECT().CreatePayment(mock.Anything, mock.AnythingOfType("*entity.PaymentRecord")).Return(nil)
	fixture.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	order, err := fixture.service.Checkout(context.Background(), &usecase.CheckoutInput{
		UserID:        uuid.New(),
		UserEmail:     "user@example.com",
		Items:         []usecase.CheckoutItemInput{{ItemID: itemID, Quantity: 2}},
		PaymentMethod: entity.PaymentMethodPoints,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusCompleted, order.Status)
	assert.True(t, strings.HasPrefix(order.TransactionID, "PTS-"))
	assert.Equal(t, "13.00", order.TotalAmount.StringFixed(2))
	// 13 points drawn: lifestyle drained (5), digital down to 2.
	assert.Equal(t, 2, fixture.balanceRepo.total())
}

func TestCheckoutService_Checkout_InsufficientBalance(t *testing.T) {
	fixture := newCheckoutFixture(t, map[entity.SurveyCategory]int{
		entity.CategoryLifestyle: 3,
	})

	itemID := uuid.New()
	fixture.stubCatalogItem(itemID, "laksa", "9.00")
	// The failed attempt persists a cancelled order and emits its event.
	fixture.orderRepo.EXPECT().CreateOrder(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil)
	fixture.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	_, err := fixture.service.Checkout(context.Background(), &usecase.CheckoutInput{
		UserID:        uuid.New(),
		Items:         []usecase.CheckoutItemInput{{ItemID: itemID, Quantity: 1}},
		PaymentMethod: entity.PaymentMethodPoints,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientBalance))
	// Nothing was deducted.
	assert.Equal(t, 3, fixture.balanceRepo.total())
}

func TestCheckoutService_Checkout_ConcurrentDebitsExactlyOneSucceeds(t *testing.T) {
	// 20 points in the pots, two concurrent 15-point checkouts: the pots can
	// cover either one alone but not both, so the second committed unit must
	// see the first one's drawdown and fail the affordability check.
	fixture := newCheckoutFixture(t, map[entity.SurveyCategory]int{
		entity.CategoryLifestyle: 12,
		entity.CategoryFood:      8,
	})

	itemID := uuid.New()
	fixture.stubCatalogItem(itemID, "banana leaf set", "15.00")
	fixture.orderRepo.EXPECT().CreateOrder(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil)
	fixture.paymentRepo.EXPECT().CreatePayment(mock.Anything, mock.AnythingOfType("*entity.PaymentRecord")).Return(nil)
	fixture.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	userID := uuid.New()
	input := func() *usecase.CheckoutInput {
		return &usecase.CheckoutInput{
			UserID:        userID,
			Items:         []usecase.CheckoutItemInput{{ItemID: itemID, Quantity: 1}},
			PaymentMethod: entity.PaymentMethodPoints,
		}
	}

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fixture.service.Checkout(context.Background(), input())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, insufficient int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, domainerrors.ErrInsufficientBalance):
			insufficient++
		default:
			t.Fatalf("unexpected checkout error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, insufficient)
	assert.Equal(t, 5, fixture.balanceRepo.total())
}

func TestCheckoutService_Checkout_RailSuccess(t *testing.T) {
	fixture := newCheckoutFixture(t, nil)

	itemID := uuid.New()
	fixture.stubCatalogItem(itemID, "teh tarik", "2.50")
	fixture.rail.EXPECT().
		Settle(mock.Anything, mock.AnythingOfType("*service.SettlementRequest")).
		Return(&service.SettlementOutcome{Success: true, TransactionID: "GP-test-txn"}, nil)
	fixture.orderRepo.EXPECT().CreateOrder(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil)
	fixture.paymentRepo.EXPECT().CreatePayment(mock.Anything, mock.AnythingOfType("*entity.PaymentRecord")).Return(nil)
	fixture.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	order, err := fixture.service.Checkout(context.Background(), &usecase.CheckoutInput{
		UserID:        uuid.New(),
		Items:         []usecase.CheckoutItemInput{{ItemID: itemID, Quantity: 4}},
		PaymentMethod: entity.PaymentMethodGrabPay,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, order.Status)
	assert.Equal(t, "GP-test-txn", order.TransactionID)
	assert.Equal(t, "10.00", order.TotalAmount.StringFixed(2))
}

func TestCheckoutService_Checkout_RailDecline(t *testing.T) {
	fixture := newCheckoutFixture(t, nil)

	itemID := uuid.New()
	fixture.stubCatalogItem(itemID, "mee goreng", "7.00")
	fixture.rail.EXPECT().
		Settle(mock.Anything, mock.AnythingOfType("*service.SettlementRequest")).
		Return(&service.SettlementOutcome{Success: false, Reason: "grabpay declined the charge"}, nil)
	fixture.orderRepo.EXPECT().CreateOrder(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil)
	fixture.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	_, err := fixture.service.Checkout(context.Background(), &usecase.CheckoutInput{
		UserID:        uuid.New(),
		Items:         []usecase.CheckoutItemInput{{ItemID: itemID, Quantity: 1}},
		PaymentMethod: entity.PaymentMethodGrabPay,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRailDeclined))
}

// flakyTxManager runs each transactional unit to completion and then reports
// a serialization conflict for the first few calls, as a commit losing the
// race would after the closure has already run.
type flakyTxManager struct {
	inner     *stubTxManager
	mu        sync.Mutex
	conflicts int
}

func (m *flakyTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	err := m.inner.Execute(ctx, fn)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conflicts > 0 {
		m.conflicts--

		return repository.ErrConcurrencyConflict
	}

	return err
}

func newFlakyCheckoutFixture(t *testing.T, pots map[entity.SurveyCategory]int, conflicts int) *checkoutFixture {
	t.Helper()

	fixture := newCheckoutFixture(t, pots)
	svc, ok := fixture.service.(*checkoutService)
	require.True(t, ok)
	inner, ok := svc.txManager.(*stubTxManager)
	require.True(t, ok)
	svc.txManager = &flakyTxManager{inner: inner, conflicts: conflicts}

	return fixture
}

func TestCheckoutService_Checkout_RetriesAfterCommitConflict(t *testing.T) {
	// The fake balance store has no rollback, so the conflicted first
	// attempt keeps its drawdown; 20 points cover both attempts of a
	// 10-point order.
	fixture := newFlakyCheckoutFixture(t, map[entity.SurveyCategory]int{
		entity.CategoryLifestyle: 20,
	}, 1)

	itemID := uuid.New()
	fixture.stubCatalogItem(itemID, "cendol", "10.00")
	fixture.orderRepo.EXPECT().CreateOrder(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil)
	fixture.paymentRepo.EXPECT().CreatePayment(mock.Anything, mock.AnythingOfType("*entity.PaymentRecord")).Return(nil)
	fixture.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	order, err := fixture.service.Checkout(context.Background(), &usecase.CheckoutInput{
		UserID:        uuid.New(),
		Items:         []usecase.CheckoutItemInput{{ItemID: itemID, Quantity: 1}},
		PaymentMethod: entity.PaymentMethodPoints,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusCompleted, order.Status)
	assert.True(t, strings.HasPrefix(order.TransactionID, "PTS-"))
	assert.Equal(t, 0, fixture.balanceRepo.total())
}

func TestCheckoutService_Checkout_ExhaustedCommitConflictsCancelOrder(t *testing.T) {
	// Every retry runs the closure and then loses the commit race; the
	// cancelled-order write afterwards must still go through even though
	// the in-memory order was marked completed along the way.
	fixture := newFlakyCheckoutFixture(t, map[entity.SurveyCategory]int{
		entity.CategoryLifestyle: 40,
	}, newTestConfig().Rewards.MaxDebitRetries)

	itemID := uuid.New()
	fixture.stubCatalogItem(itemID, "cendol", "10.00")

	var persisted []entity.OrderStatus
	fixture.orderRepo.EXPECT().
		CreateOrder(mock.Anything, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			persisted = append(persisted, order.Status)
		}).
		Return(nil)
	fixture.paymentRepo.EXPECT().CreatePayment(mock.Anything, mock.AnythingOfType("*entity.PaymentRecord")).Return(nil)
	fixture.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	_, err := fixture.service.Checkout(context.Background(), &usecase.CheckoutInput{
		UserID:        uuid.New(),
		Items:         []usecase.CheckoutItemInput{{ItemID: itemID, Quantity: 1}},
		PaymentMethod: entity.PaymentMethodPoints,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConcurrencyConflict))
	require.NotEmpty(t, persisted)
	assert.Equal(t, entity.OrderStatusCancelled, persisted[len(persisted)-1])
}

// conflictTxManager fails every transactional unit with a serialization
// conflict, as a database under heavy contention would.
type conflictTxManager struct {
	mu    sync.Mutex
	calls int
}

func (m *conflictTxManager) Execute(_ context.Context, _ func(repository.RepositoryFactory) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	return repository.ErrConcurrencyConflict
}

func TestCheckoutService_Checkout_RetriesExhaustedOnConflict(t *testing.T) {
	catalog := mockSvc.NewMockCatalogService(t)
	txManager := &conflictTxManager{}
	cfg := newTestConfig()

	checkoutUC := NewCheckoutService(CheckoutServiceParams{
		TxManager: txManager,
		OrderRepo: mockRepo.NewMockOrderRepository(t),
		Catalog:   catalog,
		Converter: newTestConverter(),
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})

	itemID := uuid.New()
	catalog.EXPECT().
		FindItem(mock.Anything, itemID).
		Return(&entity.CatalogItem{ID: itemID, Name: "roti canai", Price: decimal.RequireFromString("2.00")}, nil)

	_, err := checkoutUC.Checkout(context.Background(), &usecase.CheckoutInput{
		UserID:        uuid.New(),
		Items:         []usecase.CheckoutItemInput{{ItemID: itemID, Quantity: 1}},
		PaymentMethod: entity.PaymentMethodPoints,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConcurrencyConflict))
	// Every retry hit the conflict, plus the final cancelled-order write.
	assert.Equal(t, cfg.Rewards.MaxDebitRetries+1, txManager.calls)
}

func TestCheckoutService_Checkout_UnknownItem(t *testing.T) {
	fixture := newCheckoutFixture(t, nil)

	itemID := uuid.New()
	fixture.catalog.EXPECT().
		FindItem(mock.Anything, itemID).
		Return(nil, service.ErrItemNotFound)

	_, err := fixture.service.Checkout(context.Background(), &usecase.CheckoutInput{
		UserID:        uuid.New(),
		Items:         []usecase.CheckoutItemInput{{ItemID: itemID, Quantity: 1}},
		PaymentMethod: entity.PaymentMethodPoints,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownItem))
}

func TestCheckoutService_Checkout_InvalidOrder(t *testing.T) {
	fixture := newCheckoutFixture(t, nil)

	ctx := context.Background()

	_, err := fixture.service.Checkout(ctx, &usecase.CheckoutInput{
		UserID:        uuid.New(),
		Items:         nil,
		PaymentMethod: entity.PaymentMethodPoints,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrder))

	itemID := uuid.New()
	_, err = fixture.service.Checkout(ctx, &usecase.CheckoutInput{
		UserID:        uuid.New(),
		Items:         []usecase.CheckoutItemInput{{ItemID: itemID, Quantity: 1}},
		PaymentMethod: entity.PaymentMethod("cash"),
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrder))
}

func TestCheckoutService_GetOrderHistory(t *testing.T) {
	fixture := newCheckoutFixture(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	stored := []*entity.Order{
		{ID: uuid.New(), UserID: userID, Status: entity.OrderStatusCompleted},
		{ID: uuid.New(), UserID: userID, Status: entity.OrderStatusCancelled},
	}

	fixture.orderRepo.EXPECT().
		FindOrdersByUser(ctx, userID).
		Return(stored, nil)

	orders, err := fixture.service.GetOrderHistory(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, stored, orders)
}
