package postgres

import (
	"context"

	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/repository"
	"makan/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists a new order with its line items.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTransaction
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindOrderByID retrieves an order with its line items.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOrder(ctx, repo.db, id)
}

// FindOrderByIDForUpdate retrieves an order holding a row lock for the rest
// of the surrounding transaction. The lock covers the orders row only; line
// items are immutable and need no locking.
func (repo *orderRepository) FindOrderByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	locked := repo.db.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "orders"}})

	return repo.findOrder(ctx, locked, id)
}

func (repo *orderRepository) findOrder(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindOrdersByUser retrieves a user's orders, newest first.
func (repo *orderRepository) FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	return toOrderDomainSlice(orderModels), nil
}

// FindOrdersByStatus retrieves all orders in a given status, newest first.
// An empty status returns every order.
func (repo *orderRepository) FindOrdersByStatus(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	query := repo.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC")

	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	if err := query.Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by status")
	}

	return toOrderDomainSlice(orderModels), nil
}

// UpdateOrder persists the mutable fields of an order. Line items are never
// rewritten.
func (repo *orderRepository) UpdateOrder(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"status":         string(order.Status),
			"transaction_id": order.TransactionID,
			"refund_status":  string(order.RefundStatus),
			"refund_amount":  order.RefundAmount,
			"updated_at":     order.UpdatedAt,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateTransaction
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderLineItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.OrderLineItem{
			ItemID:    itemM.ItemID,
			Name:      itemM.Name,
			UnitPrice: itemM.UnitPrice,
			Quantity:  itemM.Quantity,
		})
	}

	return &entity.Order{
		ID:            data.ID,
		UserID:        data.UserID,
		UserEmail:     data.UserEmail,
		Items:         items,
		TotalAmount:   data.TotalAmount,
		PaymentMethod: entity.PaymentMethod(data.PaymentMethod),
		Status:        entity.OrderStatus(data.Status),
		TransactionID: data.TransactionID,
		RefundStatus:  entity.RefundStatus(data.RefundStatus),
		RefundAmount:  data.RefundAmount,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toOrderDomainSlice(data []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(data))
	for _, orderM := range data {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			OrderID:   data.ID,
			ItemID:    item.ItemID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	return &model.OrderModel{
		ID:            data.ID,
		UserID:        data.UserID,
		UserEmail:     data.UserEmail,
		TotalAmount:   data.TotalAmount,
		PaymentMethod: string(data.PaymentMethod),
		Status:        string(data.Status),
		TransactionID: data.TransactionID,
		RefundStatus:  string(data.RefundStatus),
		RefundAmount:  data.RefundAmount,
		Items:         items,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
