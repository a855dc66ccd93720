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
)

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// CreatePayment persists a settlement record. The transaction id is the
// primary key, so a replayed settlement reference surfaces as
// ErrDuplicateTransaction.
func (repo *paymentRepository) CreatePayment(ctx context.Context, payment *entity.PaymentRecord) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTransaction
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required payment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment record")
	}

	payment.CreatedAt = paymentM.CreatedAt

	return nil
}

// FindPaymentByOrder retrieves the payment record for a completed order.
func (repo *paymentRepository) FindPaymentByOrder(ctx context.Context, orderID uuid.UUID) (*entity.PaymentRecord, error) {
	var paymentM model.PaymentRecordModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by order")
	}

	return toPaymentDomain(&paymentM), nil
}

// --- Mapper Functions ---

// toPaymentDomain converts a GORM PaymentRecordModel to a domain PaymentRecord entity.
func toPaymentDomain(data *model.PaymentRecordModel) *entity.PaymentRecord {
	if data == nil {
		return nil
	}

	return &entity.PaymentRecord{
		TransactionID: data.TransactionID,
		OrderID:       data.OrderID,
		UserID:        data.UserID,
		Amount:        data.Amount,
		PaymentMethod: entity.PaymentMethod(data.PaymentMethod),
		Status:        entity.PaymentStatus(data.Status),
		CreatedAt:     data.CreatedAt,
	}
}

// fromPaymentDomain converts a domain PaymentRecord entity to a GORM PaymentRecordModel.
func fromPaymentDomain(data *entity.PaymentRecord) *model.PaymentRecordModel {
	if data == nil {
		return nil
	}

	return &model.PaymentRecordModel{
		TransactionID: data.TransactionID,
		OrderID:       data.OrderID,
		UserID:        data.UserID,
		Amount:        data.Amount,
		PaymentMethod: string(data.PaymentMethod),
		Status:        string(data.Status),
		CreatedAt:     data.CreatedAt,
	}
}
