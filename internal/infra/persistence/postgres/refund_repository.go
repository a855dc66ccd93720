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

// refundRepository implements the repository.RefundRepository interface.
type refundRepository struct {
	db *gorm.DB
}

// NewRefundRepository is the constructor for refundRepository.
func NewRefundRepository(db *gorm.DB) repository.RefundRepository {
	return &refundRepository{
		db: db,
	}
}

// CreateRefund persists a refund record.
func (repo *refundRepository) CreateRefund(ctx context.Context, refund *entity.RefundRecord) error {
	refundM := fromRefundDomain(refund)

	if err := repo.db.WithContext(ctx).Create(refundM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required refund information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create refund record")
	}

	refund.ID = refundM.ID
	refund.ProcessedAt = refundM.ProcessedAt

	return nil
}

// FindRefundsByOrder retrieves all refund records for an order, newest first.
func (repo *refundRepository) FindRefundsByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.RefundRecord, error) {
	var refundModels []*model.RefundRecordModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("processed_at DESC").
		Find(&refundModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find refunds by order")
	}

	refunds := make([]*entity.RefundRecord, 0, len(refundModels))
	for _, refundM := range refundModels {
		refunds = append(refunds, toRefundDomain(refundM))
	}

	return refunds, nil
}

// --- Mapper Functions ---

// toRefundDomain converts a GORM RefundRecordModel to a domain RefundRecord entity.
func toRefundDomain(data *model.RefundRecordModel) *entity.RefundRecord {
	if data == nil {
		return nil
	}

	return &entity.RefundRecord{
		ID:             data.ID,
		OrderID:        data.OrderID,
		OriginalAmount: data.OriginalAmount,
		RefundAmount:   data.RefundAmount,
		RefundType:     entity.RefundType(data.RefundType),
		Status:         data.Status,
		ProcessedAt:    data.ProcessedAt,
	}
}

// fromRefundDomain converts a domain RefundRecord entity to a GORM RefundRecordModel.
func fromRefundDomain(data *entity.RefundRecord) *model.RefundRecordModel {
	if data == nil {
		return nil
	}

	return &model.RefundRecordModel{
		ID:             data.ID,
		OrderID:        data.OrderID,
		OriginalAmount: data.OriginalAmount,
		RefundAmount:   data.RefundAmount,
		RefundType:     string(data.RefundType),
		Status:         data.Status,
		ProcessedAt:    data.ProcessedAt,
	}
}
