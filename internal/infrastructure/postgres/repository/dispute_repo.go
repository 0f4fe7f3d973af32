package repository

import (
	"errors"
	"time"

	"github.com/nexabay/escrow-order-service/internal/domain"
	"github.com/nexabay/escrow-order-service/internal/infrastructure/postgres/mappers"
	"github.com/nexabay/escrow-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultDisputeRepository struct {
	DB *gorm.DB
}

func NewDefaultDisputeRepository(db *gorm.DB) *DefaultDisputeRepository {
	return &DefaultDisputeRepository{DB: db}
}

func (r *DefaultDisputeRepository) CreateDisputeForOrder(dispute *domain.Dispute, expected domain.OrderStatus, update domain.OrderUpdate) error {
	disputeModel, err := mappers.ToGORMDispute(dispute)
	if err != nil {
		return err
	}

	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := applyOrderUpdate(tx, dispute.OrderID, expected, update); err != nil {
			return err
		}
		return tx.Create(disputeModel).Error
	})
}

func (r *DefaultDisputeRepository) ResolveDisputeForOrder(
	disputeID string,
	status domain.DisputeStatus,
	resolvedBy string,
	resolvedAt time.Time,
	expected domain.OrderStatus,
	update domain.OrderUpdate) error {

	return r.DB.Transaction(func(tx *gorm.DB) error {
		var disputeModel models.DisputeModel
		if err := tx.First(&disputeModel, "id = ?", disputeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrDisputeNotFound
			}
			return err
		}

		if err := applyOrderUpdate(tx, disputeModel.OrderID, expected, update); err != nil {
			return err
		}

		return tx.Model(&disputeModel).Updates(map[string]interface{}{
			"status":      string(status),
			"resolved_by": resolvedBy,
			"resolved_at": resolvedAt,
		}).Error
	})
}

func (r *DefaultDisputeRepository) GetDisputeByID(disputeID string) (*domain.Dispute, error) {
	var disputeModel models.DisputeModel
	if err := r.DB.First(&disputeModel, "id = ?", disputeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDisputeNotFound
		}
		return nil, err
	}
	return mappers.ToDomainDispute(&disputeModel), nil
}

func (r *DefaultDisputeRepository) GetDisputeByOrderID(orderID string) (*domain.Dispute, error) {
	var disputeModel models.DisputeModel
	if err := r.DB.First(&disputeModel, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDisputeNotFound
		}
		return nil, err
	}
	return mappers.ToDomainDispute(&disputeModel), nil
}

func (r *DefaultDisputeRepository) FindStaleDisputes(openedBefore time.Time) ([]*domain.Dispute, error) {
	var disputeModels []models.DisputeModel
	if err := r.DB.
		Where("status = ?", string(domain.DisputeUnderReview)).
		Where("opened_at < ?", openedBefore).
		Find(&disputeModels).Error; err != nil {
		return nil, err
	}

	disputes := make([]*domain.Dispute, len(disputeModels))
	for i := range disputeModels {
		disputes[i] = mappers.ToDomainDispute(&disputeModels[i])
	}
	return disputes, nil
}
