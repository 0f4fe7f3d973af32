package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nexabay/escrow-order-service/internal/domain"
	"github.com/nexabay/escrow-order-service/internal/infrastructure/postgres/mappers"
	"github.com/nexabay/escrow-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(order *domain.Order, timeline []domain.TimelineEntry) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(mappers.ToGORMOrder(order)).Error; err != nil {
			return err
		}
		for i := range timeline {
			if err := tx.Create(mappers.ToGORMTimelineEntry(&timeline[i])).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DefaultOrderRepository) GetOrderByID(orderID string) (*domain.Order, error) {
	var order models.OrderModel
	if err := r.DB.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&order), nil
}

func (r *DefaultOrderRepository) GetTimeline(orderID string) ([]domain.TimelineEntry, error) {
	var entryModels []models.TimelineEntryModel
	if err := r.DB.
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&entryModels).Error; err != nil {
		return nil, err
	}

	entries := make([]domain.TimelineEntry, len(entryModels))
	for i := range entryModels {
		entries[i] = mappers.ToDomainTimelineEntry(&entryModels[i])
	}
	return entries, nil
}

func (r *DefaultOrderRepository) ListOrders(buyerID string, filter domain.OrderFilter, now time.Time) ([]*domain.Order, error) {
	query := r.DB.Model(&models.OrderModel{}).Where("buyer_id = ?", buyerID)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if q := strings.ToLower(strings.TrimSpace(filter.Search)); q != "" {
		pattern := "%" + q + "%"
		query = query.Where(
			"LOWER(id) LIKE ? OR LOWER(product_title) LIKE ? OR LOWER(seller_name) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	switch {
	case !filter.DateFrom.IsZero() || !filter.DateTo.IsZero():
		if !filter.DateFrom.IsZero() {
			query = query.Where("created_at >= ?", filter.DateFrom)
		}
		if !filter.DateTo.IsZero() {
			query = query.Where("created_at <= ?", filter.DateTo)
		}
	default:
		if d, ok := filter.Window.Duration(); ok {
			query = query.Where("created_at >= ?", now.Add(-d))
		}
	}

	var orderModels []models.OrderModel
	if err := query.Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModels[i])
	}
	return orders, nil
}

func (r *DefaultOrderRepository) FindExpiredOrders(now time.Time) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	if err := r.DB.
		Where("status = ?", domain.StatusEscrowLocked).
		Where("escrow_deadline < ?", now).
		Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModels[i])
	}
	return orders, nil
}

func (r *DefaultOrderRepository) UpdateOrderStatus(orderID string, expected domain.OrderStatus, update domain.OrderUpdate) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return applyOrderUpdate(tx, orderID, expected, update)
	})
}

// applyOrderUpdate is the compare-and-swap shared by every transition writer.
// The guard runs in SQL, so concurrent writers from other processes race on
// the row and not on in-memory state; the loser sees ErrStaleState.
func applyOrderUpdate(tx *gorm.DB, orderID string, expected domain.OrderStatus, update domain.OrderUpdate) error {
	fields := map[string]interface{}{
		"status":     update.Status,
		"updated_at": time.Now(),
	}
	if update.EscrowDeadline != nil {
		fields["escrow_deadline"] = update.EscrowDeadline
	}
	if update.PayloadRef != "" {
		fields["payload_ref"] = update.PayloadRef
	}
	if update.ClosedAt != nil {
		fields["closed_at"] = update.ClosedAt
	}

	result := tx.Model(&models.OrderModel{}).
		Where("id = ? AND status = ?", orderID, expected).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.OrderModel{}).Where("id = ?", orderID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrNotFound
		}
		return domain.ErrStaleState
	}

	for i := range update.Timeline {
		if err := tx.Create(mappers.ToGORMTimelineEntry(&update.Timeline[i])).Error; err != nil {
			return err
		}
	}
	return nil
}
