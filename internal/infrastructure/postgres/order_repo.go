package postgres

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rosemall/flash-order-service/internal/domain"
	"github.com/rosemall/flash-order-service/internal/infrastructure/postgres/mappers"
	"github.com/rosemall/flash-order-service/internal/infrastructure/postgres/models"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(order *domain.Order) (string, error) {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	orderModel := mappers.ToOrderModel(order)

	if err := r.DB.Create(orderModel).Error; err != nil {
		return "", err
	}

	return order.ID, nil
}

// CreateOrderWithQuota re-counts the user's orders for the day inside the
// insert transaction. An advisory lock on the user id serializes the
// count+insert across concurrent transactions; at READ COMMITTED the
// count alone would not see a concurrent uncommitted insert.
func (r *DefaultOrderRepository) CreateOrderWithQuota(order *domain.Order, maxPerDay int, dayStart, dayEnd time.Time) (string, error) {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	orderModel := mappers.ToOrderModel(order)

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", order.UserID).Error; err != nil {
			return fmt.Errorf("failed to take user quota lock: %w", err)
		}

		var count int64
		err := tx.Model(&models.OrderModel{}).
			Where("user_id = ?", order.UserID).
			Where("status <> ?", domain.StatusCancelled).
			Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to count user orders: %w", err)
		}
		if count >= int64(maxPerDay) {
			return domain.ErrQuotaExceeded
		}
		return tx.Create(orderModel).Error
	})
	if err != nil {
		return "", err
	}

	return order.ID, nil
}

func (r *DefaultOrderRepository) GetOrderByID(orderID string) (*domain.Order, error) {
	var orderModel models.OrderModel
	if err := r.DB.First(&orderModel, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return mappers.ToOrderDomain(&orderModel), nil
}

func (r *DefaultOrderRepository) ListOrdersByUserID(userID string) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	err := r.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToOrderDomain(&orderModels[i])
	}
	return orders, nil
}

func (r *DefaultOrderRepository) ListOrders(filters domain.OrderFilters) ([]*domain.Order, int64, error) {
	var orderModels []models.OrderModel
	var total int64

	baseQuery := r.DB.Model(&models.OrderModel{})
	if filters.UserID != "" {
		baseQuery = baseQuery.Where("user_id = ?", filters.UserID)
	}
	if len(filters.Statuses) > 0 {
		baseQuery = baseQuery.Where("status IN (?)", filters.Statuses)
	}
	if !filters.DateFrom.IsZero() {
		baseQuery = baseQuery.Where("created_at >= ?", filters.DateFrom)
	}
	if !filters.DateTo.IsZero() {
		baseQuery = baseQuery.Where("created_at < ?", filters.DateTo)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	if err := baseQuery.Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToOrderDomain(&orderModels[i])
	}
	return orders, total, nil
}

func (r *DefaultOrderRepository) CountUserOrders(userID string, from, to time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&models.OrderModel{}).
		Where("user_id = ?", userID).
		Where("status <> ?", domain.StatusCancelled).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *DefaultOrderRepository) CountOrdersByStatus(status domain.OrderStatus) (int64, error) {
	var count int64
	err := r.DB.Model(&models.OrderModel{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *DefaultOrderRepository) CountOrders(from, to time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&models.OrderModel{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *DefaultOrderRepository) SumOrderAmount(from, to time.Time) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := r.DB.Model(&models.OrderModel{}).
		Select("SUM(price)").
		Where("status <> ?", domain.StatusCancelled).
		Where("created_at >= ? AND created_at < ?", from, to).
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

// MarkPaid re-checks the pending_pay status inside the UPDATE itself:
// a zero rows-affected result means another transition won the race.
func (r *DefaultOrderRepository) MarkPaid(orderID string, fees domain.ListingFees, at time.Time) error {
	res := r.DB.Model(&models.OrderModel{}).
		Where("id = ? AND status = ?", orderID, domain.StatusPendingPay).
		Updates(map[string]interface{}{
			"status":               domain.StatusListed,
			"paid_at":              at,
			"listed_at":            at,
			"available_at":         at,
			"listing_price":        fees.ListingPrice,
			"listing_fee":          fees.ListingFee,
			"commission_fee":       fees.CommissionFee,
			"platform_service_fee": fees.PlatformServiceFee,
			"member_profit":        fees.MemberProfit,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrStateConflict
	}
	return nil
}

// SplitOrder creates every child and flips the parent listed -> split in a
// single transaction; no partial split may survive.
func (r *DefaultOrderRepository) SplitOrder(parentID string, children []*domain.Order, at time.Time) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.OrderModel{}).
			Where("id = ? AND status = ?", parentID, domain.StatusListed).
			Updates(map[string]interface{}{
				"status":   domain.StatusSplit,
				"split_at": at,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrStateConflict
		}

		for _, child := range children {
			if child.ID == "" {
				child.ID = uuid.New().String()
			}
			if err := tx.Create(mappers.ToOrderModel(child)).Error; err != nil {
				return fmt.Errorf("failed to create split child %d/%d: %w", child.SplitIndex, child.SplitTotal, err)
			}
		}
		return nil
	})
}

func (r *DefaultOrderRepository) AssignOrder(orderID string, assignee string, at time.Time) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var orderModel models.OrderModel
		if err := tx.First(&orderModel, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if orderModel.Status.IsTerminal() {
			return domain.ErrStateConflict
		}

		updates := map[string]interface{}{
			"assigned_to": assignee,
			"assigned_at": at,
		}
		// Listed orders advance to assigned; other statuses only record
		// the assignee.
		if orderModel.Status == domain.StatusListed {
			updates["status"] = domain.StatusAssigned
		}

		res := tx.Model(&models.OrderModel{}).
			Where("id = ? AND status = ?", orderID, orderModel.Status).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrStateConflict
		}
		return nil
	})
}

func (r *DefaultOrderRepository) CompleteOrder(orderID string, at time.Time) error {
	res := r.DB.Model(&models.OrderModel{}).
		Where("id = ? AND status IN (?)", orderID, []domain.OrderStatus{domain.StatusListed, domain.StatusAssigned}).
		Updates(map[string]interface{}{
			"status":       domain.StatusCompleted,
			"completed_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrStateConflict
	}
	return nil
}

func (r *DefaultOrderRepository) CancelOrder(orderID string, at time.Time) error {
	res := r.DB.Model(&models.OrderModel{}).
		Where("id = ? AND status = ?", orderID, domain.StatusPendingPay).
		Updates(map[string]interface{}{
			"status":       domain.StatusCancelled,
			"cancelled_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrStateConflict
	}
	return nil
}

func (r *DefaultOrderRepository) FindExpiredPendingOrders(createdBefore time.Time) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	err := r.DB.
		Where("status = ? AND created_at < ?", domain.StatusPendingPay, createdBefore).
		Find(&orderModels).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToOrderDomain(&orderModels[i])
	}
	return orders, nil
}
