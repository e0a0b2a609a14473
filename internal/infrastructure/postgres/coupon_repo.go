package postgres

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rosemall/flash-order-service/internal/domain"
	"github.com/rosemall/flash-order-service/internal/infrastructure/postgres/mappers"
	"github.com/rosemall/flash-order-service/internal/infrastructure/postgres/models"
)

type DefaultCouponRepository struct {
	DB *gorm.DB
}

func NewDefaultCouponRepository(db *gorm.DB) *DefaultCouponRepository {
	return &DefaultCouponRepository{DB: db}
}

func (r *DefaultCouponRepository) CreateCoupon(coupon *domain.Coupon) (string, error) {
	if coupon.ID == "" {
		coupon.ID = uuid.New().String()
	}
	couponModel := models.CouponModel{
		ID:     coupon.ID,
		UserID: coupon.UserID,
		Amount: coupon.Amount,
		Status: coupon.Status,
		Reason: coupon.Reason,
	}
	if err := r.DB.Create(&couponModel).Error; err != nil {
		return "", err
	}
	return coupon.ID, nil
}

func (r *DefaultCouponRepository) ListCouponsByUserID(userID string) ([]*domain.Coupon, error) {
	var couponModels []models.CouponModel
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&couponModels).Error
	if err != nil {
		return nil, err
	}
	return toCoupons(couponModels), nil
}

func (r *DefaultCouponRepository) ListCoupons() ([]*domain.Coupon, error) {
	var couponModels []models.CouponModel
	if err := r.DB.Order("created_at DESC").Find(&couponModels).Error; err != nil {
		return nil, err
	}
	return toCoupons(couponModels), nil
}

func (r *DefaultCouponRepository) SumUnusedByUserID(userID string) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := r.DB.Model(&models.CouponModel{}).
		Select("SUM(amount)").
		Where("user_id = ? AND status = ?", userID, domain.CouponUnused).
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

func toCoupons(couponModels []models.CouponModel) []*domain.Coupon {
	coupons := make([]*domain.Coupon, len(couponModels))
	for i := range couponModels {
		coupons[i] = mappers.ToCouponDomain(&couponModels[i])
	}
	return coupons
}
