package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rosemall/flash-order-service/internal/domain"
)

type CouponModel struct {
	ID        string              `gorm:"primaryKey;type:uuid"`
	UserID    string              `gorm:"type:uuid;index"`
	Amount    decimal.Decimal     `gorm:"type:numeric(12,2)"`
	Status    domain.CouponStatus `gorm:"default:unused"`
	Reason    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CouponModel) TableName() string { return "coupons" }
