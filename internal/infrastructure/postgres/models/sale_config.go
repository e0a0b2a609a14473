package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleConfigModel is a singleton row (ID always 1).
type SaleConfigModel struct {
	ID                    int             `gorm:"primaryKey"`
	ListingStart          string          `gorm:"not null"`
	FlashSaleStart        string          `gorm:"not null"`
	DailyGrowthRate       decimal.Decimal `gorm:"type:numeric(6,4)"`
	BasePriceDate         time.Time
	MaxOrdersPerDay       int
	CouponCashThreshold   decimal.Decimal `gorm:"type:numeric(12,2)"`
	ReferralRewardPerUser decimal.Decimal `gorm:"type:numeric(12,2)"`
	UpdatedAt             time.Time
}

func (SaleConfigModel) TableName() string { return "sale_config" }
