package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleConfig is the admin-mutable singleton that drives the daily sale
// window, the pricing curve and the quota gate. Times of day are "HH:MM"
// strings in the venue-local timezone.
type SaleConfig struct {
	ListingStart          string
	FlashSaleStart        string
	DailyGrowthRate       decimal.Decimal
	BasePriceDate         time.Time
	MaxOrdersPerDay       int
	CouponCashThreshold   decimal.Decimal
	ReferralRewardPerUser decimal.Decimal
	UpdatedAt             time.Time
}

type SaleConfigRepository interface {
	GetSaleConfig() (*SaleConfig, error)
	UpdateSaleWindow(listingStart, flashSaleStart string) (*SaleConfig, error)
}

// SaleConfigProvider fronts the singleton for every phase/price computation.
// Current never fails: when the backing store is unreachable it serves the
// hardcoded defaults (availability over correctness).
type SaleConfigProvider interface {
	Current() SaleConfig
	Refresh() error
	UpdateSaleWindow(listingStart, flashSaleStart string) (SaleConfig, error)
}
