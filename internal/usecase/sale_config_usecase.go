package usecase

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rosemall/flash-order-service/internal/domain"
	"github.com/rosemall/flash-order-service/internal/saleclock"
)

// DefaultSaleConfigProvider fronts the admin-mutable singleton row. Reads
// are served from a cached copy refreshed in the background; when the
// store has never been reachable the hardcoded defaults are served instead
// of failing.
type DefaultSaleConfigProvider struct {
	repo domain.SaleConfigRepository

	mu     sync.RWMutex
	cached *domain.SaleConfig
}

func NewDefaultSaleConfigProvider(repo domain.SaleConfigRepository) *DefaultSaleConfigProvider {
	provider := &DefaultSaleConfigProvider{repo: repo}
	if err := provider.Refresh(); err != nil {
		slog.Error("sale config unavailable, serving defaults", "error", err.Error())
	}
	return provider
}

func (p *DefaultSaleConfigProvider) Current() domain.SaleConfig {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.cached != nil {
		return *p.cached
	}
	return defaultSaleConfig()
}

func (p *DefaultSaleConfigProvider) Refresh() error {
	cfg, err := p.repo.GetSaleConfig()
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.cached = cfg
	p.mu.Unlock()
	return nil
}

// UpdateSaleWindow validates the listing start precedes the flash-sale
// start before persisting; a stored inverted window would break every
// phase computation for the rest of the day.
func (p *DefaultSaleConfigProvider) UpdateSaleWindow(listingStart, flashSaleStart string) (domain.SaleConfig, error) {
	if _, err := saleclock.ParseWindow(listingStart, flashSaleStart); err != nil {
		return domain.SaleConfig{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	cfg, err := p.repo.UpdateSaleWindow(listingStart, flashSaleStart)
	if err != nil {
		return domain.SaleConfig{}, err
	}

	p.mu.Lock()
	p.cached = cfg
	p.mu.Unlock()

	slog.Info("sale window updated", "listing_start", listingStart, "flash_sale_start", flashSaleStart)
	return *cfg, nil
}

func defaultSaleConfig() domain.SaleConfig {
	return domain.SaleConfig{
		ListingStart:          saleclock.DefaultListingStart,
		FlashSaleStart:        saleclock.DefaultFlashSaleStart,
		DailyGrowthRate:       decimal.NewFromFloat(0.05),
		BasePriceDate:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		MaxOrdersPerDay:       3,
		CouponCashThreshold:   decimal.NewFromInt(100),
		ReferralRewardPerUser: decimal.NewFromInt(10),
	}
}
