package usecase

import (
	"log/slog"
	"time"

	"github.com/rosemall/flash-order-service/internal/domain"
	"github.com/rosemall/flash-order-service/internal/pricing"
	"github.com/rosemall/flash-order-service/internal/saleclock"
)

type PricedProduct struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Price    string   `json:"price"`
	Image    string   `json:"image"`
	Tags     []string `json:"tags"`
}

// FlashSaleSnapshot is what the storefront polls: the derived phase, the
// window bounds, the countdown to the next transition and today's prices.
type FlashSaleSnapshot struct {
	Status    saleclock.Phase  `json:"status"`
	ListingAt string           `json:"listingAt"`
	OpenAt    string           `json:"openAt"`
	Countdown string           `json:"countdown,omitempty"`
	Products  []*PricedProduct `json:"products"`
}

type FlashSaleUsecase interface {
	Snapshot() (*FlashSaleSnapshot, error)
	ListPricedProducts() ([]*PricedProduct, error)
}

type DefaultFlashSaleUsecase struct {
	ProductRepo    domain.ProductRepository
	ConfigProvider domain.SaleConfigProvider
	Location       *time.Location

	Now func() time.Time
}

func NewDefaultFlashSaleUsecase(productRepo domain.ProductRepository, configProvider domain.SaleConfigProvider, loc *time.Location) *DefaultFlashSaleUsecase {
	return &DefaultFlashSaleUsecase{
		ProductRepo:    productRepo,
		ConfigProvider: configProvider,
		Location:       loc,
		Now:            time.Now,
	}
}

func (uc *DefaultFlashSaleUsecase) Snapshot() (*FlashSaleSnapshot, error) {
	now := uc.Now().In(uc.Location)
	cfg := uc.ConfigProvider.Current()

	window, err := saleclock.ParseWindow(cfg.ListingStart, cfg.FlashSaleStart)
	if err != nil {
		slog.Error("invalid sale window in config, using defaults", "error", err.Error())
		window = saleclock.DefaultWindow()
	}

	products, err := uc.pricedProducts(cfg, now)
	if err != nil {
		return nil, err
	}

	return &FlashSaleSnapshot{
		Status:    saleclock.PhaseAt(now, window),
		ListingAt: window.ListingStart.String(),
		OpenAt:    window.FlashSaleStart.String(),
		Countdown: saleclock.Countdown(now, window),
		Products:  products,
	}, nil
}

func (uc *DefaultFlashSaleUsecase) ListPricedProducts() ([]*PricedProduct, error) {
	now := uc.Now().In(uc.Location)
	return uc.pricedProducts(uc.ConfigProvider.Current(), now)
}

func (uc *DefaultFlashSaleUsecase) pricedProducts(cfg domain.SaleConfig, now time.Time) ([]*PricedProduct, error) {
	products, err := uc.ProductRepo.ListProducts()
	if err != nil {
		return nil, err
	}

	priced := make([]*PricedProduct, len(products))
	for i, product := range products {
		price := pricing.PriceForDay(product.BasePrice, cfg.DailyGrowthRate, cfg.BasePriceDate, now)
		priced[i] = &PricedProduct{
			ID:       product.ID,
			Title:    product.Title,
			Subtitle: product.Subtitle,
			Price:    price.StringFixed(2),
			Image:    product.Image,
			Tags:     product.Tags,
		}
	}
	return priced, nil
}
