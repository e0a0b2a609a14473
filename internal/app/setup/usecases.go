package setup

import (
	"time"

	"github.com/rosemall/flash-order-service/internal/fees"
	uc "github.com/rosemall/flash-order-service/internal/usecase"
	orderuc "github.com/rosemall/flash-order-service/internal/usecase/order"
)

type UseCases struct {
	OrderUsecase       orderuc.OrderUsecase
	FlashSaleUsecase   uc.FlashSaleUsecase
	ProductUsecase     uc.ProductUsecase
	UserUsecase        uc.UserUsecase
	CouponUsecase      uc.CouponUsecase
	ReferralUsecase    uc.ReferralUsecase
	ProfileUsecase     uc.ProfileUsecase
	DashboardUsecase   uc.DashboardUsecase
	SaleConfigProvider *uc.DefaultSaleConfigProvider
}

func InitializeUseCases(deps *Dependencies) (*UseCases, error) {
	cfg := deps.Config
	loc := cfg.Location()
	repos := deps.Repositories

	configProvider := uc.NewDefaultSaleConfigProvider(repos.SaleConfigRepo)

	feePolicy := fees.NewRatioPolicy(
		cfg.Sale.ListingMarkupRate,
		cfg.Sale.ListingFeeRate,
		cfg.Sale.CommissionRate,
		cfg.Sale.PlatformFeeRate,
	)

	orderUsecase := orderuc.NewDefaultOrderUsecase(
		repos.OrderRepo,
		repos.UserRepo,
		repos.ProductRepo,
		configProvider,
		feePolicy,
		deps.CreateLocker,
		deps.OrderPublisher,
		deps.Metrics,
		cfg.KafkaService.Topic,
		loc,
		time.Duration(cfg.Sale.PendingOrderTTLMinutes)*time.Minute,
	)

	return &UseCases{
		OrderUsecase:       orderUsecase,
		FlashSaleUsecase:   uc.NewDefaultFlashSaleUsecase(repos.ProductRepo, configProvider, loc),
		ProductUsecase:     uc.NewDefaultProductUsecase(repos.ProductRepo),
		UserUsecase:        uc.NewDefaultUserUsecase(repos.UserRepo, repos.ReferralRepo),
		CouponUsecase:      uc.NewDefaultCouponUsecase(repos.CouponRepo, repos.UserRepo),
		ReferralUsecase:    uc.NewDefaultReferralUsecase(repos.ReferralRepo, repos.UserRepo, configProvider),
		ProfileUsecase:     uc.NewDefaultProfileUsecase(repos.UserRepo, repos.OrderRepo, repos.CouponRepo, repos.ReferralRepo, configProvider, loc),
		DashboardUsecase:   uc.NewDefaultDashboardUsecase(repos.OrderRepo, repos.UserRepo, loc),
		SaleConfigProvider: configProvider,
	}, nil
}
