package setup

import (
	"fmt"

	rd "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/rosemall/flash-order-service/internal/config"
	"github.com/rosemall/flash-order-service/internal/domain"
	publisher "github.com/rosemall/flash-order-service/internal/infrastructure/kafka"
	"github.com/rosemall/flash-order-service/internal/infrastructure/metrics"
	"github.com/rosemall/flash-order-service/internal/infrastructure/migrate"
	"github.com/rosemall/flash-order-service/internal/infrastructure/postgres"
	"github.com/rosemall/flash-order-service/internal/infrastructure/redislock"
)

type Dependencies struct {
	Config         *config.OrderConfig
	DB             *gorm.DB
	Redis          *rd.Client
	OrderPublisher *publisher.KafkaPublisher
	CreateLocker   *redislock.RedisCreateLocker
	Metrics        *metrics.OrderMetrics
	Repositories   *Repositories
}

type Repositories struct {
	OrderRepo      domain.OrderRepository
	UserRepo       domain.UserRepository
	ProductRepo    domain.ProductRepository
	CouponRepo     domain.CouponRepository
	ReferralRepo   domain.ReferralRepository
	SaleConfigRepo domain.SaleConfigRepository
}

func InitializeDependencies() (*Dependencies, error) {
	cfg := config.MustLoad()

	db := postgres.MustInitDB(cfg)
	if err := migrate.RunMigrations(db, cfg.OrderDB.MigrationsPath); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	rdb := rd.NewClient(&rd.Options{
		Addr:     cfg.RedisCache.Addr,
		Password: cfg.RedisCache.Password,
		DB:       cfg.RedisCache.DB,
	})

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	orderPublisher := publisher.NewKafkaPublisher(brokers, cfg.KafkaService.Topic)

	repos := &Repositories{
		OrderRepo:      postgres.NewDefaultOrderRepository(db),
		UserRepo:       postgres.NewDefaultUserRepository(db),
		ProductRepo:    postgres.NewDefaultProductRepository(db),
		CouponRepo:     postgres.NewDefaultCouponRepository(db),
		ReferralRepo:   postgres.NewDefaultReferralRepository(db),
		SaleConfigRepo: postgres.NewDefaultSaleConfigRepository(db),
	}

	return &Dependencies{
		Config:         cfg,
		DB:             db,
		Redis:          rdb,
		OrderPublisher: orderPublisher,
		CreateLocker:   redislock.NewRedisCreateLocker(rdb),
		Metrics:        metrics.NewOrderMetrics(),
		Repositories:   repos,
	}, nil
}
