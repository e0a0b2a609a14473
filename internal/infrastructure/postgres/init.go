package postgres

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rosemall/flash-order-service/internal/config"
	"github.com/rosemall/flash-order-service/internal/infrastructure/postgres/models"
)

func MustInitDB(cfg *config.OrderConfig) *gorm.DB {
	dsn := cfg.OrderDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.UserModel{},
		&models.ProductModel{},
		&models.SaleConfigModel{},
		&models.OrderModel{},
		&models.CouponModel{},
		&models.ReferralModel{},
	)

	return db
}
