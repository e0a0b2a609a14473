package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rosemall/flash-order-service/internal/domain"
	"github.com/rosemall/flash-order-service/internal/infrastructure/postgres/mappers"
	"github.com/rosemall/flash-order-service/internal/infrastructure/postgres/models"
)

// saleConfigRowID: the sale config is a singleton row.
const saleConfigRowID = 1

type DefaultSaleConfigRepository struct {
	DB *gorm.DB
}

func NewDefaultSaleConfigRepository(db *gorm.DB) *DefaultSaleConfigRepository {
	return &DefaultSaleConfigRepository{DB: db}
}

func (r *DefaultSaleConfigRepository) GetSaleConfig() (*domain.SaleConfig, error) {
	var configModel models.SaleConfigModel
	if err := r.DB.First(&configModel, "id = ?", saleConfigRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToSaleConfigDomain(&configModel), nil
}

func (r *DefaultSaleConfigRepository) UpdateSaleWindow(listingStart, flashSaleStart string) (*domain.SaleConfig, error) {
	res := r.DB.Model(&models.SaleConfigModel{}).
		Where("id = ?", saleConfigRowID).
		Updates(map[string]interface{}{
			"listing_start":    listingStart,
			"flash_sale_start": flashSaleStart,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetSaleConfig()
}
