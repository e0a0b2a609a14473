package postgres

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rosemall/flash-order-service/internal/domain"
	"github.com/rosemall/flash-order-service/internal/infrastructure/postgres/mappers"
	"github.com/rosemall/flash-order-service/internal/infrastructure/postgres/models"
)

type DefaultProductRepository struct {
	DB *gorm.DB
}

func NewDefaultProductRepository(db *gorm.DB) *DefaultProductRepository {
	return &DefaultProductRepository{DB: db}
}

func (r *DefaultProductRepository) CreateProduct(product *domain.Product) (string, error) {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.DB.Create(mappers.ToProductModel(product)).Error; err != nil {
		return "", err
	}
	return product.ID, nil
}

func (r *DefaultProductRepository) GetProductByID(productID string) (*domain.Product, error) {
	var productModel models.ProductModel
	if err := r.DB.First(&productModel, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToProductDomain(&productModel), nil
}

func (r *DefaultProductRepository) ListProducts() ([]*domain.Product, error) {
	var productModels []models.ProductModel
	if err := r.DB.Order("created_at ASC").Find(&productModels).Error; err != nil {
		return nil, err
	}

	products := make([]*domain.Product, len(productModels))
	for i := range productModels {
		products[i] = mappers.ToProductDomain(&productModels[i])
	}
	return products, nil
}

func (r *DefaultProductRepository) UpdateProduct(product *domain.Product) error {
	res := r.DB.Model(&models.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"title":      product.Title,
			"subtitle":   product.Subtitle,
			"base_price": product.BasePrice,
			"image":      product.Image,
			"tags":       mappers.ToProductModel(product).Tags,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DefaultProductRepository) DeleteProduct(productID string) error {
	res := r.DB.Delete(&models.ProductModel{}, "id = ?", productID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
