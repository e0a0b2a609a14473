package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rosemall/flash-order-service/internal/domain"
)

type ProductInput struct {
	Title     string
	Subtitle  string
	BasePrice decimal.Decimal
	Image     string
	Tags      []string
}

type ProductUsecase interface {
	CreateProduct(input *ProductInput) (*domain.Product, error)
	GetProductByID(productID string) (*domain.Product, error)
	ListProducts() ([]*domain.Product, error)
	UpdateProduct(productID string, input *ProductInput) (*domain.Product, error)
	DeleteProduct(productID string) error
}

type DefaultProductUsecase struct {
	ProductRepo domain.ProductRepository
}

func NewDefaultProductUsecase(productRepo domain.ProductRepository) *DefaultProductUsecase {
	return &DefaultProductUsecase{ProductRepo: productRepo}
}

func (uc *DefaultProductUsecase) CreateProduct(input *ProductInput) (*domain.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := &domain.Product{
		Title:     input.Title,
		Subtitle:  input.Subtitle,
		BasePrice: input.BasePrice,
		Image:     input.Image,
		Tags:      input.Tags,
	}
	if _, err := uc.ProductRepo.CreateProduct(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *DefaultProductUsecase) GetProductByID(productID string) (*domain.Product, error) {
	return uc.ProductRepo.GetProductByID(productID)
}

func (uc *DefaultProductUsecase) ListProducts() ([]*domain.Product, error) {
	return uc.ProductRepo.ListProducts()
}

func (uc *DefaultProductUsecase) UpdateProduct(productID string, input *ProductInput) (*domain.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := uc.ProductRepo.GetProductByID(productID)
	if err != nil {
		return nil, err
	}

	product.Title = input.Title
	product.Subtitle = input.Subtitle
	product.BasePrice = input.BasePrice
	product.Image = input.Image
	product.Tags = input.Tags

	if err := uc.ProductRepo.UpdateProduct(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *DefaultProductUsecase) DeleteProduct(productID string) error {
	return uc.ProductRepo.DeleteProduct(productID)
}

func validateProductInput(input *ProductInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.BasePrice.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: base price must be positive", domain.ErrValidation)
	}
	return nil
}
