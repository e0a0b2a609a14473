package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID        string
	Title     string
	Subtitle  string
	BasePrice decimal.Decimal
	Image     string
	Tags      []string
}

type ProductRepository interface {
	CreateProduct(product *Product) (string, error)
	GetProductByID(productID string) (*Product, error)
	ListProducts() ([]*Product, error)
	UpdateProduct(product *Product) error
	DeleteProduct(productID string) error
}
