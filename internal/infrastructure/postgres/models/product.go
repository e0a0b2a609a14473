package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type ProductModel struct {
	ID        string          `gorm:"primaryKey;type:uuid"`
	Title     string          `gorm:"not null"`
	Subtitle  string
	BasePrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	Image     string
	Tags      pq.StringArray  `gorm:"type:text[]"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProductModel) TableName() string { return "products" }
