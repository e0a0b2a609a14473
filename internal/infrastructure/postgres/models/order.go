package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rosemall/flash-order-service/internal/domain"
)

type OrderModel struct {
	ID        string             `gorm:"primaryKey;type:uuid"`
	OrderNo   string             `gorm:"uniqueIndex"`
	UserID    string             `gorm:"type:uuid;index:idx_orders_user_created"`
	ProductID string             `gorm:"type:uuid"`
	Status    domain.OrderStatus `gorm:"index:idx_orders_status"`

	Price              decimal.Decimal `gorm:"type:numeric(12,2)"`
	ListingPrice       decimal.Decimal `gorm:"type:numeric(12,2)"`
	ListingFee         decimal.Decimal `gorm:"type:numeric(12,2)"`
	CommissionFee      decimal.Decimal `gorm:"type:numeric(12,2)"`
	PlatformServiceFee decimal.Decimal `gorm:"type:numeric(12,2)"`
	MemberProfit       decimal.Decimal `gorm:"type:numeric(12,2)"`

	Note string

	ParentID   *string `gorm:"type:uuid;index"`
	SplitIndex int
	SplitTotal int

	AssignedTo string

	CreatedAt   time.Time `gorm:"index:idx_orders_user_created"`
	UpdatedAt   time.Time
	PaidAt      *time.Time
	ListedAt    *time.Time
	AvailableAt *time.Time
	SplitAt     *time.Time
	AssignedAt  *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
}

func (OrderModel) TableName() string { return "orders" }
