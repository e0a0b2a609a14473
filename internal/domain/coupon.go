package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CouponStatus string

const (
	CouponUnused  CouponStatus = "unused"
	CouponUsed    CouponStatus = "used"
	CouponExpired CouponStatus = "expired"
)

type Coupon struct {
	ID        string
	UserID    string
	Amount    decimal.Decimal
	Status    CouponStatus
	Reason    string
	CreatedAt time.Time
}

type CouponRepository interface {
	CreateCoupon(coupon *Coupon) (string, error)
	ListCouponsByUserID(userID string) ([]*Coupon, error)
	ListCoupons() ([]*Coupon, error)
	SumUnusedByUserID(userID string) (decimal.Decimal, error)
}
