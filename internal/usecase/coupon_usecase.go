package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rosemall/flash-order-service/internal/domain"
)

type GrantCouponInput struct {
	UserID string
	Amount decimal.Decimal
	Reason string
}

type CouponUsecase interface {
	GrantCoupon(input *GrantCouponInput) (*domain.Coupon, error)
	ListCouponsByUserID(userID string) ([]*domain.Coupon, error)
	ListCoupons() ([]*domain.Coupon, error)
	Balance(userID string) (decimal.Decimal, error)
}

type DefaultCouponUsecase struct {
	CouponRepo domain.CouponRepository
	UserRepo   domain.UserRepository
}

func NewDefaultCouponUsecase(couponRepo domain.CouponRepository, userRepo domain.UserRepository) *DefaultCouponUsecase {
	return &DefaultCouponUsecase{CouponRepo: couponRepo, UserRepo: userRepo}
}

func (uc *DefaultCouponUsecase) GrantCoupon(input *GrantCouponInput) (*domain.Coupon, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: coupon amount must be positive", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Reason) == "" {
		return nil, fmt.Errorf("%w: reason is required", domain.ErrValidation)
	}

	if _, err := uc.UserRepo.GetUserByID(input.UserID); err != nil {
		return nil, err
	}

	coupon := &domain.Coupon{
		UserID: input.UserID,
		Amount: input.Amount,
		Status: domain.CouponUnused,
		Reason: input.Reason,
	}
	if _, err := uc.CouponRepo.CreateCoupon(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (uc *DefaultCouponUsecase) ListCouponsByUserID(userID string) ([]*domain.Coupon, error) {
	return uc.CouponRepo.ListCouponsByUserID(userID)
}

func (uc *DefaultCouponUsecase) ListCoupons() ([]*domain.Coupon, error) {
	return uc.CouponRepo.ListCoupons()
}

func (uc *DefaultCouponUsecase) Balance(userID string) (decimal.Decimal, error) {
	return uc.CouponRepo.SumUnusedByUserID(userID)
}
