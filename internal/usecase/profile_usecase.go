package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rosemall/flash-order-service/internal/domain"
	"github.com/rosemall/flash-order-service/internal/saleclock"
)

// Profile is the aggregate the storefront "me" page renders in one call.
// RemainingQuota is nil for main accounts, which are quota-exempt.
type Profile struct {
	User            *domain.User
	TodayOrders     int64
	RemainingQuota  *int
	CouponsBalance  decimal.Decimal
	ReferralCount   int64
	CashThreshold   decimal.Decimal
	AgreementSigned bool
}

type ProfileUsecase interface {
	Profile(userID string) (*Profile, error)
}

type DefaultProfileUsecase struct {
	UserRepo       domain.UserRepository
	OrderRepo      domain.OrderRepository
	CouponRepo     domain.CouponRepository
	ReferralRepo   domain.ReferralRepository
	ConfigProvider domain.SaleConfigProvider
	Location       *time.Location

	Now func() time.Time
}

func NewDefaultProfileUsecase(
	userRepo domain.UserRepository,
	orderRepo domain.OrderRepository,
	couponRepo domain.CouponRepository,
	referralRepo domain.ReferralRepository,
	configProvider domain.SaleConfigProvider,
	loc *time.Location) *DefaultProfileUsecase {

	return &DefaultProfileUsecase{
		UserRepo:       userRepo,
		OrderRepo:      orderRepo,
		CouponRepo:     couponRepo,
		ReferralRepo:   referralRepo,
		ConfigProvider: configProvider,
		Location:       loc,
		Now:            time.Now,
	}
}

func (uc *DefaultProfileUsecase) Profile(userID string) (*Profile, error) {
	user, err := uc.UserRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	now := uc.Now().In(uc.Location)
	dayStart, dayEnd := saleclock.DayBounds(now, uc.Location)

	todayOrders, err := uc.OrderRepo.CountUserOrders(userID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	balance, err := uc.CouponRepo.SumUnusedByUserID(userID)
	if err != nil {
		return nil, err
	}

	referralCount, err := uc.ReferralRepo.CountByReferrerID(userID)
	if err != nil {
		return nil, err
	}

	cfg := uc.ConfigProvider.Current()

	var remaining *int
	if !user.IsMainAccount {
		left := cfg.MaxOrdersPerDay - int(todayOrders)
		if left < 0 {
			left = 0
		}
		remaining = &left
	}

	return &Profile{
		User:            user,
		TodayOrders:     todayOrders,
		RemainingQuota:  remaining,
		CouponsBalance:  balance,
		ReferralCount:   referralCount,
		CashThreshold:   cfg.CouponCashThreshold,
		AgreementSigned: user.AgreementSignedAt != nil,
	}, nil
}
