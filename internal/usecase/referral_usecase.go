package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/rosemall/flash-order-service/internal/domain"
)

// ReferralSummary pairs the referred-user list with the accrued reward,
// computed as count times the per-user reward from the sale config.
type ReferralSummary struct {
	InviteCode  string
	Count       int64
	TotalReward decimal.Decimal
	Entries     []*domain.ReferralEntry
}

type ReferralUsecase interface {
	Summary(userID string) (*ReferralSummary, error)
}

type DefaultReferralUsecase struct {
	ReferralRepo   domain.ReferralRepository
	UserRepo       domain.UserRepository
	ConfigProvider domain.SaleConfigProvider
}

func NewDefaultReferralUsecase(referralRepo domain.ReferralRepository, userRepo domain.UserRepository, configProvider domain.SaleConfigProvider) *DefaultReferralUsecase {
	return &DefaultReferralUsecase{
		ReferralRepo:   referralRepo,
		UserRepo:       userRepo,
		ConfigProvider: configProvider,
	}
}

func (uc *DefaultReferralUsecase) Summary(userID string) (*ReferralSummary, error) {
	user, err := uc.UserRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	entries, err := uc.ReferralRepo.ListByReferrerID(userID)
	if err != nil {
		return nil, err
	}

	cfg := uc.ConfigProvider.Current()
	count := int64(len(entries))

	return &ReferralSummary{
		InviteCode:  user.InviteCode,
		Count:       count,
		TotalReward: cfg.ReferralRewardPerUser.Mul(decimal.NewFromInt(count)),
		Entries:     entries,
	}, nil
}
