package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rosemall/flash-order-service/internal/domain"
	"github.com/rosemall/flash-order-service/internal/saleclock"
)

type DashboardStats struct {
	TodayOrders   int64
	TodayRevenue  decimal.Decimal
	TotalUsers    int64
	PendingOrders int64
	ListedOrders  int64
}

type DashboardUsecase interface {
	Stats() (*DashboardStats, error)
}

type DefaultDashboardUsecase struct {
	OrderRepo domain.OrderRepository
	UserRepo  domain.UserRepository
	Location  *time.Location

	Now func() time.Time
}

func NewDefaultDashboardUsecase(orderRepo domain.OrderRepository, userRepo domain.UserRepository, loc *time.Location) *DefaultDashboardUsecase {
	return &DefaultDashboardUsecase{
		OrderRepo: orderRepo,
		UserRepo:  userRepo,
		Location:  loc,
		Now:       time.Now,
	}
}

func (uc *DefaultDashboardUsecase) Stats() (*DashboardStats, error) {
	now := uc.Now().In(uc.Location)
	dayStart, dayEnd := saleclock.DayBounds(now, uc.Location)

	todayOrders, err := uc.OrderRepo.CountOrders(dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	todayRevenue, err := uc.OrderRepo.SumOrderAmount(dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	totalUsers, err := uc.UserRepo.CountUsers()
	if err != nil {
		return nil, err
	}

	pending, err := uc.OrderRepo.CountOrdersByStatus(domain.StatusPendingPay)
	if err != nil {
		return nil, err
	}

	listed, err := uc.OrderRepo.CountOrdersByStatus(domain.StatusListed)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TodayOrders:   todayOrders,
		TodayRevenue:  todayRevenue,
		TotalUsers:    totalUsers,
		PendingOrders: pending,
		ListedOrders:  listed,
	}, nil
}
