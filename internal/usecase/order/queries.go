package usecase

import (
	"github.com/rosemall/flash-order-service/internal/domain"
	"github.com/rosemall/flash-order-service/internal/saleclock"
	orderdto "github.com/rosemall/flash-order-service/internal/usecase/dto/order"
)

func (uc *DefaultOrderUsecase) GetOrderByID(orderID string) (*domain.Order, error) {
	return uc.OrderRepo.GetOrderByID(orderID)
}

func (uc *DefaultOrderUsecase) ListOrdersByUserID(userID string) ([]*orderdto.OrderOutput, error) {
	orders, err := uc.OrderRepo.ListOrdersByUserID(userID)
	if err != nil {
		return nil, err
	}
	return orderdto.ToOrderOutputs(orders), nil
}

func (uc *DefaultOrderUsecase) ListOrders(filters domain.OrderFilters) ([]*orderdto.OrderOutput, int64, error) {
	orders, total, err := uc.OrderRepo.ListOrders(filters)
	if err != nil {
		return nil, 0, err
	}
	return orderdto.ToOrderOutputs(orders), total, nil
}

// RemainingQuota returns how many flash orders the user may still create
// today; nil means unbounded (main account).
func (uc *DefaultOrderUsecase) RemainingQuota(userID string) (*int, error) {
	user, err := uc.UserRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user.IsMainAccount {
		return nil, nil
	}

	count, err := uc.TodayOrderCount(userID)
	if err != nil {
		return nil, err
	}

	cfg := uc.ConfigProvider.Current()
	remaining := cfg.MaxOrdersPerDay - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return &remaining, nil
}

// TodayOrderCount counts the user's non-cancelled orders within the venue
// calendar day.
func (uc *DefaultOrderUsecase) TodayOrderCount(userID string) (int64, error) {
	dayStart, dayEnd := saleclock.DayBounds(uc.now(), uc.Location)
	return uc.OrderRepo.CountUserOrders(userID, dayStart, dayEnd)
}
