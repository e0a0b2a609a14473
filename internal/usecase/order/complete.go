package usecase

import (
	"fmt"

	"github.com/rosemall/flash-order-service/internal/domain"
	orderdto "github.com/rosemall/flash-order-service/internal/usecase/dto/order"
)

// CompleteOrder closes a listed or assigned order.
func (uc *DefaultOrderUsecase) CompleteOrder(orderID string) (*orderdto.OrderOutput, error) {
	order, err := uc.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != domain.StatusListed && order.Status != domain.StatusAssigned {
		return nil, fmt.Errorf("%w: cannot complete a %s order", domain.ErrStateConflict, order.Status)
	}

	if err := uc.OrderRepo.CompleteOrder(orderID, uc.now()); err != nil {
		return nil, err
	}

	updated, err := uc.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordOrderCompleted(updated.ProductID)
	}
	uc.publishOrderEvent(updated, "complete")

	return orderdto.ToOrderOutput(updated), nil
}
