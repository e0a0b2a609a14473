package usecase

import (
	"fmt"

	"github.com/rosemall/flash-order-service/internal/domain"
	orderdto "github.com/rosemall/flash-order-service/internal/usecase/dto/order"
)

// CancelOrder cancels a pending_pay order. Orders past payment cannot be
// cancelled; that is the only path out of the listed branch and it runs
// through complete.
func (uc *DefaultOrderUsecase) CancelOrder(orderID string) (*orderdto.OrderOutput, error) {
	order, err := uc.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != domain.StatusPendingPay {
		return nil, fmt.Errorf("%w: cannot cancel a %s order", domain.ErrStateConflict, order.Status)
	}

	if err := uc.OrderRepo.CancelOrder(orderID, uc.now()); err != nil {
		return nil, err
	}

	updated, err := uc.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordOrderCancelled(updated.ProductID, "manual")
	}
	uc.publishOrderEvent(updated, "cancel")

	return orderdto.ToOrderOutput(updated), nil
}
