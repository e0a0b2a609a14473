package usecase

import (
	"fmt"
	"strings"

	"github.com/rosemall/flash-order-service/internal/domain"
	orderdto "github.com/rosemall/flash-order-service/internal/usecase/dto/order"
)

// AssignOrder records the fulfilment party on any non-terminal order.
// A listed order advances to assigned; other statuses keep their status
// and only record the assignee.
func (uc *DefaultOrderUsecase) AssignOrder(input *orderdto.AssignOrderInput) (*orderdto.OrderOutput, error) {
	if strings.TrimSpace(input.Assignee) == "" {
		return nil, fmt.Errorf("%w: assignee is required", domain.ErrValidation)
	}

	order, err := uc.GetOrderByID(input.OrderID)
	if err != nil {
		return nil, err
	}

	if order.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: cannot assign a %s order", domain.ErrStateConflict, order.Status)
	}

	if err := uc.OrderRepo.AssignOrder(order.ID, input.Assignee, uc.now()); err != nil {
		return nil, err
	}

	updated, err := uc.GetOrderByID(order.ID)
	if err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordOrderAssigned(updated.ProductID)
	}
	uc.publishOrderEvent(updated, "assign")

	return orderdto.ToOrderOutput(updated), nil
}
