package usecase

import (
	"fmt"

	"github.com/rosemall/flash-order-service/internal/domain"
	orderdto "github.com/rosemall/flash-order-service/internal/usecase/dto/order"
)

// MarkPaid confirms payment: pending_pay -> listed. Fees are computed once
// by the fee policy here and frozen on the order. Calling it twice fails
// the second time with a state conflict; paidAt is never overwritten.
func (uc *DefaultOrderUsecase) MarkPaid(orderID string) (*orderdto.OrderOutput, error) {
	order, err := uc.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != domain.StatusPendingPay {
		return nil, fmt.Errorf("%w: cannot mark %s order as paid", domain.ErrStateConflict, order.Status)
	}

	fees := uc.FeePolicy.ListingFees(order.Price)

	// The repository re-checks the status inside the UPDATE, so a
	// concurrent transition loses cleanly instead of double-applying.
	if err := uc.OrderRepo.MarkPaid(orderID, fees, uc.now()); err != nil {
		return nil, err
	}

	updated, err := uc.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordOrderListed(updated.ProductID)
	}
	uc.publishOrderEvent(updated, "mark_paid")

	return orderdto.ToOrderOutput(updated), nil
}
