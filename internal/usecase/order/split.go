package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rosemall/flash-order-service/internal/domain"
	orderdto "github.com/rosemall/flash-order-service/internal/usecase/dto/order"
)

// SplitOrder divides a listed order into parts child orders. All children
// are created and the parent moves to split in one transaction; a guard
// failure creates nothing. The parent's price is apportioned equally with
// the rounding remainder folded into the last child, so the children always
// sum to the parent exactly.
func (uc *DefaultOrderUsecase) SplitOrder(input *orderdto.SplitOrderInput) ([]*orderdto.OrderOutput, error) {
	if input.Parts < 2 {
		return nil, fmt.Errorf("%w: split requires at least 2 parts", domain.ErrValidation)
	}

	order, err := uc.GetOrderByID(input.OrderID)
	if err != nil {
		return nil, err
	}

	if order.Status != domain.StatusListed {
		return nil, fmt.Errorf("%w: only listed orders can be split", domain.ErrStateConflict)
	}

	now := uc.now()
	shares := apportion(order.Price, input.Parts)

	children := make([]*domain.Order, input.Parts)
	for i := 0; i < input.Parts; i++ {
		children[i] = &domain.Order{
			OrderNo:    uc.newOrderNo(),
			UserID:     order.UserID,
			ProductID:  order.ProductID,
			Price:      shares[i],
			Note:       order.Note,
			Status:     domain.StatusListed,
			ParentID:   order.ID,
			SplitIndex: i + 1,
			SplitTotal: input.Parts,
			CreatedAt:  now,
			ListedAt:   &now,
		}
	}

	if err := uc.OrderRepo.SplitOrder(order.ID, children, now); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordOrderSplit(order.ProductID)
	}
	for _, child := range children {
		uc.publishOrderEvent(child, "split")
	}

	return orderdto.ToOrderOutputs(children), nil
}

// apportion divides amount into n shares rounded to 2dp; the last share
// absorbs the rounding remainder.
func apportion(amount decimal.Decimal, n int) []decimal.Decimal {
	share := amount.Div(decimal.NewFromInt(int64(n))).Round(2)

	shares := make([]decimal.Decimal, n)
	running := decimal.Zero
	for i := 0; i < n-1; i++ {
		shares[i] = share
		running = running.Add(share)
	}
	shares[n-1] = amount.Sub(running)
	return shares
}
