package usecase

import (
	"context"
	"log/slog"

	"github.com/rosemall/flash-order-service/internal/domain"
	"github.com/rosemall/flash-order-service/internal/pricing"
	orderdto "github.com/rosemall/flash-order-service/internal/usecase/dto/order"
)

// AdminAddOrder creates an order on behalf of a user. The quota gate, the
// phase gate and the signature checks do not apply; the price is still
// locked from today's curve.
func (uc *DefaultOrderUsecase) AdminAddOrder(ctx context.Context, input *orderdto.AdminAddOrderInput) (*orderdto.OrderOutput, error) {
	user, err := uc.UserRepo.GetUserByID(input.UserID)
	if err != nil {
		return nil, err
	}
	product, err := uc.ProductRepo.GetProductByID(input.ProductID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	cfg := uc.ConfigProvider.Current()
	price := pricing.PriceForDay(product.BasePrice, cfg.DailyGrowthRate, cfg.BasePriceDate, now)

	order := &domain.Order{
		OrderNo:   uc.newOrderNo(),
		UserID:    user.ID,
		ProductID: product.ID,
		Price:     price,
		Note:      input.Note,
		Status:    domain.StatusPendingPay,
		CreatedAt: now,
	}

	if _, err := uc.OrderRepo.CreateOrder(order); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordOrderCreated(product.ID, "admin")
	}
	uc.publishOrderEvent(order, "admin_add")

	slog.Info("order added by admin", "order_id", order.ID, "user_id", user.ID, "product_id", product.ID)
	return orderdto.ToOrderOutput(order), nil
}
