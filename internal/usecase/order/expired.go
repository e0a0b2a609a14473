package usecase

import (
	"context"
	"log/slog"

	"github.com/rosemall/flash-order-service/internal/domain"
)

// CancelExpiredOrders sweeps pending_pay orders older than the configured
// TTL. Each cancel goes through the same guarded transition as a manual
// one; an order paid between the query and the update simply loses the
// race and is skipped.
func (uc *DefaultOrderUsecase) CancelExpiredOrders(ctx context.Context) error {
	cutoff := uc.now().Add(-uc.PendingOrderTTL)

	expired, err := uc.OrderRepo.FindExpiredPendingOrders(cutoff)
	if err != nil {
		return err
	}

	for _, order := range expired {
		if err := uc.OrderRepo.CancelOrder(order.ID, uc.now()); err != nil {
			if err == domain.ErrStateConflict {
				continue
			}
			slog.Error("failed to auto-cancel order", "order_id", order.ID, "error", err.Error())
			continue
		}
		if uc.Metrics != nil {
			uc.Metrics.RecordOrderCancelled(order.ProductID, "expired")
		}
		order.Status = domain.StatusCancelled
		uc.publishOrderEvent(order, "auto_cancel")
		slog.Info("expired pending order cancelled", "order_id", order.ID)
	}

	return nil
}
