package usecase

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/jaevor/go-nanoid"

	"github.com/rosemall/flash-order-service/internal/domain"
	publisher "github.com/rosemall/flash-order-service/internal/infrastructure/kafka"
	"github.com/rosemall/flash-order-service/internal/infrastructure/metrics"
	orderdto "github.com/rosemall/flash-order-service/internal/usecase/dto/order"
)

type OrderUsecase interface {
	CreateFlashOrder(ctx context.Context, input *orderdto.CreateFlashOrderInput) (*orderdto.OrderOutput, error)
	AdminAddOrder(ctx context.Context, input *orderdto.AdminAddOrderInput) (*orderdto.OrderOutput, error)

	MarkPaid(orderID string) (*orderdto.OrderOutput, error)
	SplitOrder(input *orderdto.SplitOrderInput) ([]*orderdto.OrderOutput, error)
	AssignOrder(input *orderdto.AssignOrderInput) (*orderdto.OrderOutput, error)
	CompleteOrder(orderID string) (*orderdto.OrderOutput, error)
	CancelOrder(orderID string) (*orderdto.OrderOutput, error)
	CancelExpiredOrders(ctx context.Context) error

	GetOrderByID(orderID string) (*domain.Order, error)
	ListOrdersByUserID(userID string) ([]*orderdto.OrderOutput, error)
	ListOrders(filters domain.OrderFilters) ([]*orderdto.OrderOutput, int64, error)
	RemainingQuota(userID string) (*int, error)
}

// CreateLocker serializes create-order submissions per user. The redis
// implementation backs it in production; tests fake it.
type CreateLocker interface {
	Acquire(ctx context.Context, userID, token string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, userID, token string) error
}

type DefaultOrderUsecase struct {
	OrderRepo      domain.OrderRepository
	UserRepo       domain.UserRepository
	ProductRepo    domain.ProductRepository
	ConfigProvider domain.SaleConfigProvider
	FeePolicy      domain.FeePolicy
	Locker         CreateLocker
	Publisher      domain.MessagePublisher
	Metrics        *metrics.OrderMetrics

	Topic    string
	Location *time.Location

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time

	newOrderNo func() string

	// pending_pay orders older than this are auto-cancelled.
	PendingOrderTTL time.Duration
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	userRepo domain.UserRepository,
	productRepo domain.ProductRepository,
	configProvider domain.SaleConfigProvider,
	feePolicy domain.FeePolicy,
	locker CreateLocker,
	pub domain.MessagePublisher,
	orderMetrics *metrics.OrderMetrics,
	topic string,
	loc *time.Location,
	pendingOrderTTL time.Duration) *DefaultOrderUsecase {

	orderNoGenerator, err := nanoid.Standard(15)
	if err != nil {
		log.Fatalf("failed to init order number generator: %v", err)
	}

	return &DefaultOrderUsecase{
		OrderRepo:       orderRepo,
		UserRepo:        userRepo,
		ProductRepo:     productRepo,
		ConfigProvider:  configProvider,
		FeePolicy:       feePolicy,
		Locker:          locker,
		Publisher:       pub,
		Metrics:         orderMetrics,
		Topic:           topic,
		Location:        loc,
		Now:             time.Now,
		newOrderNo:      orderNoGenerator,
		PendingOrderTTL: pendingOrderTTL,
	}
}

func (uc *DefaultOrderUsecase) now() time.Time {
	if uc.Now != nil {
		return uc.Now().In(uc.Location)
	}
	return time.Now().In(uc.Location)
}

// publishOrderEvent fans out a lifecycle transition; delivery failures are
// logged, never surfaced to the caller.
func (uc *DefaultOrderUsecase) publishOrderEvent(order *domain.Order, transition string) {
	if uc.Publisher == nil {
		return
	}

	event := publisher.OrderEvent{
		OrderID:    order.ID,
		OrderNo:    order.OrderNo,
		UserID:     order.UserID,
		ProductID:  order.ProductID,
		Status:     string(order.Status),
		Price:      order.Price.StringFixed(2),
		Transition: transition,
		OccurredAt: uc.now(),
	}

	go func() {
		if err := publishEvent(uc.Publisher, uc.Topic, event); err != nil {
			slog.Error("failed to publish order event", "order_id", order.ID, "transition", transition, "error", err.Error())
		}
	}()
}
