package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	// CreateOrder inserts the order without any quota check (admin add-order path).
	CreateOrder(order *Order) (string, error)

	// CreateOrderWithQuota inserts the order only if the user holds fewer than
	// maxPerDay non-cancelled orders created within [dayStart, dayEnd).
	// The count and the insert run in one transaction; returns ErrQuotaExceeded
	// when the quota is already spent.
	CreateOrderWithQuota(order *Order, maxPerDay int, dayStart, dayEnd time.Time) (string, error)

	GetOrderByID(orderID string) (*Order, error)
	ListOrdersByUserID(userID string) ([]*Order, error)
	ListOrders(filters OrderFilters) ([]*Order, int64, error)

	CountUserOrders(userID string, from, to time.Time) (int64, error)
	CountOrdersByStatus(status OrderStatus) (int64, error)
	CountOrders(from, to time.Time) (int64, error)
	SumOrderAmount(from, to time.Time) (decimal.Decimal, error)

	// MarkPaid moves pending_pay -> listed and freezes the listing fees.
	// The status check is re-evaluated inside the UPDATE; a lost race
	// surfaces as ErrStateConflict.
	MarkPaid(orderID string, fees ListingFees, at time.Time) error

	// SplitOrder atomically creates all children and moves the parent
	// listed -> split. Either everything is applied or nothing is.
	SplitOrder(parentID string, children []*Order, at time.Time) error

	AssignOrder(orderID string, assignee string, at time.Time) error
	CompleteOrder(orderID string, at time.Time) error
	CancelOrder(orderID string, at time.Time) error

	FindExpiredPendingOrders(createdBefore time.Time) ([]*Order, error)
}
