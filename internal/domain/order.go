package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPendingPay OrderStatus = "pending_pay"
	StatusListed     OrderStatus = "listed"
	StatusSplit      OrderStatus = "split"
	StatusAssigned   OrderStatus = "assigned"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// IsTerminal reports whether no further transition may leave the status.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Order struct {
	ID        string
	OrderNo   string
	UserID    string
	ProductID string

	// Price is locked at creation time and never recomputed.
	Price decimal.Decimal

	// Listing-time fees, computed once by the fee policy when the order
	// is marked paid and frozen afterwards.
	ListingPrice       decimal.Decimal
	ListingFee         decimal.Decimal
	CommissionFee      decimal.Decimal
	PlatformServiceFee decimal.Decimal
	MemberProfit       decimal.Decimal

	Note   string
	Status OrderStatus

	// Split bookkeeping: children carry ParentID and 1 <= SplitIndex <= SplitTotal.
	ParentID   string
	SplitIndex int
	SplitTotal int

	AssignedTo string

	CreatedAt   time.Time
	PaidAt      *time.Time
	ListedAt    *time.Time
	AvailableAt *time.Time
	SplitAt     *time.Time
	AssignedAt  *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
}

type OrderFilters struct {
	UserID   string
	Statuses []OrderStatus
	DateFrom time.Time
	DateTo   time.Time
}
