package domain

import "github.com/shopspring/decimal"

// ListingFees is the set of amounts frozen on an order when it is listed.
type ListingFees struct {
	ListingPrice       decimal.Decimal
	ListingFee         decimal.Decimal
	CommissionFee      decimal.Decimal
	PlatformServiceFee decimal.Decimal
	MemberProfit       decimal.Decimal
}

// FeePolicy computes listing-time fees from the locked order price.
// It is an external pricing-policy collaborator: the lifecycle only
// requires that the result is computed once and then frozen.
type FeePolicy interface {
	ListingFees(price decimal.Decimal) ListingFees
}
