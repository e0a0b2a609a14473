package fees

import (
	"github.com/shopspring/decimal"

	"github.com/rosemall/flash-order-service/internal/domain"
)

// RatioPolicy derives listing fees as fixed ratios of the locked order
// price. Ratios come from static config; member profit is what remains of
// the markup after all fees.
type RatioPolicy struct {
	ListingMarkupRate decimal.Decimal
	ListingFeeRate    decimal.Decimal
	CommissionRate    decimal.Decimal
	PlatformFeeRate   decimal.Decimal
}

func NewRatioPolicy(markup, listing, commission, platform float64) *RatioPolicy {
	return &RatioPolicy{
		ListingMarkupRate: decimal.NewFromFloat(markup),
		ListingFeeRate:    decimal.NewFromFloat(listing),
		CommissionRate:    decimal.NewFromFloat(commission),
		PlatformFeeRate:   decimal.NewFromFloat(platform),
	}
}

func (p *RatioPolicy) ListingFees(price decimal.Decimal) domain.ListingFees {
	listingPrice := price.Mul(decimal.NewFromInt(1).Add(p.ListingMarkupRate)).Round(2)
	listingFee := price.Mul(p.ListingFeeRate).Round(2)
	commissionFee := price.Mul(p.CommissionRate).Round(2)
	platformFee := price.Mul(p.PlatformFeeRate).Round(2)
	memberProfit := listingPrice.Sub(price).Sub(listingFee).Sub(commissionFee).Sub(platformFee)

	return domain.ListingFees{
		ListingPrice:       listingPrice,
		ListingFee:         listingFee,
		CommissionFee:      commissionFee,
		PlatformServiceFee: platformFee,
		MemberProfit:       memberProfit,
	}
}
