package orderdto

import (
	"time"

	"github.com/rosemall/flash-order-service/internal/domain"
)

type OrderOutput struct {
	ID                 string             `json:"id"`
	OrderNo            string             `json:"orderNo"`
	UserID             string             `json:"userId"`
	ProductID          string             `json:"productId"`
	Price              string             `json:"price"`
	ListingPrice       string             `json:"listingPrice"`
	ListingFee         string             `json:"listingFee"`
	CommissionFee      string             `json:"commissionFee"`
	PlatformServiceFee string             `json:"platformServiceFee"`
	MemberProfit       string             `json:"memberProfit"`
	Note               string             `json:"note"`
	Status             domain.OrderStatus `json:"status"`
	ParentID           string             `json:"parentId,omitempty"`
	SplitIndex         int                `json:"splitIndex,omitempty"`
	SplitTotal         int                `json:"splitTotal,omitempty"`
	AssignedTo         string             `json:"assignedTo,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
	PaidAt             *time.Time         `json:"paidAt,omitempty"`
	ListedAt           *time.Time         `json:"listedAt,omitempty"`
	AvailableAt        *time.Time         `json:"availableAt,omitempty"`
	SplitAt            *time.Time         `json:"splitAt,omitempty"`
	AssignedAt         *time.Time         `json:"assignedAt,omitempty"`
	CompletedAt        *time.Time         `json:"completedAt,omitempty"`
	CancelledAt        *time.Time         `json:"cancelledAt,omitempty"`
}

func ToOrderOutput(order *domain.Order) *OrderOutput {
	return &OrderOutput{
		ID:                 order.ID,
		OrderNo:            order.OrderNo,
		UserID:             order.UserID,
		ProductID:          order.ProductID,
		Price:              order.Price.StringFixed(2),
		ListingPrice:       order.ListingPrice.StringFixed(2),
		ListingFee:         order.ListingFee.StringFixed(2),
		CommissionFee:      order.CommissionFee.StringFixed(2),
		PlatformServiceFee: order.PlatformServiceFee.StringFixed(2),
		MemberProfit:       order.MemberProfit.StringFixed(2),
		Note:               order.Note,
		Status:             order.Status,
		ParentID:           order.ParentID,
		SplitIndex:         order.SplitIndex,
		SplitTotal:         order.SplitTotal,
		AssignedTo:         order.AssignedTo,
		CreatedAt:          order.CreatedAt,
		PaidAt:             order.PaidAt,
		ListedAt:           order.ListedAt,
		AvailableAt:        order.AvailableAt,
		SplitAt:            order.SplitAt,
		AssignedAt:         order.AssignedAt,
		CompletedAt:        order.CompletedAt,
		CancelledAt:        order.CancelledAt,
	}
}

func ToOrderOutputs(orders []*domain.Order) []*OrderOutput {
	outputs := make([]*OrderOutput, len(orders))
	for i, order := range orders {
		outputs[i] = ToOrderOutput(order)
	}
	return outputs
}
