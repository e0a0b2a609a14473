package mappers

import (
	"github.com/rosemall/flash-order-service/internal/domain"
	"github.com/rosemall/flash-order-service/internal/infrastructure/postgres/models"
)

func ToOrderDomain(m *models.OrderModel) *domain.Order {
	order := &domain.Order{
		ID:                 m.ID,
		OrderNo:            m.OrderNo,
		UserID:             m.UserID,
		ProductID:          m.ProductID,
		Price:              m.Price,
		ListingPrice:       m.ListingPrice,
		ListingFee:         m.ListingFee,
		CommissionFee:      m.CommissionFee,
		PlatformServiceFee: m.PlatformServiceFee,
		MemberProfit:       m.MemberProfit,
		Note:               m.Note,
		Status:             m.Status,
		SplitIndex:         m.SplitIndex,
		SplitTotal:         m.SplitTotal,
		AssignedTo:         m.AssignedTo,
		CreatedAt:          m.CreatedAt,
		PaidAt:             m.PaidAt,
		ListedAt:           m.ListedAt,
		AvailableAt:        m.AvailableAt,
		SplitAt:            m.SplitAt,
		AssignedAt:         m.AssignedAt,
		CompletedAt:        m.CompletedAt,
		CancelledAt:        m.CancelledAt,
	}
	if m.ParentID != nil {
		order.ParentID = *m.ParentID
	}
	return order
}

func ToOrderModel(order *domain.Order) *models.OrderModel {
	m := &models.OrderModel{
		ID:                 order.ID,
		OrderNo:            order.OrderNo,
		UserID:             order.UserID,
		ProductID:          order.ProductID,
		Price:              order.Price,
		ListingPrice:       order.ListingPrice,
		ListingFee:         order.ListingFee,
		CommissionFee:      order.CommissionFee,
		PlatformServiceFee: order.PlatformServiceFee,
		MemberProfit:       order.MemberProfit,
		Note:               order.Note,
		Status:             order.Status,
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
	if order.ParentID != "" {
		parentID := order.ParentID
		m.ParentID = &parentID
	}
	return m
}
