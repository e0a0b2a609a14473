package mappers

import (
	"github.com/rosemall/flash-order-service/internal/domain"
	"github.com/rosemall/flash-order-service/internal/infrastructure/postgres/models"
)

func ToProductDomain(m *models.ProductModel) *domain.Product {
	return &domain.Product{
		ID:        m.ID,
		Title:     m.Title,
		Subtitle:  m.Subtitle,
		BasePrice: m.BasePrice,
		Image:     m.Image,
		Tags:      []string(m.Tags),
	}
}

func ToProductModel(p *domain.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:        p.ID,
		Title:     p.Title,
		Subtitle:  p.Subtitle,
		BasePrice: p.BasePrice,
		Image:     p.Image,
		Tags:      p.Tags,
	}
}

func ToUserDomain(m *models.UserModel) *domain.User {
	return &domain.User{
		ID:                m.ID,
		Phone:             m.Phone,
		Nickname:          m.Nickname,
		PasswordHash:      m.PasswordHash,
		InviteCode:        m.InviteCode,
		IsMainAccount:     m.IsMainAccount,
		AgreementSignedAt: m.AgreementSignedAt,
		CreatedAt:         m.CreatedAt,
	}
}

func ToCouponDomain(m *models.CouponModel) *domain.Coupon {
	return &domain.Coupon{
		ID:        m.ID,
		UserID:    m.UserID,
		Amount:    m.Amount,
		Status:    m.Status,
		Reason:    m.Reason,
		CreatedAt: m.CreatedAt,
	}
}

func ToSaleConfigDomain(m *models.SaleConfigModel) *domain.SaleConfig {
	return &domain.SaleConfig{
		ListingStart:          m.ListingStart,
		FlashSaleStart:        m.FlashSaleStart,
		DailyGrowthRate:       m.DailyGrowthRate,
		BasePriceDate:         m.BasePriceDate,
		MaxOrdersPerDay:       m.MaxOrdersPerDay,
		CouponCashThreshold:   m.CouponCashThreshold,
		ReferralRewardPerUser: m.ReferralRewardPerUser,
		UpdatedAt:             m.UpdatedAt,
	}
}
