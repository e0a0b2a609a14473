package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rosemall/flash-order-service/internal/domain"
	"github.com/rosemall/flash-order-service/internal/infrastructure/postgres/models"
)

type DefaultReferralRepository struct {
	DB *gorm.DB
}

func NewDefaultReferralRepository(db *gorm.DB) *DefaultReferralRepository {
	return &DefaultReferralRepository{DB: db}
}

func (r *DefaultReferralRepository) CreateReferral(referral *domain.Referral) (string, error) {
	if referral.ID == "" {
		referral.ID = uuid.New().String()
	}
	referralModel := models.ReferralModel{
		ID:             referral.ID,
		ReferrerID:     referral.ReferrerID,
		ReferredUserID: referral.ReferredUserID,
	}
	if err := r.DB.Create(&referralModel).Error; err != nil {
		return "", err
	}
	return referral.ID, nil
}

func (r *DefaultReferralRepository) ListByReferrerID(referrerID string) ([]*domain.ReferralEntry, error) {
	var referralModels []models.ReferralModel
	err := r.DB.
		Preload("ReferredUser").
		Where("referrer_id = ?", referrerID).
		Order("created_at DESC").
		Find(&referralModels).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.ReferralEntry, len(referralModels))
	for i, referralModel := range referralModels {
		entries[i] = &domain.ReferralEntry{
			ID:        referralModel.ID,
			Nickname:  referralModel.ReferredUser.Nickname,
			Phone:     referralModel.ReferredUser.Phone,
			CreatedAt: referralModel.CreatedAt,
		}
	}
	return entries, nil
}

func (r *DefaultReferralRepository) CountByReferrerID(referrerID string) (int64, error) {
	var count int64
	err := r.DB.Model(&models.ReferralModel{}).Where("referrer_id = ?", referrerID).Count(&count).Error
	return count, err
}
