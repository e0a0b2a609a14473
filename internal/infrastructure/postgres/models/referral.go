package models

import "time"

type ReferralModel struct {
	ID             string    `gorm:"primaryKey;type:uuid"`
	ReferrerID     string    `gorm:"type:uuid;index"`
	ReferredUserID string    `gorm:"type:uuid"`
	ReferredUser   UserModel `gorm:"foreignKey:ReferredUserID;references:ID"`
	CreatedAt      time.Time
}

func (ReferralModel) TableName() string { return "referrals" }
