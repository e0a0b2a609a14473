package models

import "time"

type UserModel struct {
	ID                string `gorm:"primaryKey;type:uuid"`
	Phone             string `gorm:"uniqueIndex;not null"`
	Nickname          string
	PasswordHash      string
	InviteCode        string `gorm:"uniqueIndex;not null"`
	IsMainAccount     bool   `gorm:"default:false"`
	AgreementSignedAt *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (UserModel) TableName() string { return "users" }
