package domain

import "time"

type User struct {
	ID           string
	Phone        string
	Nickname     string
	PasswordHash string
	// InviteCode is unique per user and drives referral attribution.
	InviteCode string
	// Main accounts are exempt from the daily order quota.
	IsMainAccount     bool
	AgreementSignedAt *time.Time
	CreatedAt         time.Time
}

type UserRepository interface {
	CreateUser(user *User) (string, error)
	GetUserByID(userID string) (*User, error)
	GetUserByPhone(phone string) (*User, error)
	GetUserByInviteCode(inviteCode string) (*User, error)
	ListUsers() ([]*User, error)
	CountUsers() (int64, error)
	SetAgreementSigned(userID string, at time.Time) error
}
