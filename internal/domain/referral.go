package domain

import "time"

type Referral struct {
	ID             string
	ReferrerID     string
	ReferredUserID string
	CreatedAt      time.Time
}

// ReferralEntry is the listing view joined with the referred user's profile.
type ReferralEntry struct {
	ID        string
	Nickname  string
	Phone     string
	CreatedAt time.Time
}

type ReferralRepository interface {
	CreateReferral(referral *Referral) (string, error)
	ListByReferrerID(referrerID string) ([]*ReferralEntry, error)
	CountByReferrerID(referrerID string) (int64, error)
}
