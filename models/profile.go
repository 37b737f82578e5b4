package models

import (
	"time"
)

// Profile is the per-user account row. UserID is the subject of the
// identity provider's JWT; the profile is created on first login.
type Profile struct {
	ID                string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID            string     `json:"userId" gorm:"type:uuid;not null;uniqueIndex"`
	IsPremium         bool       `json:"isPremium" gorm:"default:false"`
	GenerationCount   int        `json:"generationCount" gorm:"default:0"`
	MonthlyPlaysCount int        `json:"monthlyPlaysCount" gorm:"default:0"`
	PlayCountResetAt  *time.Time `json:"playCountResetAt"`
	StripeCustomerId  string     `json:"stripeCustomerId"`
	IsOnboarding      bool       `json:"isOnboarding" gorm:"default:true"`
	LastActiveDate    *time.Time `json:"lastActiveDate"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}
