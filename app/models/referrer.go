package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	TierBronze   = "bronze"
	TierSilver   = "silver"
	TierGold     = "gold"
	TierPlatinum = "platinum"
)

// Referrer is an affiliate identified by a canonical (upper-case, trimmed)
// referral code. Rows are created out-of-band at affiliate sign-up; this
// service only moves total_referrals and tier forward. total_referrals also
// acts as the optimistic-concurrency guard for credit updates.
type Referrer struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Code           string    `gorm:"type:varchar(100);not null;uniqueIndex:ux_referrers_code" json:"code" validate:"required,max=100"`
	TotalReferrals int64     `gorm:"not null;default:0" json:"total_referrals" validate:"gte=0"`
	Tier           string    `gorm:"type:varchar(20);not null;default:'bronze'" json:"tier" validate:"oneof=bronze silver gold platinum"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r *Referrer) Validate() error {
	v := validator.New()

	return v.Struct(r)
}
