package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Sale is one accepted sale notification, keyed by the external sale ID
// the notifier sends. Rows are written once and never mutated; refunds
// arrive as separate events and are not reconciled against existing rows.
type Sale struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ExternalID   string    `gorm:"type:varchar(191);not null;uniqueIndex:ux_sales_external_id" json:"external_id" validate:"required,max=191"`
	BuyerEmail   string    `gorm:"type:varchar(200)" json:"buyer_email" validate:"omitempty,email,max=200"`
	ProductID    string    `gorm:"type:varchar(191);index" json:"product_id" validate:"max=191"`
	AmountMinor  int64     `gorm:"not null;default:0" json:"amount_minor" validate:"gte=0"`
	ReferralCode string    `gorm:"type:varchar(100);default:null;index" json:"referral_code,omitempty" validate:"max=100"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (s *Sale) Validate() error {
	v := validator.New()

	return v.Struct(s)
}
