package repository

import (
	"context"

	"github.com/refledgerhq/refledger/app/models"
	"gorm.io/gorm"
)

// SaleRepository defines the interface for sale-ledger database operations
type SaleRepository interface {
	// CreateIfNotExists inserts the sale unless a row with the same
	// external ID already exists. Returns true when a row was inserted.
	CreateIfNotExists(ctx context.Context, sale *models.Sale) (bool, error)
	GetByExternalID(ctx context.Context, externalID string) (*models.Sale, error)
	Count(ctx context.Context) (int64, error)
	CountByReferralCode(ctx context.Context, code string) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]models.Sale, error)
}

// ReferrerRepository defines the interface for referrer database operations
type ReferrerRepository interface {
	Create(ctx context.Context, referrer *models.Referrer) error
	GetByCode(ctx context.Context, code string) (*models.Referrer, error)
	// CompareAndSwapProgress writes the new total and tier for a code, but
	// only if total_referrals still equals oldTotal. Returns true when the
	// guarded update won; false means a concurrent credit got there first.
	CompareAndSwapProgress(ctx context.Context, code string, oldTotal, newTotal int64, tier string) (bool, error)
	List(ctx context.Context, offset, limit int) ([]models.Referrer, error)
}

// WebhookEventRepository defines the interface for webhook audit rows
type WebhookEventRepository interface {
	CreateIfNotExists(ctx context.Context, event *models.WebhookEvent) (bool, *models.WebhookEvent, error)
	// ClaimProcessing stamps processed_at, but only while it is still
	// unset. Exactly one of any set of concurrent deliveries of the same
	// payload wins the claim; the credit belongs to the winner.
	ClaimProcessing(ctx context.Context, id uint) (bool, error)
	// ReleaseClaim clears processed_at so a later retry can claim again.
	ReleaseClaim(ctx context.Context, id uint) error
	MarkProcessed(ctx context.Context, id uint, processingError string) error
}

// Repositories bundles all repository implementations
type Repositories struct {
	Sale         SaleRepository
	Referrer     ReferrerRepository
	WebhookEvent WebhookEventRepository
}

// NewRepositories creates all repositories backed by the given GORM handle
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Sale:         NewSaleRepository(db),
		Referrer:     NewReferrerRepository(db),
		WebhookEvent: NewWebhookEventRepository(db),
	}
}
