package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// GetSaleRepository returns the sale repository instance
func (f *Factory) GetSaleRepository() SaleRepository {
	return f.GetRepositories().Sale
}

// GetReferrerRepository returns the referrer repository instance
func (f *Factory) GetReferrerRepository() ReferrerRepository {
	return f.GetRepositories().Referrer
}

// GetWebhookEventRepository returns the webhook event repository instance
func (f *Factory) GetWebhookEventRepository() WebhookEventRepository {
	return f.GetRepositories().WebhookEvent
}

var (
	globalFactory *Factory
	globalOnce    sync.Once
)

// InitializeGlobalFactory sets up the process-wide repository factory
func InitializeGlobalFactory(db *gorm.DB) {
	globalOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// GetGlobalFactory returns the process-wide repository factory
func GetGlobalFactory() *Factory {
	return globalFactory
}
