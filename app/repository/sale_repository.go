package repository

import (
	"context"

	"github.com/refledgerhq/refledger/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a sale repository backed by GORM.
func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) CreateIfNotExists(ctx context.Context, sale *models.Sale) (bool, error) {
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "external_id"},
		},
		DoNothing: true,
	}).Create(sale)
	if tx.Error != nil {
		return false, tx.Error
	}

	// RowsAffected == 0 means the unique index swallowed the insert, which
	// is the expected outcome for a retried delivery.
	return tx.RowsAffected > 0, nil
}

func (r *saleRepository) GetByExternalID(ctx context.Context, externalID string) (*models.Sale, error) {
	var sale models.Sale
	err := r.db.WithContext(ctx).Where("external_id = ?", externalID).First(&sale).Error
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Sale{}).Count(&count).Error
	return count, err
}

func (r *saleRepository) CountByReferralCode(ctx context.Context, code string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Sale{}).Where("referral_code = ?", code).Count(&count).Error
	return count, err
}

func (r *saleRepository) ListRecent(ctx context.Context, limit int) ([]models.Sale, error) {
	var sales []models.Sale
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&sales).Error
	return sales, err
}
