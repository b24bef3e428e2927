package repository

import (
	"context"

	"github.com/refledgerhq/refledger/app/models"
	"gorm.io/gorm"
)

type referrerRepository struct {
	db *gorm.DB
}

// NewReferrerRepository creates a referrer repository backed by GORM.
func NewReferrerRepository(db *gorm.DB) ReferrerRepository {
	return &referrerRepository{db: db}
}

func (r *referrerRepository) Create(ctx context.Context, referrer *models.Referrer) error {
	return r.db.WithContext(ctx).Create(referrer).Error
}

func (r *referrerRepository) GetByCode(ctx context.Context, code string) (*models.Referrer, error) {
	var referrer models.Referrer
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&referrer).Error
	if err != nil {
		return nil, err
	}
	return &referrer, nil
}

func (r *referrerRepository) CompareAndSwapProgress(ctx context.Context, code string, oldTotal, newTotal int64, tier string) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&models.Referrer{}).
		Where("code = ? AND total_referrals = ?", code, oldTotal).
		Updates(map[string]interface{}{
			"total_referrals": newTotal,
			"tier":            tier,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *referrerRepository) List(ctx context.Context, offset, limit int) ([]models.Referrer, error) {
	var referrers []models.Referrer
	err := r.db.WithContext(ctx).Order("total_referrals DESC").Offset(offset).Limit(limit).Find(&referrers).Error
	return referrers, err
}
