package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/refledgerhq/refledger/app/models"
	"github.com/refledgerhq/refledger/app/repository"
	"github.com/refledgerhq/refledger/internal/pkg/referral"
)

// ErrCreditContention is returned when the optimistic credit loop keeps
// losing against concurrent credits for the same code. The webhook answer
// maps this to a retryable server error.
var ErrCreditContention = errors.New("credit retries exhausted under contention")

// ErrInvalidSale marks input that can never be persisted. Retrying the
// same payload is futile, so the webhook answer maps this to a client
// error instead of a retryable one.
var ErrInvalidSale = errors.New("invalid sale input")

// maxCreditAttempts bounds the optimistic-concurrency retry loop. Failed
// attempts back off linearly, so collisions thin out quickly.
const maxCreditAttempts = 10

// UpgradeHook is invoked once per tier upgrade. Implementations must be
// fire-and-forget; the credit path does not wait on them.
type UpgradeHook func(code, oldTier, newTier string, newTotal int64)

// Service is the idempotent sale ledger plus the referral tier engine.
type Service struct {
	sales       repository.SaleRepository
	referrers   repository.ReferrerRepository
	upgradeHook UpgradeHook
}

// NewService creates a ledger service from injected repositories.
func NewService(sales repository.SaleRepository, referrers repository.ReferrerRepository) *Service {
	return &Service{sales: sales, referrers: referrers}
}

// NewServiceFromDB creates a ledger service from a GORM DB handle.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(repository.NewSaleRepository(db), repository.NewReferrerRepository(db))
}

// SetUpgradeHook attaches the upgrade signal consumer.
func (s *Service) SetUpgradeHook(hook UpgradeHook) {
	s.upgradeHook = hook
}

// RecordSale persists a sale exactly once per external sale ID. A repeated
// external ID reports SaleAlreadyRecorded instead of an error, because
// duplicate delivery is the expected retry behavior of webhook senders.
func (s *Service) RecordSale(ctx context.Context, in SaleInput) (RecordOutcome, error) {
	externalID := strings.TrimSpace(in.ExternalID)
	if externalID == "" {
		return "", fmt.Errorf("%w: external sale id is required", ErrInvalidSale)
	}

	sale := &models.Sale{
		ExternalID:   externalID,
		BuyerEmail:   strings.TrimSpace(in.BuyerEmail),
		ProductID:    strings.TrimSpace(in.ProductID),
		AmountMinor:  in.AmountMinor,
		ReferralCode: strings.TrimSpace(in.ReferralCode),
	}
	if err := sale.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSale, err)
	}

	created, err := s.sales.CreateIfNotExists(ctx, sale)
	if err != nil {
		return "", err
	}
	if !created {
		return SaleAlreadyRecorded, nil
	}
	return SaleInserted, nil
}

// Credit atomically increments a referrer's total and recomputes the tier.
// The read-compute-write sequence is guarded by a compare-and-swap on the
// current total, so concurrent credits for the same code never overwrite
// each other's increment. An unknown code is a no-op, not an error.
func (s *Service) Credit(ctx context.Context, code string) (CreditResult, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return CreditResult{}, errors.New("referral code is required")
	}

	for attempt := 0; attempt < maxCreditAttempts; attempt++ {
		ref, err := s.referrers.GetByCode(ctx, code)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return CreditResult{Code: code, Known: false}, nil
			}
			return CreditResult{}, err
		}

		oldTier := referral.NormalizeTier(ref.Tier)
		newTotal := ref.TotalReferrals + 1
		// Tier is derived from the new total but never allowed to drop.
		newTier := referral.HighestTier(oldTier, referral.TierFor(newTotal))

		ok, err := s.referrers.CompareAndSwapProgress(ctx, code, ref.TotalReferrals, newTotal, newTier)
		if err != nil {
			return CreditResult{}, err
		}
		if !ok {
			// Lost against a concurrent credit; re-read and retry.
			select {
			case <-ctx.Done():
				return CreditResult{}, ctx.Err()
			case <-time.After(time.Duration(attempt+1) * time.Millisecond):
			}
			continue
		}

		result := CreditResult{
			Code:     code,
			Known:    true,
			NewTotal: newTotal,
			OldTier:  oldTier,
			NewTier:  newTier,
		}
		if result.Upgraded() && s.upgradeHook != nil {
			s.upgradeHook(code, oldTier, newTier, newTotal)
		}
		return result, nil
	}

	return CreditResult{}, ErrCreditContention
}
