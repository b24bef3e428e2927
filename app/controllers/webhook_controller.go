package controllers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/refledgerhq/refledger/app/models"
	"github.com/refledgerhq/refledger/app/repository"
	"github.com/refledgerhq/refledger/internal/pkg/env"
	"github.com/refledgerhq/refledger/internal/pkg/ledger"
	"github.com/refledgerhq/refledger/internal/pkg/metrics/counter"
	"github.com/refledgerhq/refledger/internal/pkg/referral"
	"github.com/refledgerhq/refledger/internal/pkg/webhook"
)

// WebhookController ingests sale notifications from the upstream notifier.
// Authenticity is enforced by middleware before any handler runs.
type WebhookController struct {
	svc    *ledger.Service
	events repository.WebhookEventRepository
}

// NewWebhookController creates the webhook controller.
func NewWebhookController(svc *ledger.Service, events repository.WebhookEventRepository) *WebhookController {
	return &WebhookController{svc: svc, events: events}
}

// HandleSaleNotification processes one delivery end to end: normalize,
// audit, classify, insert into the sale ledger, credit the referrer.
// Every failure is mapped to a status code here; nothing leaks upward.
func (wc *WebhookController) HandleSaleNotification(c *fiber.Ctx) error {
	rawBody := append([]byte(nil), c.BodyRaw()...)

	payload, err := webhook.Normalize(rawBody, c.Get(fiber.HeaderContentType))
	if err != nil {
		countOutcome(counter.OutcomeRejectedPayload)
		if errors.Is(err, webhook.ErrUnsupportedContentType) {
			return c.Status(fiber.StatusBadRequest).SendString("Unsupported content type")
		}
		return c.Status(fiber.StatusBadRequest).SendString("Malformed payload")
	}

	event := webhook.SaleEventFromPayload(payload)

	ctx, cancel := context.WithTimeout(c.UserContext(), 15*time.Second)
	defer cancel()

	auditCreated, stored, err := wc.recordDelivery(ctx, rawBody, event.Kind)
	if err != nil {
		log.Printf("webhook: failed to persist delivery audit: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Persistence failure")
	}

	if event.Kind != webhook.EventSale {
		wc.handleUnactionedEvent(ctx, stored, event.Kind)
		return c.SendString("Event received")
	}

	if event.ExternalID == "" {
		wc.markProcessed(ctx, stored, "missing external sale id")
		return c.Status(fiber.StatusBadRequest).SendString("Missing sale id")
	}

	prefix := env.GetEnv("REFERRAL_PREFIX", referral.DefaultPrefix)
	code := referral.ExtractCodeWithPrefix(event.RawReferrer, prefix)

	outcome, err := wc.svc.RecordSale(ctx, ledger.SaleInput{
		ExternalID:   event.ExternalID,
		BuyerEmail:   event.BuyerEmail,
		ProductID:    event.ProductID,
		AmountMinor:  event.AmountMinor,
		ReferralCode: code,
	})
	if err != nil {
		// A payload that fails validation stays invalid on every retry,
		// so the sender gets a client error instead of a retry signal.
		if errors.Is(err, ledger.ErrInvalidSale) {
			countOutcome(counter.OutcomeRejectedPayload)
			wc.markProcessed(ctx, stored, err.Error())
			return c.Status(fiber.StatusBadRequest).SendString("Malformed payload")
		}
		log.Printf("webhook: sale insert failed for %s: %v", event.ExternalID, err)
		return c.Status(fiber.StatusInternalServerError).SendString("Persistence failure")
	}

	if outcome == ledger.SaleAlreadyRecorded {
		countOutcome(counter.OutcomeDuplicateSale)
		if auditCreated {
			// Same sale id under a different body; the delivery that
			// inserted the sale owns the credit, this one is a no-op.
			wc.markProcessed(ctx, stored, "")
		} else if err := wc.creditOnce(ctx, stored, code); err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("Persistence failure")
		}
		return c.SendString("Duplicate")
	}

	if err := wc.creditOnce(ctx, stored, code); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Persistence failure")
	}

	countOutcome(counter.OutcomeSaleProcessed)
	return c.SendString("Processed")
}

// creditOnce claims the delivery's audit row before crediting, so any set
// of concurrent or retried deliveries of the same payload settles on
// exactly one credit. Losing the claim means another delivery already did
// or is doing the work, which is success from the sender's point of view.
func (wc *WebhookController) creditOnce(ctx context.Context, stored *models.WebhookEvent, code string) error {
	claimed, err := wc.events.ClaimProcessing(ctx, stored.ID)
	if err != nil {
		log.Printf("webhook: failed to claim event %d: %v", stored.ID, err)
		return err
	}
	if !claimed || code == "" {
		return nil
	}

	if err := wc.credit(ctx, code); err != nil {
		// Hand the claim back so the sender's retry can finish the credit.
		if relErr := wc.events.ReleaseClaim(ctx, stored.ID); relErr != nil {
			log.Printf("webhook: failed to release claim on event %d: %v", stored.ID, relErr)
		}
		return err
	}
	return nil
}

func (wc *WebhookController) credit(ctx context.Context, code string) error {
	result, err := wc.svc.Credit(ctx, code)
	if err != nil {
		log.Printf("webhook: credit failed for code %s: %v", code, err)
		return err
	}
	if !result.Known {
		countOutcome(counter.OutcomeUnknownReferralCode)
		log.Printf("webhook: unknown referral code %q, sale recorded without credit", code)
	}
	return nil
}

func (wc *WebhookController) recordDelivery(ctx context.Context, rawBody []byte, kind webhook.EventKind) (bool, *models.WebhookEvent, error) {
	sum := sha256.Sum256(rawBody)
	event := &models.WebhookEvent{
		DedupKey:    "hash:" + hex.EncodeToString(sum[:]),
		Kind:        string(kind),
		PayloadJSON: string(rawBody),
	}
	return wc.events.CreateIfNotExists(ctx, event)
}

func (wc *WebhookController) handleUnactionedEvent(ctx context.Context, stored *models.WebhookEvent, kind webhook.EventKind) {
	switch kind {
	case webhook.EventRefund:
		countOutcome(counter.OutcomeRefundReceived)
	case webhook.EventSubscriptionUpdate:
		countOutcome(counter.OutcomeSubscriptionReceived)
	}
	log.Printf("webhook: %s event received, accepted without action", kind)
	wc.markProcessed(ctx, stored, "")
}

func (wc *WebhookController) markProcessed(ctx context.Context, stored *models.WebhookEvent, msg string) {
	if err := wc.events.MarkProcessed(ctx, stored.ID, msg); err != nil {
		log.Printf("webhook: failed to mark event %d processed: %v", stored.ID, err)
	}
}

func countOutcome(outcome string) {
	if err := counter.Increment(outcome); err != nil {
		log.Printf("webhook: failed to count outcome %s: %v", outcome, err)
	}
}
