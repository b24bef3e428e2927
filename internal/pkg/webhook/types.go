package webhook

import (
	"math"
	"strconv"
	"strings"
)

// EventKind classifies an inbound notification.
type EventKind string

const (
	EventSale               EventKind = "sale"
	EventRefund             EventKind = "refund"
	EventSubscriptionUpdate EventKind = "subscription_update"
)

// SaleEvent is the provider-agnostic shape built from a normalized payload.
// ExternalID doubles as the idempotency key for the sale ledger.
type SaleEvent struct {
	ExternalID  string
	BuyerEmail  string
	ProductID   string
	AmountMinor int64
	RawReferrer string
	Kind        EventKind
}

// SaleEventFromPayload maps a normalized payload onto a SaleEvent. Field
// names vary between notifier versions, so each field is resolved through
// a small alias list.
func SaleEventFromPayload(payload map[string]string) SaleEvent {
	return SaleEvent{
		ExternalID:  firstValue(payload, "sale_id", "id", "external_id"),
		BuyerEmail:  firstValue(payload, "buyer_email", "email"),
		ProductID:   firstValue(payload, "product_id", "product_link", "product"),
		AmountMinor: parseAmountMinor(firstValue(payload, "amount_minor", "amount", "price")),
		RawReferrer: firstValue(payload, "referrer", "referral", "ref"),
		Kind:        Classify(payload),
	}
}

func firstValue(payload map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(payload[k]); v != "" {
			return v
		}
	}
	return ""
}

// parseAmountMinor accepts either minor units ("1234") or a decimal
// major-unit form ("12.34") and returns minor currency units.
func parseAmountMinor(raw string) int64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(math.Round(f * 100))
	}
	return 0
}
