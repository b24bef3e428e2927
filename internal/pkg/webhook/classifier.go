package webhook

import "strings"

// Classify tags a normalized payload as a sale, refund or subscription
// update. Only sales proceed to ledger insertion; refund and subscription
// events are accepted and counted but intentionally not acted upon yet.
func Classify(payload map[string]string) EventKind {
	if isTruthy(firstValue(payload, "refunded", "is_refunded", "refund")) {
		return EventRefund
	}

	switch strings.ToLower(firstValue(payload, "type", "resource")) {
	case "subscription", "subscription_update", "subscription_updated":
		return EventSubscriptionUpdate
	}

	return EventSale
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
