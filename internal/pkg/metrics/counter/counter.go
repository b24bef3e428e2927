package counter

import (
	"context"
	"strconv"

	"github.com/refledgerhq/refledger/internal/pkg/cache"
)

const eventCountersKey = "webhook:counters:events"

// Outcome names for inbound webhook deliveries. Refund and subscription
// events are accepted but not acted upon yet; counting them keeps that gap
// visible to operators instead of silently dropped.
const (
	OutcomeSaleProcessed        = "sale_processed"
	OutcomeDuplicateSale        = "duplicate_sale"
	OutcomeRefundReceived       = "refund_received"
	OutcomeSubscriptionReceived = "subscription_update_received"
	OutcomeUnknownReferralCode  = "unknown_referral_code"
	OutcomeUnauthenticated      = "unauthenticated"
	OutcomeRejectedPayload      = "rejected_payload"
)

// Increment bumps the counter for one delivery outcome in Redis
func Increment(outcome string) error {
	ctx := context.Background()
	return cache.GetClient().HIncrBy(ctx, eventCountersKey, outcome, 1).Err()
}

// Snapshot returns all outcome counters
func Snapshot() (map[string]int64, error) {
	ctx := context.Background()
	raw, err := cache.GetClient().HGetAll(ctx, eventCountersKey).Result()
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(raw))
	for outcome, value := range raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			continue
		}
		out[outcome] = n
	}
	return out, nil
}
