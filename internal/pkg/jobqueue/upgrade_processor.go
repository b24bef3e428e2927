package jobqueue

import (
	"fmt"

	"github.com/refledgerhq/refledger/internal/pkg/notify"
)

// notifier is swappable for tests.
var notifier notify.UpgradeNotifier = notify.SMTPNotifier{}

// EnqueueTierUpgradeNotice queues one upgrade signal for async delivery.
func (q *Queue) EnqueueTierUpgradeNotice(code, oldTier, newTier string, newTotal int64) (*Job, error) {
	return q.EnqueueJob(JobTypeTierUpgradeNotice, map[string]interface{}{
		"code":      code,
		"old_tier":  oldTier,
		"new_tier":  newTier,
		"new_total": newTotal,
	})
}

func (q *Queue) processTierUpgradeNoticeJob(job *Job) error {
	code, _ := job.Payload["code"].(string)
	oldTier, _ := job.Payload["old_tier"].(string)
	newTier, _ := job.Payload["new_tier"].(string)
	if code == "" || newTier == "" {
		return fmt.Errorf("tier upgrade job %s missing code or tier", job.ID)
	}

	// JSON round-trips numbers as float64.
	newTotal := int64(0)
	if v, ok := job.Payload["new_total"].(float64); ok {
		newTotal = int64(v)
	}

	return notifier.NotifyUpgrade(notify.UpgradeNotice{
		Code:     code,
		OldTier:  oldTier,
		NewTier:  newTier,
		NewTotal: newTotal,
	})
}
