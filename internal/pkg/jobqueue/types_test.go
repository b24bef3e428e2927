package jobqueue

import (
	"testing"

	"github.com/refledgerhq/refledger/internal/pkg/notify"
)

func TestJobStatusTransitions(t *testing.T) {
	job := &Job{Status: JobStatusPending, MaxRetries: DefaultMaxRetries}

	job.MarkAsProcessing()
	if job.Status != JobStatusProcessing || job.ProcessedAt == nil {
		t.Fatalf("unexpected state after MarkAsProcessing: %+v", job)
	}

	job.MarkAsFailed("boom")
	if job.Status != JobStatusFailed || job.ErrorMsg != "boom" {
		t.Fatalf("unexpected state after MarkAsFailed: %+v", job)
	}

	for i := 0; i < DefaultMaxRetries; i++ {
		if !job.IsRetryable() {
			t.Fatalf("expected job to be retryable at retry %d", i)
		}
		job.MarkAsRetrying()
	}
	if job.IsRetryable() {
		t.Fatal("expected retries to be exhausted")
	}

	job.MarkAsCompleted()
	if job.Status != JobStatusCompleted {
		t.Fatalf("unexpected state after MarkAsCompleted: %+v", job)
	}
}

type capturingNotifier struct {
	notices []notify.UpgradeNotice
}

func (c *capturingNotifier) NotifyUpgrade(n notify.UpgradeNotice) error {
	c.notices = append(c.notices, n)
	return nil
}

func TestProcessTierUpgradeNoticeJob(t *testing.T) {
	captured := &capturingNotifier{}
	prev := notifier
	notifier = captured
	defer func() { notifier = prev }()

	q := &Queue{}
	job := &Job{
		ID:   "j1",
		Type: JobTypeTierUpgradeNotice,
		Payload: map[string]interface{}{
			"code":      "JOHND",
			"old_tier":  "bronze",
			"new_tier":  "silver",
			"new_total": float64(3), // numbers arrive as float64 after JSON round-trip
		},
	}

	if err := q.processTierUpgradeNoticeJob(job); err != nil {
		t.Fatalf("processTierUpgradeNoticeJob returned error: %v", err)
	}
	if len(captured.notices) != 1 {
		t.Fatalf("notifier called %d times, want 1", len(captured.notices))
	}
	n := captured.notices[0]
	if n.Code != "JOHND" || n.NewTier != "silver" || n.NewTotal != 3 {
		t.Fatalf("unexpected notice: %+v", n)
	}
}

func TestProcessTierUpgradeNoticeJobRejectsMissingFields(t *testing.T) {
	q := &Queue{}
	job := &Job{ID: "j2", Type: JobTypeTierUpgradeNotice, Payload: map[string]interface{}{}}

	if err := q.processTierUpgradeNoticeJob(job); err == nil {
		t.Fatal("expected error for payload without code/tier")
	}
}
