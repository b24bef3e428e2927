package notify

import "fmt"

// UpgradeNotice describes one tier upgrade signal emitted by the tier
// engine. Downstream reward logic consumes these; the content of what is
// sent is theirs, this package only carries the signal out.
type UpgradeNotice struct {
	Code     string
	OldTier  string
	NewTier  string
	NewTotal int64
}

// UpgradeNotifier delivers tier upgrade notices.
type UpgradeNotifier interface {
	NotifyUpgrade(notice UpgradeNotice) error
}

// SMTPNotifier mails upgrade notices to the affiliate operations address.
type SMTPNotifier struct{}

func (SMTPNotifier) NotifyUpgrade(n UpgradeNotice) error {
	subject := fmt.Sprintf("Referrer %s upgraded to %s", n.Code, n.NewTier)
	body := fmt.Sprintf(
		"Referrer <b>%s</b> moved from %s to <b>%s</b> at %d total referrals.",
		n.Code, n.OldTier, n.NewTier, n.NewTotal,
	)
	return SendUpgradeMail(subject, body)
}
