package notify

import (
	"errors"
	"fmt"
	"log"
	"net/smtp"

	"github.com/refledgerhq/refledger/internal/pkg/env"
)

// senderOrDefault falls back to a local no-reply address when no sender
// is configured.
func senderOrDefault(sender string) string {
	if sender != "" {
		return sender
	}
	return "no-reply@localhost"
}

// SendUpgradeMail sends an upgrade notice via SMTP to the configured
// affiliate operations address.
func SendUpgradeMail(subject string, body string) error {
	host := env.GetEnv("SMTP_HOST", "")
	port := env.GetEnv("SMTP_PORT", "")
	username := env.GetEnv("SMTP_USERNAME", "")
	password := env.GetEnv("SMTP_PASSWORD", "")
	sender := env.GetEnv("SMTP_SENDER", "")
	to := env.GetEnv("UPGRADE_NOTIFY_TO", "")

	if to == "" {
		return errors.New("UPGRADE_NOTIFY_TO not configured")
	}
	if sender == "" {
		sender = senderOrDefault(sender)
		log.Printf("SMTP_SENDER not set, using default sender: %s", sender)
	}

	var auth smtp.Auth
	if username != "" && password != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	addr := fmt.Sprintf("%s:%s", host, port)

	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", sender, to, subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
			body,
	)

	err := smtp.SendMail(addr, auth, sender, []string{to}, msg)
	if err != nil {
		log.Printf("SMTP send error: %v", err)
	} else {
		log.Printf("Upgrade notice sent to %s via %s", to, addr)
	}
	return err
}
