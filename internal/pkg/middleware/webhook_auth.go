package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/refledgerhq/refledger/internal/pkg/env"
	"github.com/refledgerhq/refledger/internal/pkg/metrics/counter"
	"github.com/refledgerhq/refledger/internal/pkg/webhook"
)

// WebhookAuthMiddleware gates deliveries on the shared notifier secret.
// The secret arrives as a query parameter on the registered callback URL;
// a signature header, when the notifier sends one, takes precedence. A
// failed check answers 401 before any processing, so rejected requests
// can have no side effects.
func WebhookAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		secret := env.GetEnv("WEBHOOK_SECRET", "")

		if !webhook.Authentic(c.BodyRaw(), c.Get(webhook.SignatureHeader), c.Query("secret"), secret) {
			log.Printf("webhook: unauthenticated delivery from %s", c.IP())
			if err := counter.Increment(counter.OutcomeUnauthenticated); err != nil {
				log.Printf("webhook: failed to count unauthenticated delivery: %v", err)
			}
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		}

		return c.Next()
	}
}
