package router

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/refledgerhq/refledger/app/controllers"
	"github.com/refledgerhq/refledger/app/repository"
	"github.com/refledgerhq/refledger/internal/pkg/constants"
	"github.com/refledgerhq/refledger/internal/pkg/database"
	"github.com/refledgerhq/refledger/internal/pkg/jobqueue"
	"github.com/refledgerhq/refledger/internal/pkg/ledger"
	"github.com/refledgerhq/refledger/internal/pkg/middleware"
)

type WebhookRouter struct {
}

func (h WebhookRouter) InstallRouter(app *fiber.App) {
	svc := ledger.NewServiceFromDB(database.GetDB())

	// Upgrade signals leave the request path through the job queue;
	// enqueue failures are logged, never surfaced to the sender.
	queue := jobqueue.GetManager().GetQueue()
	svc.SetUpgradeHook(func(code, oldTier, newTier string, newTotal int64) {
		if _, err := queue.EnqueueTierUpgradeNotice(code, oldTier, newTier, newTotal); err != nil {
			log.Printf("router: failed to enqueue upgrade notice for %s: %v", code, err)
		}
	})

	events := repository.GetGlobalFactory().GetWebhookEventRepository()
	wc := controllers.NewWebhookController(svc, events)

	hook := app.Group(constants.WebhookBaseRoute,
		middleware.WebhookRateLimiter(),
		middleware.WebhookAuthMiddleware(),
	)
	hook.Post(constants.WebhookSalesRoute, wc.HandleSaleNotification)
}

func NewWebhookRouter() *WebhookRouter {
	return &WebhookRouter{}
}
