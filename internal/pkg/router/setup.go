package router

import (
	"github.com/gofiber/fiber/v2"
)

// Router is implemented by every route group installer.
type Router interface {
	InstallRouter(app *fiber.App)
}

func InstallRouter(app *fiber.App) {
	// Install the webhook receiver first so its upgrade hook is wired
	// before any read traffic arrives, then the versioned read API.
	setup(app, NewWebhookRouter(), NewApiRouter())
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
