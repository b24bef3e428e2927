package main

import (
	"fmt"
	"log"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/refledgerhq/refledger/app/repository"
	"github.com/refledgerhq/refledger/internal/pkg/cache"
	"github.com/refledgerhq/refledger/internal/pkg/database"
	"github.com/refledgerhq/refledger/internal/pkg/env"
	"github.com/refledgerhq/refledger/internal/pkg/jobqueue"
	"github.com/refledgerhq/refledger/internal/pkg/router"
)

func main() {
	app := NewApplication()
	defer jobqueue.GetManager().Stop()

	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()
	repository.InitializeGlobalFactory(database.GetDB())

	// Background workers for upgrade notices
	jobqueue.GetManager().Start()

	app := fiber.New(fiber.Config{
		AppName: "RefLedger",
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// fiber metrics
	app.Get("/metrics", basicauth.New(basicauth.Config{
		Users: map[string]string{
			env.GetEnv("METRICS_USER", "admin"): env.GetEnv("METRICS_PASSWORD", "admin"),
		},
	}), monitor.New())

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: "./public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app)

	return app
}
