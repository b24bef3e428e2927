package apiv1

import (
	"github.com/gofiber/fiber/v2"

	// Delegate to existing controllers to keep behavior consistent
	"github.com/refledgerhq/refledger/app/controllers"
	"github.com/refledgerhq/refledger/app/repository"
)

// Pong is the ping response payload
type Pong struct {
	Ping string `json:"ping"`
}

// APIServer exposes the versioned read API consumed by the dashboard
type APIServer struct {
	referrers *controllers.ReferrerController
}

// NewAPIServer creates a new API server instance
func NewAPIServer() *APIServer {
	repos := repository.GetGlobalFactory().GetRepositories()
	return &APIServer{
		referrers: controllers.NewReferrerController(repos.Referrer, repos.Sale),
	}
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	response := Pong{
		Ping: "pong",
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// RegisterHandlers attaches all v1 routes
func RegisterHandlers(router fiber.Router, s *APIServer) {
	router.Get("/ping", s.GetPing)
	router.Get("/referrers", s.referrers.HandleListReferrers)
	router.Get("/referrers/:code", s.referrers.HandleGetReferrer)
	router.Get("/stats", s.referrers.HandleGetStats)
}
