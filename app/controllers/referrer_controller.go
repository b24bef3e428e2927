package controllers

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/refledgerhq/refledger/app/repository"
	"github.com/refledgerhq/refledger/internal/pkg/metrics/counter"
)

// ReferrerController serves the read side consumed by the dashboard.
type ReferrerController struct {
	referrers repository.ReferrerRepository
	sales     repository.SaleRepository
}

// NewReferrerController creates the referrer read controller.
func NewReferrerController(referrers repository.ReferrerRepository, sales repository.SaleRepository) *ReferrerController {
	return &ReferrerController{referrers: referrers, sales: sales}
}

// HandleGetReferrer returns the current totals and tier for one code.
func (rc *ReferrerController) HandleGetReferrer(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("code")))
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "referral code missing"})
	}

	referrer, err := rc.referrers.GetByCode(c.UserContext(), code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "unknown referral code"})
		}
		log.Printf("referrer lookup failed for %s: %v", code, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "referrer lookup failed"})
	}

	attributed, err := rc.sales.CountByReferralCode(c.UserContext(), code)
	if err != nil {
		log.Printf("attributed sale count failed for %s: %v", code, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "sale count failed"})
	}

	return c.JSON(fiber.Map{
		"code":             referrer.Code,
		"total_referrals":  referrer.TotalReferrals,
		"tier":             referrer.Tier,
		"attributed_sales": attributed,
	})
}

// HandleListReferrers returns referrers ordered by total referrals.
func (rc *ReferrerController) HandleListReferrers(c *fiber.Ctx) error {
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	referrers, err := rc.referrers.List(c.UserContext(), offset, limit)
	if err != nil {
		log.Printf("referrer list failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "referrer list failed"})
	}

	return c.JSON(fiber.Map{"referrers": referrers, "offset": offset, "limit": limit})
}

// HandleGetStats returns ledger totals plus the delivery outcome counters.
func (rc *ReferrerController) HandleGetStats(c *fiber.Ctx) error {
	saleCount, err := rc.sales.Count(c.UserContext())
	if err != nil {
		log.Printf("sale count failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": "sale count failed"})
	}

	outcomes, err := counter.Snapshot()
	if err != nil {
		log.Printf("counter snapshot failed: %v", err)
		outcomes = map[string]int64{}
	}

	return c.JSON(fiber.Map{
		"total_sales": saleCount,
		"outcomes":    outcomes,
	})
}
