package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/service"
	"github.com/maheshrc27/marketing-hub/internal/transfer"
)

type PaymentHandler struct {
	s             service.SubscriptionService
	allowOverride bool
}

// NewPaymentHandler builds the subscription handlers. allowOverride enables
// the plan switcher; without it tiers change only through purchases.
func NewPaymentHandler(service service.SubscriptionService, allowOverride bool) *PaymentHandler {
	return &PaymentHandler{s: service, allowOverride: allowOverride}
}

func subscriptionStatus(tier models.SubscriptionTier) transfer.SubscriptionStatus {
	status := transfer.SubscriptionStatus{
		Tier:           string(tier),
		DisplayName:    tier.DisplayName(),
		AccentColorHex: tier.AccentColorHex(),
		MaxBrands:      tier.MaxBrands(),
	}
	if n, capped := tier.MaxCampaignPlans(); capped {
		status.MaxCampaigns = &n
	}
	if n, capped := tier.MaxCalendarItems(); capped {
		status.MaxCalendarItem = &n
	}
	return status
}

func (h *PaymentHandler) Products(c *fiber.Ctx) error {
	products, err := h.s.LoadProducts(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(products)
}

func (h *PaymentHandler) Status(c *fiber.Ctx) error {
	tier, err := h.s.RefreshEntitlements(c.Context(), GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(subscriptionStatus(tier))
}

func (h *PaymentHandler) Purchase(c *fiber.Ctx) error {
	var req transfer.PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Info(err.Error())
		return badRequest(c, "Unable to parse request")
	}
	tier, ok := models.ParseTier(req.Tier)
	if !ok {
		return badRequest(c, "Unknown subscription plan.")
	}

	current, err := h.s.Purchase(c.Context(), GetUserID(c), tier)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(subscriptionStatus(current))
}

func (h *PaymentHandler) Restore(c *fiber.Ctx) error {
	tier, err := h.s.Restore(c.Context(), GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(subscriptionStatus(tier))
}

// OverridePlan sets the profile plan directly, as the debug plan switcher
// does in the app.
func (h *PaymentHandler) OverridePlan(c *fiber.Ctx) error {
	if !h.allowOverride {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Plan override is disabled.",
		})
	}

	var req transfer.PlanUpdate
	if err := c.BodyParser(&req); err != nil {
		slog.Info(err.Error())
		return badRequest(c, "Unable to parse request")
	}
	tier, ok := models.ParseTier(req.Plan)
	if !ok {
		return badRequest(c, "Unknown subscription plan.")
	}

	userID := GetUserID(c)
	if err := h.s.OverrideTier(c.Context(), userID, tier); err != nil {
		return errorResponse(c, err)
	}
	current, err := h.s.CurrentTier(c.Context(), userID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(subscriptionStatus(current))
}
