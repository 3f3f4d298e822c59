package handlers

import (
	"log/slog"
	"slices"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/service"
	"github.com/maheshrc27/marketing-hub/internal/transfer"
)

type CampaignHandler struct {
	s service.CampaignService
}

func NewCampaignHandler(service service.CampaignService) *CampaignHandler {
	return &CampaignHandler{s: service}
}

func (h *CampaignHandler) GenerateOutline(c *fiber.Ctx) error {
	var req transfer.OutlineRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Info(err.Error())
		return badRequest(c, "Unable to parse request")
	}
	platform := models.MarketingPlatform(req.Platform)
	if !slices.Contains(models.MarketingPlatforms, platform) {
		return badRequest(c, service.MsgInvalidPlatform)
	}
	if req.Budget < 0 {
		return badRequest(c, "Budget can't be negative.")
	}

	return c.JSON(fiber.Map{
		"outline":     h.s.GenerateOutline(platform, req.Budget, req.Goal),
		"sprint_days": service.SprintDays(req.Budget),
	})
}

func (h *CampaignHandler) SaveCampaign(c *fiber.Ctx) error {
	var in transfer.CampaignInput
	if err := c.BodyParser(&in); err != nil {
		slog.Info(err.Error())
		return badRequest(c, "Unable to parse request")
	}

	plan, err := h.s.Save(c.Context(), GetUserID(c), &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"plan":    plan,
		"message": service.MsgCampaignSaved,
	})
}

func (h *CampaignHandler) ListCampaigns(c *fiber.Ctx) error {
	plans, err := h.s.List(c.Context(), GetUserID(c), brandQuery(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(plans)
}

func (h *CampaignHandler) RemoveCampaign(c *fiber.Ctx) error {
	if err := h.s.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
