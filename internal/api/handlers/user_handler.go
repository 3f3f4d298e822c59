package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/marketing-hub/internal/service"
	"github.com/maheshrc27/marketing-hub/internal/transfer"
)

type UserHandler struct {
	s         service.ProfileService
	dashboard service.DashboardService
	seed      service.SeedService
}

func NewUserHandler(service service.ProfileService, dashboard service.DashboardService, seed service.SeedService) *UserHandler {
	return &UserHandler{s: service, dashboard: dashboard, seed: seed}
}

func (h *UserHandler) GetUserInfo(c *fiber.Ctx) error {
	profile, err := h.s.GetProfile(c.Context(), GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(profile)
}

func (h *UserHandler) UpdateUserInfo(c *fiber.Ctx) error {
	var update transfer.ProfileUpdate
	if err := c.BodyParser(&update); err != nil {
		slog.Info(err.Error())
		return badRequest(c, "Unable to parse request")
	}

	profile, err := h.s.UpdateProfile(c.Context(), GetUserID(c), &update)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(profile)
}

func (h *UserHandler) Dashboard(c *fiber.Ctx) error {
	d, err := h.dashboard.Load(c.Context(), GetUserID(c), brandQuery(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(d)
}

func (h *UserHandler) SeedDemoData(c *fiber.Ctx) error {
	result, err := h.seed.Seed(c.Context(), GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"result":  result,
		"message": result.Summary(),
	})
}
