package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/marketing-hub/internal/service"
	"github.com/maheshrc27/marketing-hub/internal/transfer"
)

type ContentHandler struct {
	s service.ContentService
}

func NewContentHandler(service service.ContentService) *ContentHandler {
	return &ContentHandler{s: service}
}

func (h *ContentHandler) Generate(c *fiber.Ctx) error {
	var req transfer.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Info(err.Error())
		return badRequest(c, "Unable to parse request")
	}

	generated, err := h.s.Generate(&req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"content": generated})
}

func (h *ContentHandler) Ideas(c *fiber.Ctx) error {
	var req transfer.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Info(err.Error())
		return badRequest(c, "Unable to parse request")
	}

	ideas, err := h.s.Ideas(&req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"ideas": ideas})
}

func (h *ContentHandler) Hashtags(c *fiber.Ctx) error {
	report, err := h.s.Hashtags(c.Query("topic"), c.Query("platform", "Instagram"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(report)
}
