package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/marketing-hub/internal/service"
	"github.com/maheshrc27/marketing-hub/internal/transfer"
)

type BrandHandler struct {
	s service.BrandService
}

func NewBrandHandler(service service.BrandService) *BrandHandler {
	return &BrandHandler{s: service}
}

func (h *BrandHandler) ListBrands(c *fiber.Ctx) error {
	brands, err := h.s.List(c.Context(), GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(brands)
}

func (h *BrandHandler) CreateBrand(c *fiber.Ctx) error {
	var in transfer.BrandInput
	if err := c.BodyParser(&in); err != nil {
		slog.Info(err.Error())
		return badRequest(c, "Unable to parse request")
	}

	brand, err := h.s.Create(c.Context(), GetUserID(c), &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(brand)
}

func (h *BrandHandler) UpdateBrand(c *fiber.Ctx) error {
	var in transfer.BrandInput
	if err := c.BodyParser(&in); err != nil {
		slog.Info(err.Error())
		return badRequest(c, "Unable to parse request")
	}

	brand, err := h.s.Update(c.Context(), GetUserID(c), c.Params("id"), &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(brand)
}

func (h *BrandHandler) RemoveBrand(c *fiber.Ctx) error {
	if err := h.s.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
