package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/marketing-hub/internal/service"
)

type CatalogHandler struct {
	s service.CatalogService
}

func NewCatalogHandler(service service.CatalogService) *CatalogHandler {
	return &CatalogHandler{s: service}
}

func (h *CatalogHandler) ListTemplates(c *fiber.Ctx) error {
	templates, err := h.s.Templates(c.Context(), GetUserID(c), c.Query("q"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(templates)
}

func (h *CatalogHandler) ListAffiliateTools(c *fiber.Ctx) error {
	tools, err := h.s.AffiliateTools(c.Context(), GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(tools)
}

// OpenAffiliateTool logs the click and redirects to the tool's site.
func (h *CatalogHandler) OpenAffiliateTool(c *fiber.Ctx) error {
	tool, err := h.s.LogAffiliateClick(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Redirect(tool.URL, fiber.StatusSeeOther)
}
