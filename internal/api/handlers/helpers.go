package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/marketing-hub/internal/service"
)

func GetUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals("user_id").(string)
	return userID
}

// brandQuery returns the brand_id query parameter, nil when absent.
func brandQuery(c *fiber.Ctx) *string {
	if id := c.Query("brand_id"); id != "" {
		return &id
	}
	return nil
}

// errorResponse maps service errors onto status codes. Messages of
// validation and quota errors are shown to the user as they are.
func errorResponse(c *fiber.Ctx, err error) error {
	var quota *service.QuotaError
	switch {
	case errors.As(err, &quota):
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
			"error":    quota.Message,
			"resource": quota.Resource,
			"limit":    quota.Limit,
		})
	case errors.Is(err, service.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		slog.Error(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "something went wrong",
		})
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": msg,
	})
}
