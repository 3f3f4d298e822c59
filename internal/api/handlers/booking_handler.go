package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/service"
	"github.com/maheshrc27/marketing-hub/internal/transfer"
)

type BookingHandler struct {
	s            service.BookingService
	supportEmail string
}

func NewBookingHandler(service service.BookingService, supportEmail string) *BookingHandler {
	return &BookingHandler{s: service, supportEmail: supportEmail}
}

func (h *BookingHandler) ServiceTypes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"services":      models.ServiceTypes,
		"support_email": h.supportEmail,
	})
}

func (h *BookingHandler) SubmitBooking(c *fiber.Ctx) error {
	var req transfer.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Info(err.Error())
		return badRequest(c, "Unable to parse request")
	}

	booking, err := h.s.Submit(c.Context(), GetUserID(c), &req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"booking": booking,
		"message": service.MsgBookingReceived,
	})
}

func (h *BookingHandler) ListBookings(c *fiber.Ctx) error {
	bookings, err := h.s.List(c.Context(), GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(bookings)
}
