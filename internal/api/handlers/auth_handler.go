package handlers

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/marketing-hub/configs"
	"github.com/maheshrc27/marketing-hub/internal/service"
	"github.com/maheshrc27/marketing-hub/internal/transfer"
)

type AuthHandler struct {
	s   service.AuthService
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config, service service.AuthService) *AuthHandler {
	return &AuthHandler{s: service, cfg: cfg}
}

// SignIn exchanges a platform identity for a session. The token is set as a
// cookie for the web portal and returned in the body for the app.
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var payload transfer.SignInPayload
	if err := c.BodyParser(&payload); err != nil {
		slog.Info(err.Error())
		return badRequest(c, "Unable to parse request")
	}

	profile, created, err := h.s.SignIn(c.Context(), &payload)
	if err != nil {
		return errorResponse(c, err)
	}

	token, err := h.s.IssueSession(profile.UserID)
	if err != nil {
		return errorResponse(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   false,
		SameSite: fiber.CookieSameSiteNoneMode,
		Path:     "/",
		Expires:  time.Now().Add(service.SessionDuration),
	})

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{
		"token":   token,
		"profile": profile,
	})
}

func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:   h.cfg.CookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	return c.SendStatus(fiber.StatusNoContent)
}
