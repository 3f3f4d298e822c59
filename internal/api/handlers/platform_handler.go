package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/marketing-hub/configs"
	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/service"
	"github.com/maheshrc27/marketing-hub/internal/transfer"
	"github.com/maheshrc27/marketing-hub/pkg/utils"
)

type PlatformHandler struct {
	s   service.SocialAccountService
	cfg *config.Config
}

func NewPlatformHandler(service service.SocialAccountService, cfg *config.Config) *PlatformHandler {
	return &PlatformHandler{s: service, cfg: cfg}
}

func (h *PlatformHandler) ListSocialAccounts(c *fiber.Ctx) error {
	accounts, err := h.s.List(c.Context(), GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(accounts)
}

func (h *PlatformHandler) ConnectSocialAccount(c *fiber.Ctx) error {
	var req transfer.ConnectRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Info(err.Error())
		return badRequest(c, "Unable to parse request")
	}
	platform, ok := models.ParseSocialPlatform(req.Platform)
	if !ok {
		return badRequest(c, service.MsgInvalidPlatform)
	}

	account, err := h.s.Connect(c.Context(), GetUserID(c), platform)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(account)
}

func (h *PlatformHandler) DisconnectSocialAccount(c *fiber.Ctx) error {
	account, err := h.s.Disconnect(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(account)
}

// AuthURL returns the platform's authorization URL. The state parameter is
// a short lived token naming the user.
func (h *PlatformHandler) AuthURL(c *fiber.Ctx) error {
	platform, ok := models.SocialPlatformFromSlug(c.Params("platform"))
	if !ok {
		return badRequest(c, service.MsgInvalidPlatform)
	}

	url, err := h.s.AuthURL(c.Context(), GetUserID(c), platform)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"url": url})
}

// CallbackHandler completes an authorization. Token exchange is not
// implemented, so the callback connects a placeholder account.
func (h *PlatformHandler) CallbackHandler(c *fiber.Ctx) error {
	platform, ok := models.SocialPlatformFromSlug(c.Params("platform"))
	if !ok {
		return badRequest(c, service.MsgInvalidPlatform)
	}

	claims, err := utils.ValidateToken(h.cfg.SecretKey, c.Query("state"))
	if err != nil {
		slog.Info(err.Error())
		return badRequest(c, "Unable to validate user")
	}
	if errMsg := c.Query("error"); errMsg != "" {
		slog.Info("authorization declined", "platform", platform, "error", errMsg)
		return c.Redirect(h.cfg.FrontendURL+"/accounts?error=declined", fiber.StatusTemporaryRedirect)
	}

	if _, err := h.s.Connect(c.Context(), claims.UserID, platform); err != nil {
		return errorResponse(c, err)
	}
	return c.Redirect(h.cfg.FrontendURL+"/accounts", fiber.StatusTemporaryRedirect)
}
