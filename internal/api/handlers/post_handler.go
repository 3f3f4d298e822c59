package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/notify"
	"github.com/maheshrc27/marketing-hub/internal/queue"
	"github.com/maheshrc27/marketing-hub/internal/service"
	"github.com/maheshrc27/marketing-hub/internal/transfer"
)

// SchedulerControl is satisfied by *scheduler.Scheduler.
type SchedulerControl interface {
	Start(userID string) bool
	Stop(userID string) bool
	Running(userID string) bool
}

type PostHandler struct {
	s         service.PostService
	client    queue.Enqueuer
	scheduler SchedulerControl
}

func NewPostHandler(service service.PostService, client queue.Enqueuer, scheduler SchedulerControl) *PostHandler {
	return &PostHandler{s: service, client: client, scheduler: scheduler}
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	var pc transfer.PostCreation
	if err := c.BodyParser(&pc); err != nil {
		slog.Info(err.Error())
		return badRequest(c, "Unable to parse request")
	}

	post, err := h.s.Create(c.Context(), GetUserID(c), &pc)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *PostHandler) UpdatePost(c *fiber.Ctx) error {
	var pc transfer.PostCreation
	if err := c.BodyParser(&pc); err != nil {
		slog.Info(err.Error())
		return badRequest(c, "Unable to parse request")
	}

	post, err := h.s.Update(c.Context(), GetUserID(c), c.Params("id"), &pc)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(post)
}

func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	var status *models.PostStatus
	if raw := c.Query("status"); raw != "" {
		st, ok := models.ParsePostStatus(raw)
		if !ok {
			return badRequest(c, "Unknown post status.")
		}
		status = &st
	}

	posts, err := h.s.List(c.Context(), GetUserID(c), status)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(posts)
}

func (h *PostHandler) DuePosts(c *fiber.Ctx) error {
	posts, err := h.s.DueNow(c.Context(), GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(posts)
}

func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	post, err := h.s.Get(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(post)
}

// OpenReminder resolves the deep link of a tapped reminder to its post.
func (h *PostHandler) OpenReminder(c *fiber.Ctx) error {
	postID, ok := notify.ParseDeepLink(notify.DeepLink{Type: c.Query("type"), ID: c.Query("id")})
	if !ok {
		return badRequest(c, "Unsupported notification link.")
	}

	post, err := h.s.Get(c.Context(), GetUserID(c), postID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(post)
}

func (h *PostHandler) UpdateStatus(c *fiber.Ctx) error {
	var req transfer.StatusUpdate
	if err := c.BodyParser(&req); err != nil {
		slog.Info(err.Error())
		return badRequest(c, "Unable to parse request")
	}

	post, err := h.s.UpdateStatus(c.Context(), GetUserID(c), c.Params("id"), models.PostStatus(req.Status), req.ErrorMessage)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(post)
}

func (h *PostHandler) RemovePost(c *fiber.Ctx) error {
	if err := h.s.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PostHandler) History(c *fiber.Ctx) error {
	history, err := h.s.History(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(history)
}

// ShareURL returns the web share intent; supported is false for platforms
// that only take the generic share sheet.
func (h *PostHandler) ShareURL(c *fiber.Ctx) error {
	url, ok, err := h.s.ShareURL(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"url": url, "supported": ok})
}

// PublishNow queues the post for immediate publishing.
func (h *PostHandler) PublishNow(c *fiber.Ctx) error {
	post, err := h.s.Get(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	if post.Status != models.PostStatusScheduled {
		return badRequest(c, "Only scheduled posts can be published.")
	}

	if err := queue.EnqueuePost(h.client, queue.PublishPostPayload{PostID: post.ID}, 0); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error scheduling post",
		})
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": "Post queued for publishing",
	})
}

// ProcessNow runs one scheduler tick for the user and reports the outcome.
func (h *PostHandler) ProcessNow(c *fiber.Ctx) error {
	summary, err := h.s.ProcessScheduledPosts(c.Context(), GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(summary)
}

func (h *PostHandler) StartScheduler(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if n, err := h.s.RescheduleReminders(c.Context(), userID); err != nil {
		slog.Info(err.Error())
	} else {
		slog.Info("rescheduled reminders", "user_id", userID, "count", n)
	}
	started := h.scheduler.Start(userID)
	return c.JSON(fiber.Map{"running": true, "started": started})
}

func (h *PostHandler) StopScheduler(c *fiber.Ctx) error {
	stopped := h.scheduler.Stop(GetUserID(c))
	return c.JSON(fiber.Map{"running": false, "stopped": stopped})
}

func (h *PostHandler) SchedulerStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"running": h.scheduler.Running(GetUserID(c))})
}
