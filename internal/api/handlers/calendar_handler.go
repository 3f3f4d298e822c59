package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/marketing-hub/internal/insights"
	"github.com/maheshrc27/marketing-hub/internal/service"
	"github.com/maheshrc27/marketing-hub/internal/transfer"
)

type CalendarHandler struct {
	s service.CalendarService
}

func NewCalendarHandler(service service.CalendarService) *CalendarHandler {
	return &CalendarHandler{s: service}
}

// ListItems lists the calendar. Query: brand_id, q (text search), filter
// (all, today, thisWeek, thisMonth, upcoming, past), tz.
func (h *CalendarHandler) ListItems(c *fiber.Ctx) error {
	filter, ok := insights.ParseCalendarFilter(c.Query("filter"))
	if !ok {
		return badRequest(c, "Unknown calendar filter.")
	}
	loc, err := queryLocation(c)
	if err != nil {
		return badRequest(c, "Unknown time zone.")
	}

	items, err := h.s.Search(c.Context(), GetUserID(c), brandQuery(c), c.Query("q"), filter, loc)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(items)
}

// Analytics reports posting activity. Query: period (last7Days, last30Days,
// last90Days, allTime), tz.
func (h *CalendarHandler) Analytics(c *fiber.Ctx) error {
	period, ok := insights.ParseAnalyticsPeriod(c.Query("period", string(insights.PeriodLast7Days)))
	if !ok {
		return badRequest(c, "Unknown analytics period.")
	}
	loc, err := queryLocation(c)
	if err != nil {
		return badRequest(c, "Unknown time zone.")
	}

	report, err := h.s.Analytics(c.Context(), GetUserID(c), period, loc)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(report)
}

func queryLocation(c *fiber.Ctx) (*time.Location, error) {
	tz := c.Query("tz")
	if tz == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(tz)
}

func (h *CalendarHandler) AddItem(c *fiber.Ctx) error {
	var in transfer.CalendarItemInput
	if err := c.BodyParser(&in); err != nil {
		slog.Info(err.Error())
		return badRequest(c, "Unable to parse request")
	}

	item, err := h.s.Add(c.Context(), GetUserID(c), &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"item":    item,
		"message": service.MsgCalendarScheduled,
	})
}

func (h *CalendarHandler) UpdateItem(c *fiber.Ctx) error {
	var in transfer.CalendarItemInput
	if err := c.BodyParser(&in); err != nil {
		slog.Info(err.Error())
		return badRequest(c, "Unable to parse request")
	}

	item, err := h.s.Update(c.Context(), GetUserID(c), c.Params("id"), &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(item)
}

func (h *CalendarHandler) RemoveItem(c *fiber.Ctx) error {
	if err := h.s.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CalendarHandler) SaveGenerated(c *fiber.Ctx) error {
	var in transfer.GeneratedContentInput
	if err := c.BodyParser(&in); err != nil {
		slog.Info(err.Error())
		return badRequest(c, "Unable to parse request")
	}

	item, err := h.s.SaveGenerated(c.Context(), GetUserID(c), &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"item":    item,
		"message": service.MsgGeneratedSaved,
	})
}

func (h *CalendarHandler) BulkUpdate(c *fiber.Ctx) error {
	var in transfer.BulkCalendarUpdate
	if err := c.BodyParser(&in); err != nil {
		slog.Info(err.Error())
		return badRequest(c, "Unable to parse request")
	}

	n, err := h.s.BulkUpdate(c.Context(), GetUserID(c), &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"updated": n})
}

func (h *CalendarHandler) BulkDelete(c *fiber.Ctx) error {
	var in transfer.BulkDelete
	if err := c.BodyParser(&in); err != nil {
		slog.Info(err.Error())
		return badRequest(c, "Unable to parse request")
	}

	n, err := h.s.BulkDelete(c.Context(), GetUserID(c), in.IDs)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"deleted": n})
}

// Export downloads the calendar as CSV or JSON. Query: format, range,
// platform, and optional from/to dates (2006-01-02).
func (h *CalendarHandler) Export(c *fiber.Ctx) error {
	format := insights.ExportFormat(c.Query("format", string(insights.FormatCSV)))
	if format != insights.FormatCSV && format != insights.FormatJSON {
		return badRequest(c, "Unsupported export format.")
	}
	filter := insights.ExportFilter{
		Platform: c.Query("platform"),
		Range:    insights.DateRange(c.Query("range", string(insights.RangeAll))),
	}
	for _, bound := range []struct {
		key string
		dst **time.Time
	}{{"from", &filter.From}, {"to", &filter.To}} {
		raw := c.Query(bound.key)
		if raw == "" {
			continue
		}
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return badRequest(c, fmt.Sprintf("Invalid %s date.", bound.key))
		}
		if bound.key == "to" {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		*bound.dst = &t
	}

	var buf bytes.Buffer
	if _, err := h.s.Export(c.Context(), GetUserID(c), &buf, format, filter); err != nil {
		return errorResponse(c, err)
	}

	contentType := "text/csv"
	if format == insights.FormatJSON {
		contentType = fiber.MIMEApplicationJSON
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Attachment(insights.FileName(format, time.Now()))
	return c.Send(buf.Bytes())
}

func (h *CalendarHandler) BestTimes(c *fiber.Ctx) error {
	loc, err := queryLocation(c)
	if err != nil {
		return badRequest(c, "Unknown time zone.")
	}

	report, err := h.s.BestTimes(c.Context(), GetUserID(c), c.Query("platform"), loc)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(report)
}
