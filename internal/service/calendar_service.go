package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/maheshrc27/marketing-hub/internal/insights"
	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/repository"
	"github.com/maheshrc27/marketing-hub/internal/transfer"
)

const (
	MsgCalendarScheduled = "Content scheduled."
	MsgCalendarQuota     = "Free tier allows up to 10 items."
	MsgCalendarNoTitle   = "Provide a title for the calendar entry."
	MsgGeneratedSaved    = "Saved to marketing calendar."

	generatedTitle = "Generated Content"
)

type CalendarService interface {
	Add(ctx context.Context, userID string, in *transfer.CalendarItemInput) (*models.ContentCalendarItem, error)
	Update(ctx context.Context, userID, itemID string, in *transfer.CalendarItemInput) (*models.ContentCalendarItem, error)
	Delete(ctx context.Context, userID, itemID string) error
	List(ctx context.Context, userID string, brandID *string) ([]*models.ContentCalendarItem, error)
	Search(ctx context.Context, userID string, brandID *string, query string, filter insights.CalendarFilter, loc *time.Location) ([]*models.ContentCalendarItem, error)
	Analytics(ctx context.Context, userID string, period insights.AnalyticsPeriod, loc *time.Location) (*insights.AnalyticsReport, error)
	SaveGenerated(ctx context.Context, userID string, in *transfer.GeneratedContentInput) (*models.ContentCalendarItem, error)
	BulkUpdate(ctx context.Context, userID string, in *transfer.BulkCalendarUpdate) (int, error)
	BulkDelete(ctx context.Context, userID string, ids []string) (int, error)
	Export(ctx context.Context, userID string, w io.Writer, format insights.ExportFormat, filter insights.ExportFilter) (int, error)
	BestTimes(ctx context.Context, userID, platform string, loc *time.Location) (*insights.BestTimeReport, error)
	CanAdd(ctx context.Context, userID string) (bool, error)
}

type calendarService struct {
	c     repository.CalendarRepository
	tiers TierResolver
	now   func() time.Time
}

func NewCalendarService(c repository.CalendarRepository, tiers TierResolver) CalendarService {
	return &calendarService{
		c:     c,
		tiers: tiers,
		now:   time.Now,
	}
}

func (s *calendarService) CanAdd(ctx context.Context, userID string) (bool, error) {
	tier, err := s.tiers.CurrentTier(ctx, userID)
	if err != nil {
		return false, err
	}
	limit, capped := tier.MaxCalendarItems()
	if !capped {
		return true, nil
	}
	items, err := s.c.ListByUserID(ctx, userID, nil)
	if err != nil {
		return false, err
	}
	return len(items) < limit, nil
}

func (s *calendarService) Add(ctx context.Context, userID string, in *transfer.CalendarItemInput) (*models.ContentCalendarItem, error) {
	ok, err := s.CanAdd(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		limit, _ := models.TierFree.MaxCalendarItems()
		err := &QuotaError{Resource: "calendar_item", Limit: limit, Message: MsgCalendarQuota}
		slog.Info(err.Error(), "user_id", userID)
		return nil, err
	}
	if in == nil || strings.TrimSpace(in.Title) == "" {
		return nil, logErr(invalid(MsgCalendarNoTitle))
	}

	item := &models.ContentCalendarItem{
		UserID:   userID,
		BrandID:  nonEmpty(in.BrandID),
		Date:     in.Date,
		Platform: in.Platform,
		Title:    strings.TrimSpace(in.Title),
		Notes:    in.Notes,
	}
	if item.Date.IsZero() {
		item.Date = s.now().UTC()
	}
	if err := s.c.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *calendarService) owned(ctx context.Context, userID, itemID string) (*models.ContentCalendarItem, error) {
	item, err := s.c.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.UserID != userID {
		return nil, logErr(notFound("calendar item"))
	}
	return item, nil
}

func (s *calendarService) Update(ctx context.Context, userID, itemID string, in *transfer.CalendarItemInput) (*models.ContentCalendarItem, error) {
	item, err := s.owned(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if in == nil {
		return item, nil
	}
	if title := strings.TrimSpace(in.Title); title != "" {
		item.Title = title
	}
	if !in.Date.IsZero() {
		item.Date = in.Date
	}
	if in.Platform != "" {
		item.Platform = in.Platform
	}
	if in.BrandID != nil {
		item.BrandID = nonEmpty(in.BrandID)
	}
	item.Notes = in.Notes

	if err := s.c.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *calendarService) Delete(ctx context.Context, userID, itemID string) error {
	if _, err := s.owned(ctx, userID, itemID); err != nil {
		return err
	}
	return s.c.Remove(ctx, itemID)
}

func (s *calendarService) List(ctx context.Context, userID string, brandID *string) ([]*models.ContentCalendarItem, error) {
	items, err := s.c.ListByUserID(ctx, userID, brandID)
	if err != nil {
		return nil, fmt.Errorf("listing calendar items: %w", err)
	}
	return items, nil
}

func (s *calendarService) Search(ctx context.Context, userID string, brandID *string, query string, filter insights.CalendarFilter, loc *time.Location) ([]*models.ContentCalendarItem, error) {
	items, err := s.List(ctx, userID, brandID)
	if err != nil {
		return nil, err
	}
	return insights.Search(items, query, filter, s.now().In(loc)), nil
}

func (s *calendarService) Analytics(ctx context.Context, userID string, period insights.AnalyticsPeriod, loc *time.Location) (*insights.AnalyticsReport, error) {
	items, err := s.List(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	report := insights.Analytics(items, period, s.now().In(loc))
	return &report, nil
}

// SaveGenerated files generated copy on today's date under a fixed title.
func (s *calendarService) SaveGenerated(ctx context.Context, userID string, in *transfer.GeneratedContentInput) (*models.ContentCalendarItem, error) {
	if in == nil || strings.TrimSpace(in.Content) == "" {
		return nil, logErr(invalid("Generate content before saving."))
	}

	item := &models.ContentCalendarItem{
		UserID:   userID,
		BrandID:  nonEmpty(in.BrandID),
		Date:     in.Date,
		Platform: in.Platform,
		Title:    generatedTitle,
		Notes:    in.Content,
	}
	if item.Date.IsZero() {
		item.Date = s.now().UTC()
	}
	if err := s.c.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// BulkUpdate moves the listed items to a new date or platform. Items that
// fail are logged and skipped; the count of saved items is returned.
func (s *calendarService) BulkUpdate(ctx context.Context, userID string, in *transfer.BulkCalendarUpdate) (int, error) {
	if in == nil || len(in.IDs) == 0 {
		return 0, logErr(invalid("Select at least one item."))
	}
	if in.Date == nil && (in.Platform == nil || *in.Platform == "") {
		return 0, logErr(invalid("Choose a new date or platform."))
	}

	updated := 0
	for _, id := range in.IDs {
		item, err := s.owned(ctx, userID, id)
		if err != nil {
			slog.Info("bulk update skipped item", "id", id, "error", err)
			continue
		}
		if in.Date != nil {
			item.Date = *in.Date
		} else {
			item.Platform = *in.Platform
		}
		if err := s.c.Save(ctx, item); err != nil {
			slog.Info("bulk update failed", "id", id, "error", err)
			continue
		}
		updated++
	}
	return updated, nil
}

func (s *calendarService) BulkDelete(ctx context.Context, userID string, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, logErr(invalid("Select at least one item."))
	}

	deleted := 0
	for _, id := range ids {
		if err := s.Delete(ctx, userID, id); err != nil {
			slog.Info("bulk delete skipped item", "id", id, "error", err)
			continue
		}
		deleted++
	}
	return deleted, nil
}

func (s *calendarService) Export(ctx context.Context, userID string, w io.Writer, format insights.ExportFormat, filter insights.ExportFilter) (int, error) {
	items, err := s.c.ListByUserID(ctx, userID, nil)
	if err != nil {
		return 0, err
	}
	return insights.Export(w, format, items, filter, s.now())
}

func (s *calendarService) BestTimes(ctx context.Context, userID, platform string, loc *time.Location) (*insights.BestTimeReport, error) {
	if strings.TrimSpace(platform) == "" {
		return nil, logErr(invalid("Choose a platform to analyze."))
	}
	items, err := s.c.ListByUserID(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	report := insights.BestTimes(items, platform, loc)
	return &report, nil
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
