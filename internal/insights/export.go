package insights

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/maheshrc27/marketing-hub/internal/models"
)

type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatJSON ExportFormat = "json"
)

type DateRange string

const (
	RangeAll        DateRange = "all"
	RangeThisWeek   DateRange = "thisWeek"
	RangeThisMonth  DateRange = "thisMonth"
	RangeLast30Days DateRange = "last30Days"
)

// ExportFilter narrows calendar items. From/To override Range when set.
type ExportFilter struct {
	Platform string
	Range    DateRange
	From     *time.Time
	To       *time.Time
}

type exportItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Platform string `json:"platform"`
	Date     string `json:"date"`
	Content  string `json:"content"`
	BrandID  string `json:"brandId"`
}

type exportDocument struct {
	ExportDate string       `json:"exportDate"`
	TotalItems int          `json:"totalItems"`
	Items      []exportItem `json:"items"`
}

// FilterItems applies the filter relative to now and returns the items
// ordered by date.
func FilterItems(items []*models.ContentCalendarItem, f ExportFilter, now time.Time) []*models.ContentCalendarItem {
	from, to := f.bounds(now)
	out := make([]*models.ContentCalendarItem, 0, len(items))
	for _, item := range items {
		if f.Platform != "" && !strings.EqualFold(f.Platform, "all") && !strings.EqualFold(item.Platform, f.Platform) {
			continue
		}
		if from != nil && item.Date.Before(*from) {
			continue
		}
		if to != nil && item.Date.After(*to) {
			continue
		}
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func (f ExportFilter) bounds(now time.Time) (*time.Time, *time.Time) {
	if f.From != nil || f.To != nil {
		return f.From, f.To
	}
	var from time.Time
	switch f.Range {
	case RangeThisWeek:
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		offset := (int(day.Weekday()) + 6) % 7
		from = day.AddDate(0, 0, -offset)
		to := from.AddDate(0, 0, 7).Add(-time.Nanosecond)
		return &from, &to
	case RangeThisMonth:
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)
		return &from, &to
	case RangeLast30Days:
		from = now.AddDate(0, 0, -30)
		return &from, &now
	default:
		return nil, nil
	}
}

// WriteCSV writes one row per item under a fixed header.
func WriteCSV(w io.Writer, items []*models.ContentCalendarItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Time", "Platform", "Title", "Content"}); err != nil {
		return err
	}
	for _, item := range items {
		row := []string{
			item.Date.Format("2006-01-02"),
			item.Date.Format("15:04"),
			item.Platform,
			item.Title,
			item.Notes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteJSON(w io.Writer, items []*models.ContentCalendarItem, now time.Time) error {
	doc := exportDocument{
		ExportDate: now.UTC().Format(time.RFC3339),
		TotalItems: len(items),
		Items:      make([]exportItem, 0, len(items)),
	}
	for _, item := range items {
		brandID := ""
		if item.BrandID != nil {
			brandID = *item.BrandID
		}
		doc.Items = append(doc.Items, exportItem{
			ID:       item.ID,
			Title:    item.Title,
			Platform: item.Platform,
			Date:     item.Date.UTC().Format(time.RFC3339),
			Content:  item.Notes,
			BrandID:  brandID,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Export writes the filtered items in the requested format.
func Export(w io.Writer, format ExportFormat, items []*models.ContentCalendarItem, f ExportFilter, now time.Time) (int, error) {
	filtered := FilterItems(items, f, now)
	switch format {
	case FormatCSV, "":
		return len(filtered), WriteCSV(w, filtered)
	case FormatJSON:
		return len(filtered), WriteJSON(w, filtered, now)
	default:
		return 0, fmt.Errorf("unsupported export format %q", format)
	}
}

// FileName is the suggested download name for an export.
func FileName(format ExportFormat, now time.Time) string {
	if format == "" {
		format = FormatCSV
	}
	return fmt.Sprintf("marketing-calendar-%s.%s", now.Format("2006-01-02"), format)
}
