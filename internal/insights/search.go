package insights

import (
	"strings"
	"time"

	"github.com/maheshrc27/marketing-hub/internal/models"
)

type CalendarFilter string

const (
	FilterAll       CalendarFilter = "all"
	FilterToday     CalendarFilter = "today"
	FilterThisWeek  CalendarFilter = "thisWeek"
	FilterThisMonth CalendarFilter = "thisMonth"
	FilterUpcoming  CalendarFilter = "upcoming"
	FilterPast      CalendarFilter = "past"
)

func ParseCalendarFilter(s string) (CalendarFilter, bool) {
	if s == "" {
		return FilterAll, true
	}
	switch f := CalendarFilter(s); f {
	case FilterAll, FilterToday, FilterThisWeek, FilterThisMonth, FilterUpcoming, FilterPast:
		return f, true
	}
	return "", false
}

// Search keeps items whose title, notes or platform contain query, case
// insensitively, and whose date passes filter relative to now. Calendar
// boundaries use now's location; weeks start on Monday.
func Search(items []*models.ContentCalendarItem, query string, filter CalendarFilter, now time.Time) []*models.ContentCalendarItem {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]*models.ContentCalendarItem, 0, len(items))
	for _, item := range items {
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Title), query) &&
			!strings.Contains(strings.ToLower(item.Notes), query) &&
			!strings.Contains(strings.ToLower(item.Platform), query) {
			continue
		}
		if !filter.matches(item.Date, now) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (f CalendarFilter) matches(date, now time.Time) bool {
	at := date.In(now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch f {
	case FilterToday:
		return !at.Before(today) && at.Before(today.AddDate(0, 0, 1))
	case FilterThisWeek:
		start := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))
		return !at.Before(start) && at.Before(start.AddDate(0, 0, 7))
	case FilterThisMonth:
		return at.Year() == now.Year() && at.Month() == now.Month()
	case FilterUpcoming:
		return date.After(now)
	case FilterPast:
		return date.Before(now)
	default:
		return true
	}
}
