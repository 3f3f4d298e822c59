package insights

import (
	"sort"
	"time"

	"github.com/maheshrc27/marketing-hub/internal/models"
)

type AnalyticsPeriod string

const (
	PeriodLast7Days  AnalyticsPeriod = "last7Days"
	PeriodLast30Days AnalyticsPeriod = "last30Days"
	PeriodLast90Days AnalyticsPeriod = "last90Days"
	PeriodAllTime    AnalyticsPeriod = "allTime"
)

func ParseAnalyticsPeriod(s string) (AnalyticsPeriod, bool) {
	switch p := AnalyticsPeriod(s); p {
	case PeriodLast7Days, PeriodLast30Days, PeriodLast90Days, PeriodAllTime:
		return p, true
	}
	return "", false
}

// Days is the look-back window; 0 means no bound.
func (p AnalyticsPeriod) Days() int {
	switch p {
	case PeriodLast7Days:
		return 7
	case PeriodLast30Days:
		return 30
	case PeriodLast90Days:
		return 90
	default:
		return 0
	}
}

type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type PlatformShare struct {
	Platform   string  `json:"platform"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type ContentSummary struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Platform string    `json:"platform"`
	Date     time.Time `json:"date"`
}

type DayBestTime struct {
	Day   string `json:"day"`
	Hour  int    `json:"hour"`
	Count int    `json:"count"`
}

type AnalyticsReport struct {
	Period               AnalyticsPeriod  `json:"period"`
	TotalPosts           int              `json:"total_posts"`
	ScheduledPosts       int              `json:"scheduled_posts"`
	PlatformCount        int              `json:"platform_count"`
	AveragePostsPerWeek  float64          `json:"average_posts_per_week"`
	PostsByDate          []DateCount      `json:"posts_by_date"`
	PlatformDistribution []PlatformShare  `json:"platform_distribution"`
	TopContent           []ContentSummary `json:"top_content"`
	BestPostingTimes     []DayBestTime    `json:"best_posting_times"`
}

// Analytics summarizes calendar items dated inside the period ending at now.
// Days and hours are taken in now's location. The weekly average is only
// computed for bounded periods.
func Analytics(items []*models.ContentCalendarItem, period AnalyticsPeriod, now time.Time) AnalyticsReport {
	loc := now.Location()
	var inPeriod []*models.ContentCalendarItem
	start := now.AddDate(0, 0, -period.Days())
	for _, item := range items {
		if period.Days() > 0 && item.Date.Before(start) {
			continue
		}
		inPeriod = append(inPeriod, item)
	}

	report := AnalyticsReport{
		Period:               period,
		TotalPosts:           len(inPeriod),
		PostsByDate:          []DateCount{},
		PlatformDistribution: []PlatformShare{},
		TopContent:           make([]ContentSummary, 0, len(inPeriod)),
		BestPostingTimes:     []DayBestTime{},
	}
	if days := period.Days(); days > 0 {
		report.AveragePostsPerWeek = float64(len(inPeriod)) / (float64(days) / 7)
	}

	byDate := map[string]int{}
	byPlatform := map[string]int{}
	dayHours := map[time.Weekday]map[int]int{}
	for _, item := range inPeriod {
		at := item.Date.In(loc)
		if item.Date.After(now) {
			report.ScheduledPosts++
		}
		byDate[at.Format("2006-01-02")]++
		byPlatform[item.Platform]++
		if dayHours[at.Weekday()] == nil {
			dayHours[at.Weekday()] = map[int]int{}
		}
		dayHours[at.Weekday()][at.Hour()]++
		report.TopContent = append(report.TopContent, ContentSummary{
			ID:       item.ID,
			Title:    item.Title,
			Platform: item.Platform,
			Date:     item.Date,
		})
	}
	report.PlatformCount = len(byPlatform)

	for date, n := range byDate {
		report.PostsByDate = append(report.PostsByDate, DateCount{Date: date, Count: n})
	}
	sort.Slice(report.PostsByDate, func(i, j int) bool { return report.PostsByDate[i].Date < report.PostsByDate[j].Date })

	for platform, n := range byPlatform {
		report.PlatformDistribution = append(report.PlatformDistribution, PlatformShare{
			Platform:   platform,
			Count:      n,
			Percentage: float64(n) / float64(len(inPeriod)) * 100,
		})
	}
	sort.Slice(report.PlatformDistribution, func(i, j int) bool {
		a, b := report.PlatformDistribution[i], report.PlatformDistribution[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Platform < b.Platform
	})

	sort.SliceStable(report.TopContent, func(i, j int) bool { return report.TopContent[i].Date.After(report.TopContent[j].Date) })

	for _, day := range weekdays {
		hours, ok := dayHours[day]
		if !ok {
			continue
		}
		best := DayBestTime{Day: day.String(), Hour: -1}
		for hour, n := range hours {
			if n > best.Count || (n == best.Count && hour < best.Hour) {
				best.Hour, best.Count = hour, n
			}
		}
		report.BestPostingTimes = append(report.BestPostingTimes, best)
	}
	sort.SliceStable(report.BestPostingTimes, func(i, j int) bool {
		return report.BestPostingTimes[i].Count > report.BestPostingTimes[j].Count
	})
	return report
}
