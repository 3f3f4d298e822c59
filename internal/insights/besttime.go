package insights

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/maheshrc27/marketing-hub/internal/models"
)

var weekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

type OptimalTime struct {
	DayOfWeek string `json:"day_of_week"`
	Hour      int    `json:"hour"`
	Score     int    `json:"score"`
}

type DayPerformance struct {
	Day       string `json:"day"`
	PostCount int    `json:"post_count"`
}

type HourPerformance struct {
	Hour      int `json:"hour"`
	PostCount int `json:"post_count"`
}

type Recommendation struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type BestTimeReport struct {
	Platform        string            `json:"platform"`
	OptimalTimes    []OptimalTime     `json:"optimal_times"`
	Days            []DayPerformance  `json:"days"`
	Hours           []HourPerformance `json:"hours"`
	Recommendations []Recommendation  `json:"recommendations"`
}

// BestTimes analyses when the user has scheduled content for a platform.
// Times are bucketed in loc.
func BestTimes(items []*models.ContentCalendarItem, platform string, loc *time.Location) BestTimeReport {
	if loc == nil {
		loc = time.UTC
	}
	report := BestTimeReport{
		Platform:        platform,
		OptimalTimes:    []OptimalTime{},
		Days:            []DayPerformance{},
		Hours:           []HourPerformance{},
		Recommendations: []Recommendation{},
	}

	dayCounts := map[time.Weekday]int{}
	hourCounts := map[int]int{}
	matched := 0
	for _, item := range items {
		if !strings.EqualFold(item.Platform, platform) {
			continue
		}
		matched++
		local := item.Date.In(loc)
		dayCounts[local.Weekday()]++
		hourCounts[local.Hour()]++
	}

	if matched == 0 {
		report.Recommendations = append(platformRecommendations(platform), Recommendation{
			Type:        "data",
			Title:       "Need More Data",
			Description: "Schedule more posts to get personalized best time recommendations based on your audience.",
		})
		return report
	}

	for _, d := range weekdays {
		report.Days = append(report.Days, DayPerformance{Day: d.String(), PostCount: dayCounts[d]})
	}
	for h := 0; h < 24; h++ {
		report.Hours = append(report.Hours, HourPerformance{Hour: h, PostCount: hourCounts[h]})
	}

	report.OptimalTimes = optimalTimes(dayCounts, hourCounts)

	if best := maxDay(report.Days); best.PostCount > 0 {
		report.Recommendations = append(report.Recommendations, Recommendation{
			Type:        "timing",
			Title:       fmt.Sprintf("Best Day: %s", best.Day),
			Description: fmt.Sprintf("You've posted most on %s. Consider this your optimal day for this platform.", best.Day),
		})
	}
	if best := maxHour(report.Hours); best.PostCount > 0 {
		report.Recommendations = append(report.Recommendations, Recommendation{
			Type:        "timing",
			Title:       fmt.Sprintf("Best Hour: %d:00", best.Hour),
			Description: "Your highest engagement time. Schedule future posts around this time for better reach.",
		})
	}
	report.Recommendations = append(report.Recommendations, platformRecommendations(platform)...)
	return report
}

// Score normalises a day count against 10 and an hour count against 5,
// each worth half of a 100 point scale.
func Score(dayCount, hourCount int) int {
	score := int(float64(dayCount)/10*50 + float64(hourCount)/5*50)
	if score > 100 {
		return 100
	}
	return score
}

func optimalTimes(dayCounts map[time.Weekday]int, hourCounts map[int]int) []OptimalTime {
	type dayEntry struct {
		day   time.Weekday
		order int
		count int
	}
	type hourEntry struct {
		hour  int
		count int
	}

	var days []dayEntry
	for i, d := range weekdays {
		if c := dayCounts[d]; c > 0 {
			days = append(days, dayEntry{d, i, c})
		}
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].count > days[j].count })

	var hours []hourEntry
	for h := 0; h < 24; h++ {
		if c := hourCounts[h]; c > 0 {
			hours = append(hours, hourEntry{h, c})
		}
	}
	sort.SliceStable(hours, func(i, j int) bool { return hours[i].count > hours[j].count })

	out := []OptimalTime{}
	for _, d := range days[:min(3, len(days))] {
		for _, h := range hours[:min(3, len(hours))] {
			out = append(out, OptimalTime{DayOfWeek: d.day.String(), Hour: h.hour, Score: Score(d.count, h.count)})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out[:min(5, len(out))]
}

func maxDay(days []DayPerformance) DayPerformance {
	var best DayPerformance
	for i, d := range days {
		if i == 0 || d.PostCount > best.PostCount {
			best = d
		}
	}
	return best
}

func maxHour(hours []HourPerformance) HourPerformance {
	var best HourPerformance
	for i, h := range hours {
		if i == 0 || h.PostCount > best.PostCount {
			best = h
		}
	}
	return best
}

func platformRecommendations(platform string) []Recommendation {
	var title, desc string
	switch strings.ToLower(platform) {
	case "instagram":
		title, desc = "Instagram Best Times", "Generally: Tuesday-Friday, 9 AM - 1 PM, and 7-9 PM EST tend to perform well."
	case "facebook":
		title, desc = "Facebook Best Times", "Best days: Thursday-Sunday. Best hours: 9 AM, 1 PM, and 3 PM EST."
	case "twitter", "twitter/x":
		title, desc = "Twitter Best Times", "Peak times: Monday-Friday, 9 AM - 3 PM EST. Higher engagement during weekdays."
	case "linkedin":
		title, desc = "LinkedIn Best Times", "Professional hours: Tuesday-Thursday, 8-10 AM EST. Avoid weekends and late evenings."
	case "tiktok":
		title, desc = "TikTok Best Times", "Evening hours: 6-10 PM EST, especially Tuesday-Thursday. Weekends also perform well."
	default:
		return []Recommendation{}
	}
	return []Recommendation{{Type: "engagement", Title: title, Description: desc}}
}
