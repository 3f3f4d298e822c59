package insights

import (
	"strings"
)

const maxHashtags = 30

type Hashtag struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

type HashtagInsight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type HashtagReport struct {
	Topic    string           `json:"topic"`
	Platform string           `json:"platform"`
	Hashtags []Hashtag        `json:"hashtags"`
	Insights []HashtagInsight `json:"insights"`
}

var platformHashtags = map[string][]string{
	"instagram": {"#instagram", "#instagood", "#photooftheday", "#love", "#like4like", "#followme", "#picoftheday"},
	"facebook":  {"#facebook", "#socialmedia", "#marketing", "#business", "#entrepreneur"},
	"linkedin":  {"#linkedin", "#networking", "#business", "#career", "#professional", "#leadership"},
	"twitter/x": {"#twitter", "#tweet", "#trending", "#news", "#viral"},
	"tiktok":    {"#tiktok", "#fyp", "#viral", "#foryou", "#foryoupage", "#trending"},
	"youtube":   {"#youtube", "#subscribe", "#video", "#youtuber", "#vlog"},
	"pinterest": {"#pinterest", "#pin", "#diy", "#home", "#inspiration"},
}

// ResearchHashtags suggests up to 30 unique hashtags for a topic.
func ResearchHashtags(topic, platform string) HashtagReport {
	report := HashtagReport{Topic: topic, Platform: platform, Hashtags: []Hashtag{}}

	lower := strings.ToLower(strings.TrimSpace(topic))
	var candidates []string
	if lower != "" {
		joined := strings.ReplaceAll(lower, " ", "")
		candidates = append(candidates,
			"#"+joined,
			"#"+strings.ReplaceAll(lower, " ", "_"),
			"#"+joined+"tips",
			"#"+joined+"life",
		)
	}
	candidates = append(candidates, platformHashtags[platformKey(platform)]...)
	candidates = append(candidates, categoryHashtags(lower)...)

	seen := make(map[string]bool, len(candidates))
	for _, tag := range candidates {
		if seen[tag] || len(report.Hashtags) == maxHashtags {
			continue
		}
		seen[tag] = true
		report.Hashtags = append(report.Hashtags, Hashtag{Text: tag, Category: categorize(tag)})
	}

	report.Insights = hashtagInsights(platform)
	return report
}

func platformKey(platform string) string {
	key := strings.ToLower(platform)
	if key == "twitter" || key == "x" {
		return "twitter/x"
	}
	return key
}

func categoryHashtags(topic string) []string {
	switch {
	case strings.Contains(topic, "marketing") || strings.Contains(topic, "business"):
		return []string{"#marketing", "#business", "#entrepreneur", "#startup", "#success", "#growth"}
	case strings.Contains(topic, "fitness") || strings.Contains(topic, "health"):
		return []string{"#fitness", "#health", "#wellness", "#workout", "#gym", "#motivation"}
	case strings.Contains(topic, "food") || strings.Contains(topic, "cooking"):
		return []string{"#food", "#foodie", "#cooking", "#recipe", "#delicious", "#yummy"}
	case strings.Contains(topic, "travel"):
		return []string{"#travel", "#wanderlust", "#adventure", "#explore", "#vacation"}
	default:
		return []string{"#lifestyle", "#daily", "#inspiration", "#motivation"}
	}
}

func categorize(tag string) string {
	lower := strings.ToLower(tag)
	switch {
	case strings.Contains(lower, "marketing") || strings.Contains(lower, "business") || strings.Contains(lower, "entrepreneur"):
		return "business"
	case strings.Contains(lower, "fitness") || strings.Contains(lower, "health") || strings.Contains(lower, "wellness"):
		return "lifestyle"
	case strings.Contains(lower, "food") || strings.Contains(lower, "cooking") || strings.Contains(lower, "recipe"):
		return "food"
	case strings.Contains(lower, "travel") || strings.Contains(lower, "wanderlust"):
		return "travel"
	default:
		return "general"
	}
}

func hashtagInsights(platform string) []HashtagInsight {
	switch platformKey(platform) {
	case "instagram":
		return []HashtagInsight{
			{"Optimal Hashtag Count", "Use 5-10 hashtags for best engagement. Mix popular (1M+ posts) and niche (10K-500K posts) hashtags."},
			{"Hashtag Placement", "Place hashtags in the first comment or at the end of your caption for cleaner appearance."},
			{"Research Tools", "Use Instagram's search to find related hashtags and see post counts before using them."},
		}
	case "twitter/x":
		return []HashtagInsight{
			{"Optimal Hashtag Count", "Use 1-2 hashtags for best engagement. More hashtags can reduce engagement."},
			{"Trending Hashtags", "Monitor trending topics and join relevant conversations with appropriate hashtags."},
		}
	default:
		return []HashtagInsight{
			{"Hashtag Best Practices", "Use relevant, platform-specific hashtags. Research what works best for your audience."},
		}
	}
}
