package models

import "strings"

type MarketingTone string

const (
	ToneFriendly     MarketingTone = "Friendly"
	ToneProfessional MarketingTone = "Professional"
	ToneLuxury       MarketingTone = "Luxury"
	ToneMotivational MarketingTone = "Motivational"
)

var MarketingTones = []MarketingTone{ToneFriendly, ToneProfessional, ToneLuxury, ToneMotivational}

type MarketingPlatform string

const (
	MarketingInstagram MarketingPlatform = "Instagram"
	MarketingTikTok    MarketingPlatform = "TikTok"
	MarketingFacebook  MarketingPlatform = "Facebook"
	MarketingYouTube   MarketingPlatform = "YouTube"
	MarketingLinkedIn  MarketingPlatform = "LinkedIn"
	MarketingPinterest MarketingPlatform = "Pinterest"
	MarketingEmail     MarketingPlatform = "Email"
)

var MarketingPlatforms = []MarketingPlatform{
	MarketingInstagram, MarketingTikTok, MarketingFacebook, MarketingYouTube,
	MarketingLinkedIn, MarketingPinterest, MarketingEmail,
}

type SocialPlatform string

const (
	Instagram SocialPlatform = "Instagram"
	Facebook  SocialPlatform = "Facebook"
	LinkedIn  SocialPlatform = "LinkedIn"
	Twitter   SocialPlatform = "Twitter/X"
	TikTok    SocialPlatform = "TikTok"
	Pinterest SocialPlatform = "Pinterest"
)

var SocialPlatforms = []SocialPlatform{Instagram, Facebook, LinkedIn, Twitter, TikTok, Pinterest}

func ParseSocialPlatform(s string) (SocialPlatform, bool) {
	for _, p := range SocialPlatforms {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

func (p SocialPlatform) RequiresMedia() bool {
	return p == Instagram || p == Pinterest
}

func (p SocialPlatform) MaxPostLength() int {
	switch p {
	case Twitter:
		return 280
	case Facebook:
		return 63206
	case LinkedIn:
		return 3000
	case Pinterest:
		return 500
	default:
		return 2200
	}
}

// Slug is the lower-case short name used in identifiers and routes.
func (p SocialPlatform) Slug() string {
	if p == Twitter {
		return "twitter"
	}
	return strings.ToLower(string(p))
}

func SocialPlatformFromSlug(slug string) (SocialPlatform, bool) {
	for _, p := range SocialPlatforms {
		if p.Slug() == strings.ToLower(slug) {
			return p, true
		}
	}
	return "", false
}

var BusinessTypes = []string{
	"E-commerce",
	"SaaS / Tech",
	"Fitness & Wellness",
	"Coaching & Consulting",
	"Food & Beverage",
	"Fashion & Beauty",
	"Real Estate",
	"Finance & Investing",
	"Education & Training",
	"Healthcare",
	"Travel & Hospitality",
	"Nonprofit",
	"Marketing Agency",
	"Other",
}

var TargetAudiences = []string{
	"Millennials (25-40)",
	"Gen Z (18-24)",
	"Gen X (41-56)",
	"Baby Boomers (57+)",
	"Entrepreneurs & Founders",
	"Working Professionals",
	"Students",
	"Parents & Families",
	"Fitness Enthusiasts",
	"Tech Enthusiasts",
	"Small Business Owners",
	"Creatives & Artists",
	"Luxury Consumers",
	"Budget-Conscious",
	"Other",
}

var CampaignGoals = []string{
	"Brand Awareness",
	"Drive Traffic",
	"Increase Sales",
	"Generate Leads",
	"Boost Engagement",
	"Drive Conversions",
	"Customer Retention",
	"Product Launch",
	"Promote Event",
	"Other",
}

var ServiceTypes = []string{
	"Consultation",
	"Ad Audit",
	"Funnel Build",
	"Marketing Strategy",
	"Content Creation",
	"Social Media Management",
	"SEO Optimization",
	"Email Marketing Setup",
	"Analytics Setup",
	"Other",
}

type BrandColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

var BrandColors = []BrandColor{
	{"Blue", "#5B8DEF"},
	{"Green", "#2AA876"},
	{"Purple", "#7F52FF"},
	{"Red", "#FF3B30"},
	{"Orange", "#FF9500"},
	{"Yellow", "#FFCC00"},
	{"Pink", "#FF2D55"},
	{"Teal", "#5AC8FA"},
	{"Indigo", "#5856D6"},
	{"Black", "#000000"},
}
