package service

import (
	"context"
	"fmt"
	"time"

	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/repository"
)

type SeedResult struct {
	BrandCount         int `json:"brand_count"`
	CampaignCount      int `json:"campaign_count"`
	CalendarCount      int `json:"calendar_count"`
	TemplateCount      int `json:"template_count"`
	AffiliateToolCount int `json:"affiliate_tool_count"`
}

func (r SeedResult) Summary() string {
	return fmt.Sprintf("Seeded %d brands, %d campaigns, %d calendar items, %d templates, %d affiliate tools.",
		r.BrandCount, r.CampaignCount, r.CalendarCount, r.TemplateCount, r.AffiliateToolCount)
}

// SeedService writes demo content for a user. Records use fixed ids so
// seeding twice overwrites instead of duplicating. Quotas do not apply.
type SeedService interface {
	Seed(ctx context.Context, userID string) (SeedResult, error)
}

type seedService struct {
	b       repository.BrandRepository
	c       repository.CampaignRepository
	cal     repository.CalendarRepository
	catalog CatalogService
	now     func() time.Time
}

func NewSeedService(
	b repository.BrandRepository,
	c repository.CampaignRepository,
	cal repository.CalendarRepository,
	catalog CatalogService) SeedService {
	return &seedService{
		b:       b,
		c:       c,
		cal:     cal,
		catalog: catalog,
		now:     time.Now,
	}
}

func (s *seedService) Seed(ctx context.Context, userID string) (SeedResult, error) {
	var result SeedResult
	if userID == "" {
		return result, logErr(invalid("Missing user profile for demo data seeding."))
	}
	now := s.now().UTC()

	brands := demoBrands(userID)
	for _, brand := range brands {
		if err := s.b.Save(ctx, brand); err != nil {
			return result, fmt.Errorf("seeding brand %s: %w", brand.ID, err)
		}
		result.BrandCount++
	}
	brandID := &brands[0].ID

	for _, plan := range demoCampaigns(userID, brandID, now) {
		if err := s.c.Save(ctx, plan); err != nil {
			return result, fmt.Errorf("seeding campaign %s: %w", plan.ID, err)
		}
		result.CampaignCount++
	}

	for _, item := range demoCalendar(userID, brandID, now) {
		if err := s.cal.Save(ctx, item); err != nil {
			return result, fmt.Errorf("seeding calendar item %s: %w", item.ID, err)
		}
		result.CalendarCount++
	}

	for _, template := range demoTemplates() {
		if err := s.catalog.DeleteTemplate(ctx, template.ID); err != nil {
			return result, err
		}
		if err := s.catalog.SaveTemplate(ctx, template); err != nil {
			return result, fmt.Errorf("seeding template %s: %w", template.ID, err)
		}
		result.TemplateCount++
	}

	for _, tool := range demoAffiliateTools() {
		if err := s.catalog.DeleteAffiliateTool(ctx, tool.ID); err != nil {
			return result, err
		}
		if err := s.catalog.SaveAffiliateTool(ctx, tool); err != nil {
			return result, fmt.Errorf("seeding affiliate tool %s: %w", tool.ID, err)
		}
		result.AffiliateToolCount++
	}

	return result, nil
}

func demoBrands(userID string) []*models.Brand {
	return []*models.Brand{
		{ID: "demo-brand-social-labs", UserID: userID, Name: "Social Labs Co.", Industry: "Education", ColorHex: "#5B8DEF"},
		{ID: "demo-brand-growth-studio", UserID: userID, Name: "Growth Studio Agency", Industry: "Professional Services", ColorHex: "#2AA876"},
	}
}

func demoCampaigns(userID string, brandID *string, now time.Time) []*models.CampaignPlan {
	return []*models.CampaignPlan{
		{
			ID:       "demo-campaign-spring",
			UserID:   userID,
			BrandID:  brandID,
			Platform: "Instagram",
			Budget:   2500,
			Goal:     "Awareness",
			OutlineDetails: "Hook Ideas: Behind-the-scenes Reel series featuring a 14-day sprint.\n" +
				"Content Themes: Founder spotlight, community wins, weekly giveaways.\n" +
				"CTA: Book a discovery call, download the free playbook.\n" +
				"Duration: 2-week burst with daily Stories support.",
			CreatedAt: now.AddDate(0, 0, -2),
		},
		{
			ID:       "demo-campaign-leads",
			UserID:   userID,
			BrandID:  brandID,
			Platform: "LinkedIn",
			Budget:   1800,
			Goal:     "Leads",
			OutlineDetails: "Hook Ideas: \"Predictable pipeline\" carousel.\n" +
				"Content Themes: Playbook snippets, client testimonials, live Q&A teaser.\n" +
				"CTA: Secure a funnel audit.\n" +
				"Duration: 10 days with retargeting on day 7.",
			CreatedAt: now.AddDate(0, 0, -5),
		},
	}
}

func demoCalendar(userID string, brandID *string, now time.Time) []*models.ContentCalendarItem {
	return []*models.ContentCalendarItem{
		{
			ID:       "demo-calendar-launch",
			UserID:   userID,
			BrandID:  brandID,
			Date:     now.AddDate(0, 0, 1),
			Platform: "Instagram",
			Title:    "Launch teaser Reel",
			Notes:    "Share B-roll montage with trending audio.",
		},
		{
			ID:       "demo-calendar-live",
			UserID:   userID,
			BrandID:  brandID,
			Date:     now.AddDate(0, 0, 3),
			Platform: "LinkedIn",
			Title:    "Live AMA announcement",
			Notes:    "Tag partners, include event link.",
		},
	}
}

func demoTemplates() []*models.TemplateItem {
	return []*models.TemplateItem{
		{ID: "demo-template-campaign-brief", Name: "Campaign Brief Template", Description: "Structured outline to communicate goals, budget, and KPIs."},
		{ID: "demo-template-agency-proposal", Name: "Agency Proposal Deck", Description: "Pitch deck with pricing tiers and service scope.", IsPremium: true},
		{ID: "demo-template-fractional-cmo", Name: "Fractional CMO Gameplan", Description: "Agency-only roadmap for onboarding new retainers.", IsPremium: true, IsAgencyOnly: true},
	}
}

func demoAffiliateTools() []*models.AffiliateTool {
	return []*models.AffiliateTool{
		{ID: "demo-affiliate-scheduler", Name: "ScheduleFlow", ShortDescription: "Cross-platform content scheduler with AI topic surfacing.", URL: "https://example.com/scheduleflow", IsProRecommended: true},
		{ID: "demo-affiliate-analytics", Name: "PulseMetrics", ShortDescription: "Lightweight analytics dashboard for marketing teams.", URL: "https://example.com/pulsemetrics"},
	}
}
