package service

import (
	"context"

	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/transfer"
	"golang.org/x/sync/errgroup"
)

type Dashboard struct {
	Profile            *models.UserProfile           `json:"profile"`
	Tier               models.SubscriptionTier       `json:"tier"`
	SelectedBrandID    *string                       `json:"selected_brand_id,omitempty"`
	Brands             []*models.Brand               `json:"brands"`
	CampaignPlans      []*models.CampaignPlan        `json:"campaign_plans"`
	CalendarItems      []*models.ContentCalendarItem `json:"calendar_items"`
	Templates          []*transfer.TemplateView      `json:"templates"`
	AffiliateTools     []*transfer.AffiliateToolView `json:"affiliate_tools"`
	CanAddCampaignPlan bool                          `json:"can_add_campaign_plan"`
	CanAddCalendarItem bool                          `json:"can_add_calendar_item"`
	CanAddBrand        bool                          `json:"can_add_brand"`
}

type DashboardService interface {
	// Load gathers the portal for a user. Campaigns and calendar items are
	// narrowed to brandID, or to the user's first brand when brandID is nil.
	Load(ctx context.Context, userID string, brandID *string) (*Dashboard, error)
}

type dashboardService struct {
	profiles  ProfileService
	tiers     TierResolver
	brands    BrandService
	campaigns CampaignService
	calendar  CalendarService
	catalog   CatalogService
}

func NewDashboardService(
	profiles ProfileService,
	tiers TierResolver,
	brands BrandService,
	campaigns CampaignService,
	calendar CalendarService,
	catalog CatalogService) DashboardService {
	return &dashboardService{
		profiles:  profiles,
		tiers:     tiers,
		brands:    brands,
		campaigns: campaigns,
		calendar:  calendar,
		catalog:   catalog,
	}
}

func (s *dashboardService) Load(ctx context.Context, userID string, brandID *string) (*Dashboard, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	tier, err := s.tiers.CurrentTier(ctx, userID)
	if err != nil {
		return nil, err
	}
	brands, err := s.brands.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{Profile: profile, Tier: tier, Brands: brands}
	d.SelectedBrandID = nonEmpty(brandID)
	if d.SelectedBrandID == nil && len(brands) > 0 {
		d.SelectedBrandID = &brands[0].ID
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.CampaignPlans, err = s.campaigns.List(ctx, userID, d.SelectedBrandID)
		return err
	})
	g.Go(func() (err error) {
		d.CalendarItems, err = s.calendar.List(ctx, userID, d.SelectedBrandID)
		return err
	})
	g.Go(func() (err error) {
		d.Templates, err = s.catalog.Templates(ctx, userID, "")
		return err
	})
	g.Go(func() (err error) {
		d.AffiliateTools, err = s.catalog.AffiliateTools(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		d.CanAddCampaignPlan, err = s.campaigns.CanAdd(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		d.CanAddCalendarItem, err = s.calendar.CanAdd(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		d.CanAddBrand, err = s.brands.CanAdd(ctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return d, nil
}
