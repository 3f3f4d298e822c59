package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	config "github.com/maheshrc27/marketing-hub/configs"
	"github.com/maheshrc27/marketing-hub/internal/cache"
	"github.com/maheshrc27/marketing-hub/internal/generator"
	"github.com/maheshrc27/marketing-hub/internal/insights"
	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/repository"
	"github.com/maheshrc27/marketing-hub/internal/store"
	"github.com/maheshrc27/marketing-hub/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:       testSecret,
		StorefrontKey:   "storefront-signing-key",
		ProProductID:    "dmhub.pro.monthly",
		AgencyProductID: "dmhub.agency.monthly",
		PostLease:       10 * time.Minute,
		CatalogCacheTTL: time.Minute,
	}
}

func strPtr(s string) *string { return &s }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestCampaignService_FreeTierCapsAtThree(t *testing.T) {
	ctx := context.Background()
	svc := NewCampaignService(repository.NewCampaignRepository(store.NewMemoryStore()), StaticTier(models.TierFree))

	in := &transfer.CampaignInput{Platform: "Instagram", Budget: 500, Goal: "Awareness", OutlineDetails: "outline"}
	for i := 0; i < 3; i++ {
		_, err := svc.Save(ctx, "u1", in)
		require.NoError(t, err)
	}

	_, err := svc.Save(ctx, "u1", in)
	var quota *QuotaError
	require.True(t, errors.As(err, &quota))
	assert.Equal(t, MsgCampaignQuota, quota.Message)
	assert.Equal(t, 3, quota.Limit)

	plans, err := svc.List(ctx, "u1", nil)
	require.NoError(t, err)
	assert.Len(t, plans, 3)
}

func TestCampaignService_ProTierIsUncapped(t *testing.T) {
	ctx := context.Background()
	svc := NewCampaignService(repository.NewCampaignRepository(store.NewMemoryStore()), StaticTier(models.TierPro))

	for i := 0; i < 5; i++ {
		_, err := svc.Save(ctx, "u1", &transfer.CampaignInput{Platform: "TikTok", OutlineDetails: "x"})
		require.NoError(t, err)
	}
}

func TestCampaignService_RequiresOutline(t *testing.T) {
	svc := NewCampaignService(repository.NewCampaignRepository(store.NewMemoryStore()), StaticTier(models.TierFree))

	_, err := svc.Save(context.Background(), "u1", &transfer.CampaignInput{Platform: "Instagram"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, MsgCampaignNoOutline, err.Error())
}

func TestCampaignService_GenerateOutline(t *testing.T) {
	svc := NewCampaignService(nil, nil)

	short := svc.GenerateOutline(models.MarketingInstagram, 500, "Awareness")
	assert.Contains(t, short, "Platform: Instagram\nGoal: Awareness\n")
	assert.Contains(t, short, "Duration: 7 day sprint.")
	assert.Contains(t, short, "Budget Allocation: Paid ads 200$, creators 150$, tools 150$.")

	long := svc.GenerateOutline(models.MarketingLinkedIn, 1000, "Leads")
	assert.Contains(t, long, "Duration: 14 day sprint.")
	assert.Contains(t, long, "Paid ads 400$, creators 300$, tools 300$.")
}

func TestCalendarService_FreeTierCapsAtTen(t *testing.T) {
	ctx := context.Background()
	svc := NewCalendarService(repository.NewCalendarRepository(store.NewMemoryStore()), StaticTier(models.TierFree))

	for i := 0; i < 10; i++ {
		_, err := svc.Add(ctx, "u1", &transfer.CalendarItemInput{Title: "Post", Platform: "Instagram", Date: time.Now()})
		require.NoError(t, err)
	}
	_, err := svc.Add(ctx, "u1", &transfer.CalendarItemInput{Title: "Post", Platform: "Instagram"})
	var quota *QuotaError
	require.True(t, errors.As(err, &quota))
	assert.Equal(t, MsgCalendarQuota, quota.Message)

	ok, err := svc.CanAdd(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCalendarService_TitleRequired(t *testing.T) {
	svc := NewCalendarService(repository.NewCalendarRepository(store.NewMemoryStore()), StaticTier(models.TierAgency))

	_, err := svc.Add(context.Background(), "u1", &transfer.CalendarItemInput{Platform: "Instagram"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, MsgCalendarNoTitle, err.Error())
}

func TestCalendarService_SaveGeneratedAndBulkActions(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)
	svc := NewCalendarService(repository.NewCalendarRepository(store.NewMemoryStore()), StaticTier(models.TierPro)).(*calendarService)
	svc.now = fixedClock(now)

	gen, err := svc.SaveGenerated(ctx, "u1", &transfer.GeneratedContentInput{Platform: "TikTok", Content: "Idea #1"})
	require.NoError(t, err)
	assert.Equal(t, "Generated Content", gen.Title)
	assert.Equal(t, now, gen.Date)

	other, err := svc.Add(ctx, "u2", &transfer.CalendarItemInput{Title: "Not mine", Platform: "Facebook", Date: now})
	require.NoError(t, err)

	platform := "LinkedIn"
	n, err := svc.BulkUpdate(ctx, "u1", &transfer.BulkCalendarUpdate{IDs: []string{gen.ID, other.ID}, Platform: &platform})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	items, err := svc.List(ctx, "u1", nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "LinkedIn", items[0].Platform)

	n, err = svc.BulkDelete(ctx, "u1", []string{gen.ID, other.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	left, err := svc.List(ctx, "u2", nil)
	require.NoError(t, err)
	assert.Len(t, left, 1)
}

func TestCalendarService_ExportCSV(t *testing.T) {
	ctx := context.Background()
	svc := NewCalendarService(repository.NewCalendarRepository(store.NewMemoryStore()), StaticTier(models.TierPro))

	_, err := svc.Add(ctx, "u1", &transfer.CalendarItemInput{Title: "Launch", Platform: "Instagram", Notes: "Reel", Date: time.Date(2025, 1, 2, 15, 4, 0, 0, time.UTC)})
	require.NoError(t, err)

	var buf strings.Builder
	n, err := svc.Export(ctx, "u1", &buf, insights.FormatCSV, insights.ExportFilter{Range: insights.RangeAll})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "Date,Time,Platform,Title,Content\n2025-01-02,15:04,Instagram,Launch,Reel\n", buf.String())
}

func TestBrandService_Quota(t *testing.T) {
	ctx := context.Background()
	rs := store.NewMemoryStore()

	free := NewBrandService(repository.NewBrandRepository(rs), StaticTier(models.TierFree))
	_, err := free.Create(ctx, "u1", &transfer.BrandInput{Name: "One"})
	require.NoError(t, err)
	_, err = free.Create(ctx, "u1", &transfer.BrandInput{Name: "Two"})
	var quota *QuotaError
	require.True(t, errors.As(err, &quota))
	assert.Equal(t, 1, quota.Limit)

	agency := NewBrandService(repository.NewBrandRepository(rs), StaticTier(models.TierAgency))
	for i := 0; i < 9; i++ {
		_, err := agency.Create(ctx, "u1", &transfer.BrandInput{Name: "Brand"})
		require.NoError(t, err)
	}
	_, err = agency.Create(ctx, "u1", &transfer.BrandInput{Name: "Eleventh"})
	require.True(t, errors.As(err, &quota))
	assert.Equal(t, 10, quota.Limit)
}

func TestBrandService_DefaultsColorAndChecksOwner(t *testing.T) {
	ctx := context.Background()
	svc := NewBrandService(repository.NewBrandRepository(store.NewMemoryStore()), StaticTier(models.TierFree))

	brand, err := svc.Create(ctx, "u1", &transfer.BrandInput{Name: "Acme", Industry: "Retail"})
	require.NoError(t, err)
	assert.Equal(t, "#5B8DEF", brand.ColorHex)

	err = svc.Delete(ctx, "u2", brand.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, svc.Delete(ctx, "u1", brand.ID))
}

func TestCatalogService_TemplatesByTier(t *testing.T) {
	items := demoTemplates()

	assert.Len(t, AvailableTemplates(items, models.TierFree), 1)
	assert.Len(t, AvailableTemplates(items, models.TierPro), 2)
	assert.Len(t, AvailableTemplates(items, models.TierAgency), 3)

	assert.True(t, IsLocked(items[1], models.TierFree))
	assert.False(t, IsLocked(items[1], models.TierPro))
	assert.True(t, IsLocked(items[2], models.TierPro))
	assert.False(t, IsLocked(items[2], models.TierAgency))
}

func TestCatalogService_BadgeText(t *testing.T) {
	recommended := &models.AffiliateTool{IsProRecommended: true}

	assert.Equal(t, "Pro Recommended", *BadgeText(recommended, models.TierFree))
	assert.Equal(t, "Recommended", *BadgeText(recommended, models.TierPro))
	assert.Equal(t, "Recommended", *BadgeText(recommended, models.TierAgency))
	assert.Nil(t, BadgeText(&models.AffiliateTool{}, models.TierFree))
}

func newCatalog(rs store.RecordStore, tier models.SubscriptionTier) CatalogService {
	return NewCatalogService(
		repository.NewTemplateRepository(rs),
		repository.NewAffiliateToolRepository(rs),
		repository.NewAffiliateClickRepository(rs),
		StaticTier(tier),
		cache.NewMemoryCache(),
		time.Minute,
	)
}

func TestCatalogService_SearchAndCacheInvalidation(t *testing.T) {
	ctx := context.Background()
	rs := store.NewMemoryStore()
	svc := newCatalog(rs, models.TierAgency)

	for _, tmpl := range demoTemplates() {
		require.NoError(t, svc.SaveTemplate(ctx, tmpl))
	}
	views, err := svc.Templates(ctx, "u1", "deck")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Agency Proposal Deck", views[0].Name)
	assert.False(t, views[0].Locked)

	require.NoError(t, svc.SaveTemplate(ctx, &models.TemplateItem{Name: "Social Deck"}))
	views, err = svc.Templates(ctx, "u1", "DECK")
	require.NoError(t, err)
	assert.Len(t, views, 2)
}

func TestCatalogService_LogAffiliateClick(t *testing.T) {
	ctx := context.Background()
	rs := store.NewMemoryStore()
	svc := newCatalog(rs, models.TierFree)

	for _, tool := range demoAffiliateTools() {
		require.NoError(t, svc.SaveAffiliateTool(ctx, tool))
	}
	tool, err := svc.LogAffiliateClick(ctx, "u1", "demo-affiliate-scheduler")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/scheduleflow", tool.URL)

	clicks, err := repository.NewAffiliateClickRepository(rs).ListByUserID(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, clicks, 1)
	assert.Equal(t, "demo-affiliate-scheduler", clicks[0].ToolID)

	_, err = svc.LogAffiliateClick(ctx, "u1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookingService_Submit(t *testing.T) {
	ctx := context.Background()
	svc := NewBookingService(repository.NewBookingRepository(store.NewMemoryStore()))

	booking, err := svc.Submit(ctx, "u1", &transfer.BookingRequest{ServiceType: "Ad Audit", Notes: "Q3 spend"})
	require.NoError(t, err)
	assert.Equal(t, "Ad Audit", booking.ServiceType)
	assert.False(t, booking.RequestedTime.IsZero())

	_, err = svc.Submit(ctx, "u1", &transfer.BookingRequest{ServiceType: "Skydiving"})
	assert.ErrorIs(t, err, ErrValidation)

	list, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestProfileService_MissingUserIsValidationError(t *testing.T) {
	svc := NewProfileService(repository.NewProfileRepository(store.NewMemoryStore()))

	_, err := svc.GetProfile(context.Background(), "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.GetProfile(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAuthService_SignInCreatesFreeProfileOnce(t *testing.T) {
	ctx := context.Background()
	profiles := repository.NewProfileRepository(store.NewMemoryStore())
	svc := NewAuthService(testConfig(), profiles)

	profile, created, err := svc.SignIn(ctx, &transfer.SignInPayload{UserID: "apple-1", Email: "a@example.com", FullName: "Ada"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.TierFree, profile.Plan)
	assert.Equal(t, "Ada", *profile.Name)

	_, created, err = svc.SignIn(ctx, &transfer.SignInPayload{UserID: "apple-1"})
	require.NoError(t, err)
	assert.False(t, created)

	_, _, err = svc.SignIn(ctx, &transfer.SignInPayload{})
	assert.ErrorIs(t, err, ErrValidation)

	token, err := svc.IssueSession("apple-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestSeedService_SeedsDemoData(t *testing.T) {
	ctx := context.Background()
	rs := store.NewMemoryStore()
	svc := NewSeedService(
		repository.NewBrandRepository(rs),
		repository.NewCampaignRepository(rs),
		repository.NewCalendarRepository(rs),
		newCatalog(rs, models.TierAgency),
	)

	result, err := svc.Seed(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Seeded 2 brands, 2 campaigns, 2 calendar items, 3 templates, 2 affiliate tools.", result.Summary())

	_, err = svc.Seed(ctx, "u1")
	require.NoError(t, err)
	brands, err := repository.NewBrandRepository(rs).ListByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, brands, 2)
}

func TestContentService_ValidatesToneAndPlatform(t *testing.T) {
	svc := NewContentService(generator.New(1))

	out, err := svc.Generate(&transfer.GenerateRequest{BusinessType: "E-commerce", Tone: "Motivational", Platform: "TikTok"})
	require.NoError(t, err)
	assert.Len(t, out, 3)

	_, err = svc.Generate(&transfer.GenerateRequest{Tone: "Sarcastic"})
	assert.ErrorIs(t, err, ErrValidation)

	report, err := svc.Hashtags("fitness", "Instagram")
	require.NoError(t, err)
	assert.NotEmpty(t, report.Hashtags)

	_, err = svc.Hashtags(" ", "Instagram")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDashboardService_LoadsConcurrently(t *testing.T) {
	ctx := context.Background()
	rs := store.NewMemoryStore()
	tiers := StaticTier(models.TierFree)
	profiles := repository.NewProfileRepository(rs)
	require.NoError(t, profiles.Save(ctx, &models.UserProfile{UserID: "u1", Plan: models.TierFree, CreatedAt: time.Now()}))

	brands := NewBrandService(repository.NewBrandRepository(rs), tiers)
	campaigns := NewCampaignService(repository.NewCampaignRepository(rs), tiers)
	calendar := NewCalendarService(repository.NewCalendarRepository(rs), tiers)
	catalog := newCatalog(rs, models.TierFree)
	seed := NewSeedService(repository.NewBrandRepository(rs), repository.NewCampaignRepository(rs), repository.NewCalendarRepository(rs), catalog)
	_, err := seed.Seed(ctx, "u1")
	require.NoError(t, err)

	svc := NewDashboardService(NewProfileService(profiles), tiers, brands, campaigns, calendar, catalog)
	d, err := svc.Load(ctx, "u1", nil)
	require.NoError(t, err)
	require.NotNil(t, d.SelectedBrandID)
	assert.Equal(t, d.Brands[0].ID, *d.SelectedBrandID)

	d, err = svc.Load(ctx, "u1", strPtr("demo-brand-social-labs"))
	require.NoError(t, err)
	assert.Len(t, d.CampaignPlans, 2)
	assert.Len(t, d.CalendarItems, 2)
	assert.Len(t, d.Templates, 1)
	assert.Len(t, d.AffiliateTools, 2)
	assert.True(t, d.CanAddCampaignPlan)
	assert.True(t, d.CanAddCalendarItem)
	assert.False(t, d.CanAddBrand)
}
