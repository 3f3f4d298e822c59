package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/maheshrc27/marketing-hub/internal/cache"
	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/repository"
	"github.com/maheshrc27/marketing-hub/internal/transfer"
)

const (
	templatesCacheKey = "catalog:templates"
	toolsCacheKey     = "catalog:affiliate_tools"
)

type CatalogService interface {
	Templates(ctx context.Context, userID, search string) ([]*transfer.TemplateView, error)
	AllTemplates(ctx context.Context) ([]*models.TemplateItem, error)
	SaveTemplate(ctx context.Context, template *models.TemplateItem) error
	DeleteTemplate(ctx context.Context, id string) error
	AffiliateTools(ctx context.Context, userID string) ([]*transfer.AffiliateToolView, error)
	AllAffiliateTools(ctx context.Context) ([]*models.AffiliateTool, error)
	SaveAffiliateTool(ctx context.Context, tool *models.AffiliateTool) error
	DeleteAffiliateTool(ctx context.Context, id string) error
	LogAffiliateClick(ctx context.Context, userID, toolID string) (*models.AffiliateTool, error)
}

type catalogService struct {
	t     repository.TemplateRepository
	a     repository.AffiliateToolRepository
	ac    repository.AffiliateClickRepository
	tiers TierResolver
	cache cache.Cache
	ttl   time.Duration
	now   func() time.Time
}

func NewCatalogService(
	t repository.TemplateRepository,
	a repository.AffiliateToolRepository,
	ac repository.AffiliateClickRepository,
	tiers TierResolver,
	c cache.Cache,
	ttl time.Duration) CatalogService {
	return &catalogService{
		t:     t,
		a:     a,
		ac:    ac,
		tiers: tiers,
		cache: c,
		ttl:   ttl,
		now:   time.Now,
	}
}

// AvailableTemplates keeps what the tier may use: free sees neither premium
// nor agency-only items, pro sees everything but agency-only.
func AvailableTemplates(items []*models.TemplateItem, tier models.SubscriptionTier) []*models.TemplateItem {
	out := make([]*models.TemplateItem, 0, len(items))
	for _, item := range items {
		if IsLocked(item, tier) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func IsLocked(item *models.TemplateItem, tier models.SubscriptionTier) bool {
	if item.IsAgencyOnly {
		return !tier.CanAccessAgencyOnlyTemplates()
	}
	if item.IsPremium {
		return tier == models.TierFree
	}
	return false
}

// BadgeText labels pro-recommended tools; nil when the tool has no badge.
func BadgeText(tool *models.AffiliateTool, tier models.SubscriptionTier) *string {
	if !tool.IsProRecommended {
		return nil
	}
	badge := "Recommended"
	if tier == models.TierFree {
		badge = "Pro Recommended"
	}
	return &badge
}

func (s *catalogService) AllTemplates(ctx context.Context) ([]*models.TemplateItem, error) {
	var items []*models.TemplateItem
	if ok, err := s.cache.Get(ctx, templatesCacheKey, &items); err == nil && ok {
		return items, nil
	}

	items, err := s.t.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, templatesCacheKey, items, s.ttl); err != nil {
		slog.Info("caching templates failed", "error", err)
	}
	return items, nil
}

func (s *catalogService) Templates(ctx context.Context, userID, search string) ([]*transfer.TemplateView, error) {
	tier, err := s.tiers.CurrentTier(ctx, userID)
	if err != nil {
		return nil, err
	}
	items, err := s.AllTemplates(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))
	views := []*transfer.TemplateView{}
	for _, item := range AvailableTemplates(items, tier) {
		if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		views = append(views, &transfer.TemplateView{
			ID:            item.ID,
			Name:          item.Name,
			Description:   item.Description,
			IsPremium:     item.IsPremium,
			IsAgencyOnly:  item.IsAgencyOnly,
			AssetFileName: item.AssetFileName,
			Locked:        IsLocked(item, tier),
		})
	}
	return views, nil
}

func (s *catalogService) SaveTemplate(ctx context.Context, template *models.TemplateItem) error {
	if template == nil || strings.TrimSpace(template.Name) == "" {
		return logErr(invalid("Provide a template name."))
	}
	if err := s.t.Save(ctx, template); err != nil {
		return err
	}
	return s.cache.Delete(ctx, templatesCacheKey)
}

func (s *catalogService) DeleteTemplate(ctx context.Context, id string) error {
	if err := s.t.Remove(ctx, id); err != nil {
		return err
	}
	return s.cache.Delete(ctx, templatesCacheKey)
}

func (s *catalogService) AllAffiliateTools(ctx context.Context) ([]*models.AffiliateTool, error) {
	var tools []*models.AffiliateTool
	if ok, err := s.cache.Get(ctx, toolsCacheKey, &tools); err == nil && ok {
		return tools, nil
	}

	tools, err := s.a.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, toolsCacheKey, tools, s.ttl); err != nil {
		slog.Info("caching affiliate tools failed", "error", err)
	}
	return tools, nil
}

func (s *catalogService) AffiliateTools(ctx context.Context, userID string) ([]*transfer.AffiliateToolView, error) {
	tier, err := s.tiers.CurrentTier(ctx, userID)
	if err != nil {
		return nil, err
	}
	tools, err := s.AllAffiliateTools(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*transfer.AffiliateToolView, 0, len(tools))
	for _, tool := range tools {
		views = append(views, &transfer.AffiliateToolView{
			ID:               tool.ID,
			Name:             tool.Name,
			ShortDescription: tool.ShortDescription,
			URL:              tool.URL,
			IsProRecommended: tool.IsProRecommended,
			Badge:            BadgeText(tool, tier),
		})
	}
	return views, nil
}

func (s *catalogService) SaveAffiliateTool(ctx context.Context, tool *models.AffiliateTool) error {
	if tool == nil || strings.TrimSpace(tool.Name) == "" || strings.TrimSpace(tool.URL) == "" {
		return logErr(invalid("Provide a tool name and URL."))
	}
	if err := s.a.Save(ctx, tool); err != nil {
		return err
	}
	return s.cache.Delete(ctx, toolsCacheKey)
}

func (s *catalogService) DeleteAffiliateTool(ctx context.Context, id string) error {
	if err := s.a.Remove(ctx, id); err != nil {
		return err
	}
	return s.cache.Delete(ctx, toolsCacheKey)
}

// LogAffiliateClick records the click and returns the tool so the caller can
// redirect to its URL.
func (s *catalogService) LogAffiliateClick(ctx context.Context, userID, toolID string) (*models.AffiliateTool, error) {
	tool, err := s.a.GetByID(ctx, toolID)
	if err != nil {
		return nil, err
	}
	if tool == nil {
		return nil, logErr(notFound("affiliate tool"))
	}

	click := &models.AffiliateClick{
		UserID:    userID,
		ToolID:    toolID,
		Timestamp: s.now().UTC(),
	}
	if err := s.ac.Create(ctx, click); err != nil {
		return nil, err
	}
	return tool, nil
}
