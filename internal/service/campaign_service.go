package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/repository"
	"github.com/maheshrc27/marketing-hub/internal/transfer"
)

const (
	MsgCampaignSaved     = "Campaign saved."
	MsgCampaignQuota     = "Upgrade to unlock more campaign plans."
	MsgCampaignNoOutline = "Generate a plan before saving."
)

type CampaignService interface {
	GenerateOutline(platform models.MarketingPlatform, budget float64, goal string) string
	Save(ctx context.Context, userID string, in *transfer.CampaignInput) (*models.CampaignPlan, error)
	List(ctx context.Context, userID string, brandID *string) ([]*models.CampaignPlan, error)
	Delete(ctx context.Context, userID, planID string) error
	CanAdd(ctx context.Context, userID string) (bool, error)
}

type campaignService struct {
	c     repository.CampaignRepository
	tiers TierResolver
	now   func() time.Time
}

func NewCampaignService(c repository.CampaignRepository, tiers TierResolver) CampaignService {
	return &campaignService{
		c:     c,
		tiers: tiers,
		now:   time.Now,
	}
}

// SprintDays is 7 for budgets under 1000 and 14 otherwise.
func SprintDays(budget float64) int {
	if budget < 1000 {
		return 7
	}
	return 14
}

func (s *campaignService) GenerateOutline(platform models.MarketingPlatform, budget float64, goal string) string {
	lines := []string{
		fmt.Sprintf("Platform: %s", platform),
		fmt.Sprintf("Goal: %s", goal),
		"Hook Ideas: Share an origin story and behind-the-scenes moments.",
		"Content Themes: Testimonials Tuesday, Data-drop Thursday, Weekend Wins.",
		"CTA Suggestions: Book a call, Grab the template, Download the checklist.",
		fmt.Sprintf("Duration: %d day sprint.", SprintDays(budget)),
		fmt.Sprintf("Budget Allocation: Paid ads %d$, creators %d$, tools %d$.",
			int(budget*0.4), int(budget*0.3), int(budget*0.3)),
	}
	return strings.Join(lines, "\n")
}

func (s *campaignService) CanAdd(ctx context.Context, userID string) (bool, error) {
	tier, err := s.tiers.CurrentTier(ctx, userID)
	if err != nil {
		return false, err
	}
	limit, capped := tier.MaxCampaignPlans()
	if !capped {
		return true, nil
	}
	plans, err := s.c.ListByUserID(ctx, userID, nil)
	if err != nil {
		return false, err
	}
	return len(plans) < limit, nil
}

func (s *campaignService) Save(ctx context.Context, userID string, in *transfer.CampaignInput) (*models.CampaignPlan, error) {
	ok, err := s.CanAdd(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		limit, _ := models.TierFree.MaxCampaignPlans()
		err := &QuotaError{Resource: "campaign_plan", Limit: limit, Message: MsgCampaignQuota}
		slog.Info(err.Error(), "user_id", userID)
		return nil, err
	}
	if in == nil || strings.TrimSpace(in.OutlineDetails) == "" {
		return nil, logErr(invalid(MsgCampaignNoOutline))
	}

	plan := &models.CampaignPlan{
		UserID:         userID,
		BrandID:        in.BrandID,
		Platform:       in.Platform,
		Budget:         in.Budget,
		Goal:           in.Goal,
		OutlineDetails: in.OutlineDetails,
		CreatedAt:      s.now().UTC(),
	}
	if plan.BrandID != nil && *plan.BrandID == "" {
		plan.BrandID = nil
	}
	if err := s.c.Save(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *campaignService) List(ctx context.Context, userID string, brandID *string) ([]*models.CampaignPlan, error) {
	plans, err := s.c.ListByUserID(ctx, userID, brandID)
	if err != nil {
		return nil, fmt.Errorf("listing campaign plans: %w", err)
	}
	return plans, nil
}

func (s *campaignService) Delete(ctx context.Context, userID, planID string) error {
	plan, err := s.c.GetByID(ctx, planID)
	if err != nil {
		return err
	}
	if plan == nil || plan.UserID != userID {
		return logErr(notFound("campaign plan"))
	}
	return s.c.Remove(ctx, planID)
}
