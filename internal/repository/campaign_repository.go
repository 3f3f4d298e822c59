package repository

import (
	"context"

	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/store"
)

type CampaignRepository interface {
	ListByUserID(ctx context.Context, userID string, brandID *string) ([]*models.CampaignPlan, error)
	GetByID(ctx context.Context, id string) (*models.CampaignPlan, error)
	Save(ctx context.Context, plan *models.CampaignPlan) error
	Remove(ctx context.Context, id string) error
}

type campaignRepository struct {
	rs store.RecordStore
}

func NewCampaignRepository(rs store.RecordStore) CampaignRepository {
	return &campaignRepository{rs: rs}
}

// ListByUserID returns newest plans first.
func (r *campaignRepository) ListByUserID(ctx context.Context, userID string, brandID *string) ([]*models.CampaignPlan, error) {
	return fetchAll(ctx, r.rs, store.Private, store.Query{
		Type:  RecordCampaignPlan,
		Where: userScope(userID, brandID),
		Sort:  []store.Sort{{Field: "createdAt", Desc: true}},
	}, campaignFromRecord)
}

func (r *campaignRepository) GetByID(ctx context.Context, id string) (*models.CampaignPlan, error) {
	return fetchOne(ctx, r.rs, store.Private, RecordCampaignPlan, id, campaignFromRecord)
}

func (r *campaignRepository) Save(ctx context.Context, plan *models.CampaignPlan) error {
	if plan.ID == "" {
		plan.ID = newID()
	}
	_, err := r.rs.Save(ctx, store.Private, campaignToRecord(plan))
	return err
}

func (r *campaignRepository) Remove(ctx context.Context, id string) error {
	return r.rs.Delete(ctx, store.Private, RecordCampaignPlan, id)
}
