package repository

import (
	"context"

	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/store"
)

type TemplateRepository interface {
	List(ctx context.Context) ([]*models.TemplateItem, error)
	Save(ctx context.Context, template *models.TemplateItem) error
	Remove(ctx context.Context, id string) error
}

type templateRepository struct {
	rs store.RecordStore
}

func NewTemplateRepository(rs store.RecordStore) TemplateRepository {
	return &templateRepository{rs: rs}
}

func (r *templateRepository) List(ctx context.Context) ([]*models.TemplateItem, error) {
	return fetchAll(ctx, r.rs, store.Public, store.Query{
		Type: RecordTemplate,
		Sort: []store.Sort{{Field: "name"}},
	}, templateFromRecord)
}

func (r *templateRepository) Save(ctx context.Context, template *models.TemplateItem) error {
	if template.ID == "" {
		template.ID = newID()
	}
	_, err := r.rs.Save(ctx, store.Public, templateToRecord(template))
	return err
}

func (r *templateRepository) Remove(ctx context.Context, id string) error {
	return r.rs.Delete(ctx, store.Public, RecordTemplate, id)
}

type AffiliateToolRepository interface {
	List(ctx context.Context) ([]*models.AffiliateTool, error)
	GetByID(ctx context.Context, id string) (*models.AffiliateTool, error)
	Save(ctx context.Context, tool *models.AffiliateTool) error
	Remove(ctx context.Context, id string) error
}

type affiliateToolRepository struct {
	rs store.RecordStore
}

func NewAffiliateToolRepository(rs store.RecordStore) AffiliateToolRepository {
	return &affiliateToolRepository{rs: rs}
}

func (r *affiliateToolRepository) List(ctx context.Context) ([]*models.AffiliateTool, error) {
	return fetchAll(ctx, r.rs, store.Public, store.Query{
		Type: RecordAffiliateTool,
		Sort: []store.Sort{{Field: "name"}},
	}, toolFromRecord)
}

func (r *affiliateToolRepository) GetByID(ctx context.Context, id string) (*models.AffiliateTool, error) {
	return fetchOne(ctx, r.rs, store.Public, RecordAffiliateTool, id, toolFromRecord)
}

func (r *affiliateToolRepository) Save(ctx context.Context, tool *models.AffiliateTool) error {
	if tool.ID == "" {
		tool.ID = newID()
	}
	_, err := r.rs.Save(ctx, store.Public, toolToRecord(tool))
	return err
}

func (r *affiliateToolRepository) Remove(ctx context.Context, id string) error {
	return r.rs.Delete(ctx, store.Public, RecordAffiliateTool, id)
}

type AffiliateClickRepository interface {
	Create(ctx context.Context, click *models.AffiliateClick) error
	ListByUserID(ctx context.Context, userID string) ([]*models.AffiliateClick, error)
}

type affiliateClickRepository struct {
	rs store.RecordStore
}

func NewAffiliateClickRepository(rs store.RecordStore) AffiliateClickRepository {
	return &affiliateClickRepository{rs: rs}
}

func (r *affiliateClickRepository) Create(ctx context.Context, click *models.AffiliateClick) error {
	if click.ID == "" {
		click.ID = newID()
	}
	_, err := r.rs.Save(ctx, store.Private, clickToRecord(click))
	return err
}

func (r *affiliateClickRepository) ListByUserID(ctx context.Context, userID string) ([]*models.AffiliateClick, error) {
	return fetchAll(ctx, r.rs, store.Private, store.Query{
		Type:  RecordAffiliateClick,
		Where: userScope(userID, nil),
		Sort:  []store.Sort{{Field: "timestamp", Desc: true}},
	}, clickFromRecord)
}
