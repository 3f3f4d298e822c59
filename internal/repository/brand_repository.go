package repository

import (
	"context"

	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/store"
)

type BrandRepository interface {
	ListByUserID(ctx context.Context, userID string) ([]*models.Brand, error)
	GetByID(ctx context.Context, id string) (*models.Brand, error)
	Save(ctx context.Context, brand *models.Brand) error
	Remove(ctx context.Context, id string) error
}

type brandRepository struct {
	rs store.RecordStore
}

func NewBrandRepository(rs store.RecordStore) BrandRepository {
	return &brandRepository{rs: rs}
}

func (r *brandRepository) ListByUserID(ctx context.Context, userID string) ([]*models.Brand, error) {
	return fetchAll(ctx, r.rs, store.Private, store.Query{
		Type:  RecordBrand,
		Where: userScope(userID, nil),
		Sort:  []store.Sort{{Field: "name"}},
	}, brandFromRecord)
}

func (r *brandRepository) GetByID(ctx context.Context, id string) (*models.Brand, error) {
	return fetchOne(ctx, r.rs, store.Private, RecordBrand, id, brandFromRecord)
}

func (r *brandRepository) Save(ctx context.Context, brand *models.Brand) error {
	if brand.ID == "" {
		brand.ID = newID()
	}
	_, err := r.rs.Save(ctx, store.Private, brandToRecord(brand))
	return err
}

func (r *brandRepository) Remove(ctx context.Context, id string) error {
	return r.rs.Delete(ctx, store.Private, RecordBrand, id)
}
