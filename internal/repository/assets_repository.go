package repository

import (
	"context"

	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/store"
)

type MediaAssetRepository interface {
	Create(ctx context.Context, asset *models.MediaAsset) error
	GetByID(ctx context.Context, id string) (*models.MediaAsset, error)
	ListByUserID(ctx context.Context, userID string) ([]*models.MediaAsset, error)
	Remove(ctx context.Context, id string) error
}

type mediaAssetRepository struct {
	rs store.RecordStore
}

func NewMediaAssetRepository(rs store.RecordStore) MediaAssetRepository {
	return &mediaAssetRepository{rs: rs}
}

func (r *mediaAssetRepository) Create(ctx context.Context, asset *models.MediaAsset) error {
	if asset.ID == "" {
		asset.ID = newID()
	}
	_, err := r.rs.Save(ctx, store.Private, assetToRecord(asset))
	return err
}

func (r *mediaAssetRepository) GetByID(ctx context.Context, id string) (*models.MediaAsset, error) {
	return fetchOne(ctx, r.rs, store.Private, RecordMediaAsset, id, assetFromRecord)
}

func (r *mediaAssetRepository) ListByUserID(ctx context.Context, userID string) ([]*models.MediaAsset, error) {
	return fetchAll(ctx, r.rs, store.Private, store.Query{
		Type:  RecordMediaAsset,
		Where: userScope(userID, nil),
		Sort:  []store.Sort{{Field: "createdAt", Desc: true}},
	}, assetFromRecord)
}

func (r *mediaAssetRepository) Remove(ctx context.Context, id string) error {
	return r.rs.Delete(ctx, store.Private, RecordMediaAsset, id)
}
