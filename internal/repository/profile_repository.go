package repository

import (
	"context"

	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/store"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.UserProfile, error)
	Save(ctx context.Context, profile *models.UserProfile) error
}

type profileRepository struct {
	rs store.RecordStore
}

func NewProfileRepository(rs store.RecordStore) ProfileRepository {
	return &profileRepository{rs: rs}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*models.UserProfile, error) {
	return fetchOne(ctx, r.rs, store.Private, RecordUserProfile, userID, profileFromRecord)
}

func (r *profileRepository) Save(ctx context.Context, profile *models.UserProfile) error {
	_, err := r.rs.Save(ctx, store.Private, profileToRecord(profile))
	return err
}
