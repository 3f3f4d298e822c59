package repository

import (
	"context"

	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/store"
)

type SocialAccountRepository interface {
	GetByID(ctx context.Context, id string) (*models.ConnectedSocialAccount, error)
	ListByUserID(ctx context.Context, userID string) ([]*models.ConnectedSocialAccount, error)
	ListActive(ctx context.Context) ([]*models.ConnectedSocialAccount, error)
	Save(ctx context.Context, account *models.ConnectedSocialAccount) error
	Remove(ctx context.Context, id string) error
}

type socialAccountRepository struct {
	rs store.RecordStore
}

func NewSocialAccountRepository(rs store.RecordStore) SocialAccountRepository {
	return &socialAccountRepository{rs: rs}
}

func (r *socialAccountRepository) GetByID(ctx context.Context, id string) (*models.ConnectedSocialAccount, error) {
	return fetchOne(ctx, r.rs, store.Private, RecordSocialAccount, id, accountFromRecord)
}

// ListByUserID returns the most recently connected accounts first.
func (r *socialAccountRepository) ListByUserID(ctx context.Context, userID string) ([]*models.ConnectedSocialAccount, error) {
	return fetchAll(ctx, r.rs, store.Private, store.Query{
		Type:  RecordSocialAccount,
		Where: userScope(userID, nil),
		Sort:  []store.Sort{{Field: "connectedAt", Desc: true}},
	}, accountFromRecord)
}

func (r *socialAccountRepository) ListActive(ctx context.Context) ([]*models.ConnectedSocialAccount, error) {
	return fetchAll(ctx, r.rs, store.Private, store.Query{
		Type:  RecordSocialAccount,
		Where: []store.Condition{store.Where("isActive", store.Eq, true)},
		Sort:  []store.Sort{{Field: "connectedAt"}},
	}, accountFromRecord)
}

func (r *socialAccountRepository) Save(ctx context.Context, account *models.ConnectedSocialAccount) error {
	if account.ID == "" {
		account.ID = newID()
	}
	_, err := r.rs.Save(ctx, store.Private, accountToRecord(account))
	return err
}

func (r *socialAccountRepository) Remove(ctx context.Context, id string) error {
	return r.rs.Delete(ctx, store.Private, RecordSocialAccount, id)
}
