package repository

import (
	"context"

	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/store"
)

type SubscriptionRepository interface {
	ListActiveByUserID(ctx context.Context, userID string) ([]*models.Subscription, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*models.Subscription, error)
	Save(ctx context.Context, subscription *models.Subscription) error
}

type subscriptionRepository struct {
	rs store.RecordStore
}

func NewSubscriptionRepository(rs store.RecordStore) SubscriptionRepository {
	return &subscriptionRepository{rs: rs}
}

func (r *subscriptionRepository) ListActiveByUserID(ctx context.Context, userID string) ([]*models.Subscription, error) {
	return fetchAll(ctx, r.rs, store.Private, store.Query{
		Type: RecordSubscription,
		Where: []store.Condition{
			store.Where("userId", store.Eq, userID),
			store.Where("status", store.Eq, models.SubscriptionActive),
		},
		Sort: []store.Sort{{Field: "purchasedAt", Desc: true}},
	}, subscriptionFromRecord)
}

// GetByTransactionID uses the store transaction id as the record id, so a
// replayed transaction updates the same record.
func (r *subscriptionRepository) GetByTransactionID(ctx context.Context, transactionID string) (*models.Subscription, error) {
	return fetchOne(ctx, r.rs, store.Private, RecordSubscription, transactionID, subscriptionFromRecord)
}

func (r *subscriptionRepository) Save(ctx context.Context, subscription *models.Subscription) error {
	if subscription.ID == "" {
		subscription.ID = subscription.TransactionID
	}
	if subscription.ID == "" {
		subscription.ID = newID()
	}
	_, err := r.rs.Save(ctx, store.Private, subscriptionToRecord(subscription))
	return err
}
