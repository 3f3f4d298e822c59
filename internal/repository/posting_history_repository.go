package repository

import (
	"context"

	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/store"
)

type PostingHistoryRepository interface {
	Create(ctx context.Context, history *models.PostingHistory) error
	ListByPostID(ctx context.Context, postID string) ([]*models.PostingHistory, error)
}

type postingHistoryRepository struct {
	rs store.RecordStore
}

func NewPostingHistoryRepository(rs store.RecordStore) PostingHistoryRepository {
	return &postingHistoryRepository{rs: rs}
}

func (r *postingHistoryRepository) Create(ctx context.Context, history *models.PostingHistory) error {
	if history.ID == "" {
		history.ID = newID()
	}
	_, err := r.rs.Save(ctx, store.Private, historyToRecord(history))
	return err
}

func (r *postingHistoryRepository) ListByPostID(ctx context.Context, postID string) ([]*models.PostingHistory, error) {
	return fetchAll(ctx, r.rs, store.Private, store.Query{
		Type:  RecordPostingHistory,
		Where: []store.Condition{store.Where("postId", store.Eq, postID)},
		Sort:  []store.Sort{{Field: "createdAt"}},
	}, historyFromRecord)
}
