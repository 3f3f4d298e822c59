package repository

import (
	"context"
	"time"

	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/store"
)

type PostRepository interface {
	GetByID(ctx context.Context, id string) (*models.ScheduledPost, error)
	Save(ctx context.Context, post *models.ScheduledPost) error
	ListByUserID(ctx context.Context, userID string, status *models.PostStatus) ([]*models.ScheduledPost, error)
	ListDue(ctx context.Context, userID string, now time.Time) ([]*models.ScheduledPost, error)
	ListDueForAll(ctx context.Context, now time.Time) ([]*models.ScheduledPost, error)
	ListExpiredLeases(ctx context.Context, now time.Time) ([]*models.ScheduledPost, error)
	SaveIfStatus(ctx context.Context, post *models.ScheduledPost, expected models.PostStatus) (bool, error)
	Remove(ctx context.Context, id string) error
}

type postRepository struct {
	rs store.RecordStore
}

func NewPostRepository(rs store.RecordStore) PostRepository {
	return &postRepository{rs: rs}
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.ScheduledPost, error) {
	return fetchOne(ctx, r.rs, store.Private, RecordScheduledPost, id, postFromRecord)
}

func (r *postRepository) Save(ctx context.Context, post *models.ScheduledPost) error {
	if post.ID == "" {
		post.ID = newID()
	}
	_, err := r.rs.Save(ctx, store.Private, postToRecord(post))
	return err
}

// ListByUserID returns the user's posts ordered by scheduled date,
// optionally narrowed to one status.
func (r *postRepository) ListByUserID(ctx context.Context, userID string, status *models.PostStatus) ([]*models.ScheduledPost, error) {
	conds := userScope(userID, nil)
	if status != nil {
		conds = append(conds, store.Where("status", store.Eq, string(*status)))
	}
	return fetchAll(ctx, r.rs, store.Private, store.Query{
		Type:  RecordScheduledPost,
		Where: conds,
		Sort:  []store.Sort{{Field: "scheduledDate"}},
	}, postFromRecord)
}

func (r *postRepository) ListDue(ctx context.Context, userID string, now time.Time) ([]*models.ScheduledPost, error) {
	return fetchAll(ctx, r.rs, store.Private, store.Query{
		Type: RecordScheduledPost,
		Where: []store.Condition{
			store.Where("userId", store.Eq, userID),
			store.Where("status", store.Eq, string(models.PostStatusScheduled)),
			store.Where("scheduledDate", store.Lte, now),
		},
		Sort: []store.Sort{{Field: "scheduledDate"}},
	}, postFromRecord)
}

func (r *postRepository) ListDueForAll(ctx context.Context, now time.Time) ([]*models.ScheduledPost, error) {
	return fetchAll(ctx, r.rs, store.Private, store.Query{
		Type: RecordScheduledPost,
		Where: []store.Condition{
			store.Where("status", store.Eq, string(models.PostStatusScheduled)),
			store.Where("scheduledDate", store.Lte, now),
		},
		Sort: []store.Sort{{Field: "scheduledDate"}},
	}, postFromRecord)
}

// ListExpiredLeases finds posts whose publisher stopped before finishing.
func (r *postRepository) ListExpiredLeases(ctx context.Context, now time.Time) ([]*models.ScheduledPost, error) {
	return fetchAll(ctx, r.rs, store.Private, store.Query{
		Type: RecordScheduledPost,
		Where: []store.Condition{
			store.Where("status", store.Eq, string(models.PostStatusPosting)),
			store.Where("leaseExpiresAt", store.Lte, now),
		},
		Sort: []store.Sort{{Field: "leaseExpiresAt"}},
	}, postFromRecord)
}

// SaveIfStatus writes the post only while the stored copy still has the
// expected status. A false result means another writer got there first.
func (r *postRepository) SaveIfStatus(ctx context.Context, post *models.ScheduledPost, expected models.PostStatus) (bool, error) {
	return r.rs.SaveIf(ctx, store.Private, postToRecord(post), []store.Condition{
		store.Where("status", store.Eq, string(expected)),
	})
}

func (r *postRepository) Remove(ctx context.Context, id string) error {
	return r.rs.Delete(ctx, store.Private, RecordScheduledPost, id)
}
