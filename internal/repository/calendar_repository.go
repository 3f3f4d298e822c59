package repository

import (
	"context"
	"time"

	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/store"
)

type CalendarRepository interface {
	ListByUserID(ctx context.Context, userID string, brandID *string) ([]*models.ContentCalendarItem, error)
	ListInRange(ctx context.Context, userID string, from, to time.Time) ([]*models.ContentCalendarItem, error)
	GetByID(ctx context.Context, id string) (*models.ContentCalendarItem, error)
	Save(ctx context.Context, item *models.ContentCalendarItem) error
	Remove(ctx context.Context, id string) error
}

type calendarRepository struct {
	rs store.RecordStore
}

func NewCalendarRepository(rs store.RecordStore) CalendarRepository {
	return &calendarRepository{rs: rs}
}

func (r *calendarRepository) ListByUserID(ctx context.Context, userID string, brandID *string) ([]*models.ContentCalendarItem, error) {
	return fetchAll(ctx, r.rs, store.Private, store.Query{
		Type:  RecordCalendarItem,
		Where: userScope(userID, brandID),
		Sort:  []store.Sort{{Field: "date"}},
	}, calendarItemFromRecord)
}

// ListInRange returns items dated within [from, to], earliest first.
func (r *calendarRepository) ListInRange(ctx context.Context, userID string, from, to time.Time) ([]*models.ContentCalendarItem, error) {
	return fetchAll(ctx, r.rs, store.Private, store.Query{
		Type: RecordCalendarItem,
		Where: []store.Condition{
			store.Where("userId", store.Eq, userID),
			store.Where("date", store.Gte, from),
			store.Where("date", store.Lte, to),
		},
		Sort: []store.Sort{{Field: "date"}},
	}, calendarItemFromRecord)
}

func (r *calendarRepository) GetByID(ctx context.Context, id string) (*models.ContentCalendarItem, error) {
	return fetchOne(ctx, r.rs, store.Private, RecordCalendarItem, id, calendarItemFromRecord)
}

func (r *calendarRepository) Save(ctx context.Context, item *models.ContentCalendarItem) error {
	if item.ID == "" {
		item.ID = newID()
	}
	_, err := r.rs.Save(ctx, store.Private, calendarItemToRecord(item))
	return err
}

func (r *calendarRepository) Remove(ctx context.Context, id string) error {
	return r.rs.Delete(ctx, store.Private, RecordCalendarItem, id)
}
