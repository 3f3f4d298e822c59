package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/maheshrc27/marketing-hub/internal/store"
)

func newID() string {
	return uuid.NewString()
}

func fetchAll[T any](ctx context.Context, rs store.RecordStore, p store.Partition, q store.Query, decode func(store.Record) (*T, error)) ([]*T, error) {
	records, err := rs.Fetch(ctx, p, q)
	if err != nil {
		return nil, err
	}

	items := make([]*T, 0, len(records))
	for _, rec := range records {
		item, err := decode(rec)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func fetchOne[T any](ctx context.Context, rs store.RecordStore, p store.Partition, recordType, id string, decode func(store.Record) (*T, error)) (*T, error) {
	rec, err := rs.FetchOne(ctx, p, recordType, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}

	item, err := decode(*rec)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return item, nil
}

func userScope(userID string, brandID *string) []store.Condition {
	conds := []store.Condition{store.Where("userId", store.Eq, userID)}
	if brandID != nil && *brandID != "" {
		conds = append(conds, store.Where("brandId", store.Eq, *brandID))
	}
	return conds
}
