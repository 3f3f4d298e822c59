package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postRecord(id, userID, status string, at time.Time) Record {
	rec := NewRecord("ScheduledPost", id)
	rec.Set("userId", userID)
	rec.Set("status", status)
	rec.Set("scheduledDate", at)
	return rec
}

func TestMemoryStore_SaveThenFetchOneRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	at := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	rec := postRecord("p1", "u1", "scheduled", at)
	rec.Set("mediaURLs", []string{"https://cdn/a.png"})
	rec.Set("budget", 250)

	saved, err := s.Save(ctx, Private, rec)
	require.NoError(t, err)
	assert.Equal(t, rec.Fields, saved.Fields)

	got, err := s.FetchOne(ctx, Private, "ScheduledPost", "p1")
	require.NoError(t, err)
	require.NotNil(t, got)

	when, ok := got.Time("scheduledDate")
	require.True(t, ok)
	assert.True(t, when.Equal(at))
	assert.Equal(t, []string{"https://cdn/a.png"}, got.Strings("mediaURLs"))
	budget, ok := got.Float("budget")
	require.True(t, ok)
	assert.Equal(t, 250.0, budget)
}

func TestMemoryStore_FetchOneMissingReturnsNil(t *testing.T) {
	s := NewMemoryStore()
	got, err := s.FetchOne(context.Background(), Private, "Brand", "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_PartitionsAreSeparate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Save(ctx, Public, NewRecord("Template", "t1"))
	require.NoError(t, err)

	got, err := s.FetchOne(ctx, Private, "Template", "t1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_FetchFiltersSortsAndLimits(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, rec := range []Record{
		postRecord("a", "u1", "scheduled", base.Add(3*time.Hour)),
		postRecord("b", "u1", "scheduled", base.Add(1*time.Hour)),
		postRecord("c", "u1", "posted", base.Add(2*time.Hour)),
		postRecord("d", "u2", "scheduled", base),
		postRecord("e", "u1", "scheduled", base.Add(48*time.Hour)),
	} {
		_, err := s.Save(ctx, Private, rec)
		require.NoError(t, err)
	}

	got, err := s.Fetch(ctx, Private, Query{
		Type: "ScheduledPost",
		Where: []Condition{
			Where("userId", Eq, "u1"),
			Where("status", Eq, "scheduled"),
			Where("scheduledDate", Lte, base.Add(24*time.Hour)),
		},
		Sort: []Sort{{Field: "scheduledDate"}},
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)

	got, err = s.Fetch(ctx, Private, Query{
		Type:  "ScheduledPost",
		Sort:  []Sort{{Field: "scheduledDate", Desc: true}},
		Limit: 1,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "e", got[0].ID)
}

func TestMemoryStore_SaveIfOnlyWritesWhenConditionsHold(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	now := time.Now()

	_, err := s.Save(ctx, Private, postRecord("p1", "u1", "scheduled", now))
	require.NoError(t, err)

	claim := postRecord("p1", "u1", "posting", now)
	ok, err := s.SaveIf(ctx, Private, claim, []Condition{Where("status", Eq, "scheduled")})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.SaveIf(ctx, Private, claim, []Condition{Where("status", Eq, "scheduled")})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.SaveIf(ctx, Private, postRecord("missing", "u1", "posting", now), nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_DeleteHasNoCascade(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	brand := NewRecord("Brand", "b1")
	brand.Set("userId", "u1")
	campaign := NewRecord("CampaignPlan", "c1")
	campaign.Set("userId", "u1")
	campaign.Set("brandId", "b1")

	_, err := s.Save(ctx, Private, brand)
	require.NoError(t, err)
	_, err = s.Save(ctx, Private, campaign)
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, Private, "Brand", "b1"))

	got, err := s.FetchOne(ctx, Private, "CampaignPlan", "c1")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestMemoryStore_CancelledContextIsOperationError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMemoryStore().Fetch(ctx, Private, Query{Type: "Brand"})
	var opErr *OperationError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "fetch", opErr.Op)
	assert.ErrorIs(t, err, context.Canceled)
}
