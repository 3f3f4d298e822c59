package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestPostRepository_SaveThenGetReturnsEqualPost(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(store.NewMemoryStore())

	posted := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)
	post := &models.ScheduledPost{
		UserID:         "u1",
		BrandID:        strPtr("b1"),
		CalendarItemID: strPtr("c1"),
		Platform:       string(models.Instagram),
		AccountID:      strPtr("acc1"),
		Content:        "Spring drop is live",
		ScheduledDate:  time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC),
		Status:         models.PostStatusPosted,
		MediaURLs:      []string{"https://cdn.example.com/a.jpg"},
		Hashtags:       strPtr("#spring"),
		LinkURL:        strPtr("https://shop.example.com"),
		PostedAt:       &posted,
		CreatedAt:      time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(ctx, post))
	require.NotEmpty(t, post.ID)

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post, got)
}

func TestBrandRepository_SaveThenGetReturnsEqualBrand(t *testing.T) {
	ctx := context.Background()
	repo := NewBrandRepository(store.NewMemoryStore())

	brand := &models.Brand{UserID: "u1", Name: "Social Labs", Industry: "Marketing Agency", ColorHex: "#7F52FF"}
	require.NoError(t, repo.Save(ctx, brand))

	got, err := repo.GetByID(ctx, brand.ID)
	require.NoError(t, err)
	assert.Equal(t, brand, got)
}

func TestProfileRepository_UnknownPlanFallsBackToFree(t *testing.T) {
	ctx := context.Background()
	rs := store.NewMemoryStore()

	rec := store.NewRecord(RecordUserProfile, "u1")
	rec.Set("userId", "u1")
	rec.Set("createdAt", time.Now())
	rec.Set("plan", "platinum")
	_, err := rs.Save(ctx, store.Private, rec)
	require.NoError(t, err)

	got, err := NewProfileRepository(rs).GetByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.TierFree, got.Plan)
}

func TestCalendarRepository_MissingFieldIsDecodeError(t *testing.T) {
	ctx := context.Background()
	rs := store.NewMemoryStore()

	rec := store.NewRecord(RecordCalendarItem, "c1")
	rec.Set("userId", "u1")
	rec.Set("date", time.Now())
	rec.Set("platform", "Instagram")
	rec.Set("notes", "")
	_, err := rs.Save(ctx, store.Private, rec)
	require.NoError(t, err)

	_, err = NewCalendarRepository(rs).ListByUserID(ctx, "u1", nil)
	var decErr *store.DecodeError
	require.True(t, errors.As(err, &decErr))
	assert.Equal(t, "title", decErr.Field)
}

func TestCampaignRepository_ListsNewestFirstAndFiltersByBrand(t *testing.T) {
	ctx := context.Background()
	repo := NewCampaignRepository(store.NewMemoryStore())
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, brand := range []string{"b1", "b2", "b1"} {
		require.NoError(t, repo.Save(ctx, &models.CampaignPlan{
			UserID: "u1", BrandID: strPtr(brand), Platform: "Instagram", Goal: "Brand Awareness",
			OutlineDetails: "outline", CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	all, err := repo.ListByUserID(ctx, "u1", nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].CreatedAt.After(all[1].CreatedAt))

	b1, err := repo.ListByUserID(ctx, "u1", strPtr("b1"))
	require.NoError(t, err)
	assert.Len(t, b1, 2)
}

func TestTemplateRepository_ReadsNumericFlags(t *testing.T) {
	ctx := context.Background()
	rs := store.NewMemoryStore()

	rec := store.NewRecord(RecordTemplate, "t1")
	rec.Set("name", "Brief")
	rec.Set("description", "One page brief")
	rec.Set("isPremium", 1)
	rec.Set("isAgencyOnly", 0)
	_, err := rs.Save(ctx, store.Public, rec)
	require.NoError(t, err)

	items, err := NewTemplateRepository(rs).List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].IsPremium)
	assert.False(t, items[0].IsAgencyOnly)
}

func TestPostRepository_DueAndLeaseQueries(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(store.NewMemoryStore())
	now := time.Now().UTC()
	expired := now.Add(-time.Minute)

	due := &models.ScheduledPost{UserID: "u1", Platform: "Facebook", Content: "a", ScheduledDate: now.Add(-time.Hour), Status: models.PostStatusScheduled, CreatedAt: now}
	future := &models.ScheduledPost{UserID: "u1", Platform: "Facebook", Content: "b", ScheduledDate: now.Add(time.Hour), Status: models.PostStatusScheduled, CreatedAt: now}
	stuck := &models.ScheduledPost{UserID: "u2", Platform: "Facebook", Content: "c", ScheduledDate: now.Add(-time.Hour), Status: models.PostStatusPosting, LeaseExpiresAt: &expired, CreatedAt: now}
	for _, p := range []*models.ScheduledPost{due, future, stuck} {
		require.NoError(t, repo.Save(ctx, p))
	}

	got, err := repo.ListDue(ctx, "u1", now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, due.ID, got[0].ID)

	got, err = repo.ListExpiredLeases(ctx, now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, stuck.ID, got[0].ID)

	due.Status = models.PostStatusPosting
	ok, err := repo.SaveIfStatus(ctx, due, models.PostStatusScheduled)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.SaveIfStatus(ctx, due, models.PostStatusScheduled)
	require.NoError(t, err)
	assert.False(t, ok)
}
