package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tool struct {
	Name string `json:"name"`
}

func TestMemoryCache_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	var got []tool
	ok, err := c.Get(ctx, "tools", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "tools", []tool{{Name: "ScheduleFlow"}}, time.Minute))
	ok, err = c.Get(ctx, "tools", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []tool{{Name: "ScheduleFlow"}}, got)

	require.NoError(t, c.Delete(ctx, "tools"))
	ok, err = c.Get(ctx, "tools", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCache_Expires(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	now = now.Add(2 * time.Minute)

	var v string
	ok, err := c.Get(ctx, "k", &v)
	require.NoError(t, err)
	assert.False(t, ok)
}
