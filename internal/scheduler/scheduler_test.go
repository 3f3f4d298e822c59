package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/maheshrc27/marketing-hub/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPosts struct {
	service.PostService
	mu    sync.Mutex
	calls map[string]int
	block chan struct{}
}

func (c *countingPosts) ProcessScheduledPosts(ctx context.Context, userID string) (service.ProcessSummary, error) {
	c.mu.Lock()
	c.calls[userID]++
	c.mu.Unlock()
	if c.block != nil {
		<-c.block
	}
	return service.ProcessSummary{}, nil
}

func (c *countingPosts) count(userID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[userID]
}

func TestScheduler_StartRunsImmediately(t *testing.T) {
	posts := &countingPosts{calls: make(map[string]int)}
	s := New(posts, time.Hour)
	done := make(chan string, 1)
	s.OnTick = func(userID string, _ service.ProcessSummary, err error) {
		assert.NoError(t, err)
		done <- userID
	}

	require.True(t, s.Start("u1"))
	assert.False(t, s.Start("u1"))
	assert.True(t, s.Running("u1"))

	select {
	case id := <-done:
		assert.Equal(t, "u1", id)
	case <-time.After(2 * time.Second):
		t.Fatal("no immediate tick")
	}
	assert.Equal(t, 1, posts.count("u1"))

	assert.True(t, s.Stop("u1"))
	assert.False(t, s.Stop("u1"))
	assert.False(t, s.Running("u1"))
}

func TestScheduler_SkipsOverlappingTicks(t *testing.T) {
	posts := &countingPosts{calls: make(map[string]int), block: make(chan struct{})}
	s := New(posts, time.Second)

	require.True(t, s.Start("u1"))
	time.Sleep(2500 * time.Millisecond)
	assert.Equal(t, 1, posts.count("u1"))

	close(posts.block)
	<-s.StopAll().Done()
	assert.Empty(t, s.Users())
}

func TestScheduler_IndependentUsers(t *testing.T) {
	posts := &countingPosts{calls: make(map[string]int)}
	s := New(posts, time.Hour)

	require.True(t, s.Start("u1"))
	require.True(t, s.Start("u2"))
	assert.ElementsMatch(t, []string{"u1", "u2"}, s.Users())

	s.Stop("u1")
	assert.False(t, s.Running("u1"))
	assert.True(t, s.Running("u2"))
	<-s.StopAll().Done()
}

func TestScheduler_RunOnceLeavesNoLoop(t *testing.T) {
	posts := &countingPosts{calls: make(map[string]int)}
	s := New(posts, time.Hour)

	assert.True(t, s.RunOnce("u1"))
	assert.True(t, s.RunOnce("u1"))
	assert.Equal(t, 2, posts.count("u1"))
	assert.False(t, s.Running("u1"))
	assert.Empty(t, s.Users())
}

func TestScheduler_RunOnceDefersToRunningLoop(t *testing.T) {
	posts := &countingPosts{calls: make(map[string]int)}
	s := New(posts, time.Hour)
	done := make(chan struct{}, 1)
	s.OnTick = func(string, service.ProcessSummary, error) { done <- struct{}{} }

	require.True(t, s.Start("u1"))
	<-done
	assert.False(t, s.RunOnce("u1"))
	assert.Equal(t, 1, posts.count("u1"))
	<-s.StopAll().Done()
}
