package notify

import (
	"context"
	"testing"

	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostReminder(t *testing.T) {
	r := PostReminder(&models.ScheduledPost{ID: "p1", UserID: "u1", Platform: "Instagram"})

	assert.Equal(t, "Time to Review Your Post", r.Title)
	assert.Equal(t, "Your Instagram post is scheduled for now. Review and share it!", r.Body)
	assert.Equal(t, CategoryPostReminder, r.Category)
	assert.Equal(t, []string{ActionReviewPost}, r.Actions)
	assert.Equal(t, DeepLink{Type: "scheduledPost", ID: "p1"}, r.DeepLink)
	assert.Equal(t, "post-p1", ID("p1"))

	require.NoError(t, NewLogDeliverer().Deliver(context.Background(), r))
}

func TestParseDeepLink(t *testing.T) {
	id, ok := ParseDeepLink(DeepLink{Type: "scheduledPost", ID: "p1"})
	assert.True(t, ok)
	assert.Equal(t, "p1", id)

	_, ok = ParseDeepLink(DeepLink{Type: "campaign", ID: "c1"})
	assert.False(t, ok)
	_, ok = ParseDeepLink(DeepLink{Type: "scheduledPost"})
	assert.False(t, ok)
}
