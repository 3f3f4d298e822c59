package share

import (
	"net/url"
	"testing"

	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_TwitterWithLink(t *testing.T) {
	got, ok := URL(models.Twitter, "Big sale & more", "https://shop.example.com/?a=1")
	require.True(t, ok)

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "twitter.com", u.Host)
	assert.Equal(t, "/intent/tweet", u.Path)
	assert.Equal(t, "Big sale & more", u.Query().Get("text"))
	assert.Equal(t, "https://shop.example.com/?a=1", u.Query().Get("url"))
}

func TestURL_OmitsEmptyLink(t *testing.T) {
	got, ok := URL(models.Facebook, "hello world", "")
	require.True(t, ok)
	assert.Equal(t, "https://www.facebook.com/sharer/sharer.php?quote=hello+world", got)
}

func TestURL_LinkedInAndPinterest(t *testing.T) {
	got, ok := URL(models.LinkedIn, "launch", "https://x.io")
	require.True(t, ok)
	assert.Equal(t, "https://www.linkedin.com/sharing/share-offsite/?summary=launch&url=https%3A%2F%2Fx.io", got)

	got, ok = URL(models.Pinterest, "pin me", "")
	require.True(t, ok)
	assert.Equal(t, "https://www.pinterest.com/pin/create/button/?description=pin+me", got)
}

func TestURL_NoIntentForInstagramAndTikTok(t *testing.T) {
	for _, p := range []models.SocialPlatform{models.Instagram, models.TikTok} {
		got, ok := URL(p, "caption", "")
		assert.False(t, ok)
		assert.Empty(t, got)
	}
}

func TestForPost_AppendsHashtags(t *testing.T) {
	tags := "#spring #sale"
	post := &models.ScheduledPost{Platform: string(models.Twitter), Content: "New drop", Hashtags: &tags}

	got, ok := ForPost(post)
	require.True(t, ok)
	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "New drop\n\n#spring #sale", u.Query().Get("text"))
}
