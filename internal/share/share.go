package share

import (
	"log/slog"

	"github.com/google/go-querystring/query"
	"github.com/maheshrc27/marketing-hub/internal/models"
)

type twitterIntent struct {
	Text string `url:"text"`
	URL  string `url:"url,omitempty"`
}

type facebookIntent struct {
	U     string `url:"u,omitempty"`
	Quote string `url:"quote"`
}

type linkedInIntent struct {
	URL     string `url:"url,omitempty"`
	Summary string `url:"summary"`
}

type pinterestIntent struct {
	URL         string `url:"url,omitempty"`
	Description string `url:"description"`
}

// URL returns a web share intent for the platform. Instagram and TikTok have
// no web intent, so ok is false and the caller falls back to a generic share.
func URL(platform models.SocialPlatform, content, link string) (string, bool) {
	var base string
	var params any
	switch platform {
	case models.Twitter:
		base, params = "https://twitter.com/intent/tweet", twitterIntent{Text: content, URL: link}
	case models.Facebook:
		base, params = "https://www.facebook.com/sharer/sharer.php", facebookIntent{U: link, Quote: content}
	case models.LinkedIn:
		base, params = "https://www.linkedin.com/sharing/share-offsite/", linkedInIntent{URL: link, Summary: content}
	case models.Pinterest:
		base, params = "https://www.pinterest.com/pin/create/button/", pinterestIntent{URL: link, Description: content}
	default:
		return "", false
	}

	v, err := query.Values(params)
	if err != nil {
		slog.Info(err.Error())
		return "", false
	}
	return base + "?" + v.Encode(), true
}

// Content joins post text with its hashtags the way it is shared.
func Content(post *models.ScheduledPost) string {
	text := post.Content
	if post.Hashtags != nil && *post.Hashtags != "" {
		text += "\n\n" + *post.Hashtags
	}
	return text
}

// ForPost builds the share target for a scheduled post.
func ForPost(post *models.ScheduledPost) (string, bool) {
	platform, ok := models.ParseSocialPlatform(post.Platform)
	if !ok {
		return "", false
	}
	link := ""
	if post.LinkURL != nil {
		link = *post.LinkURL
	}
	return URL(platform, Content(post), link)
}
