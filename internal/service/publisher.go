package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/pkg/utils"
	"golang.org/x/time/rate"
)

var (
	ErrCredentials = errors.New("unable to read account credentials")
	// ErrNotAttempted marks a publish that stopped before reaching the
	// platform. The post can be retried as is.
	ErrNotAttempted = errors.New("publish not attempted")
)

// Publisher sends a post to a social platform and returns the platform's id
// for the created post.
type Publisher interface {
	Publish(ctx context.Context, platform models.SocialPlatform, account *models.ConnectedSocialAccount, post *models.ScheduledPost) (string, error)
}

var postIDPrefixes = map[models.SocialPlatform]string{
	models.Instagram: "ig",
	models.Facebook:  "fb",
	models.LinkedIn:  "li",
	models.Twitter:   "tw",
	models.TikTok:    "tt",
	models.Pinterest: "pin",
}

type mockPublisher struct {
	key     []byte
	delay   time.Duration
	limiter *rate.Limiter
}

// NewMockPublisher simulates platform APIs: it waits for the limiter, sleeps
// for delay and returns a mock post id.
func NewMockPublisher(key []byte, delay time.Duration, limiter *rate.Limiter) Publisher {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return &mockPublisher{
		key:     key,
		delay:   delay,
		limiter: limiter,
	}
}

func (p *mockPublisher) Publish(ctx context.Context, platform models.SocialPlatform, account *models.ConnectedSocialAccount, post *models.ScheduledPost) (string, error) {
	prefix, ok := postIDPrefixes[platform]
	if !ok {
		return "", fmt.Errorf("unsupported platform %q", platform)
	}

	if account.AccessToken != nil {
		if _, err := utils.Decrypt(*account.AccessToken, p.key); err != nil {
			slog.Info("decrypting access token failed", "account_id", account.ID)
			return "", ErrCredentials
		}
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotAttempted, err)
	}

	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %w", ErrNotAttempted, ctx.Err())
		case <-timer.C:
		}
	}

	return fmt.Sprintf("%s_mock_post_id_%s", prefix, strings.ToUpper(uuid.NewString())), nil
}
