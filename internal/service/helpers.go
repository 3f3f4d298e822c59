package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/maheshrc27/marketing-hub/internal/models"
)

// TierResolver reports the subscription tier currently in effect for a user.
type TierResolver interface {
	CurrentTier(ctx context.Context, userID string) (models.SubscriptionTier, error)
}

// StaticTier resolves every user to the same tier.
type StaticTier models.SubscriptionTier

func (t StaticTier) CurrentTier(ctx context.Context, userID string) (models.SubscriptionTier, error) {
	return models.SubscriptionTier(t), nil
}

func GetExpiresAt(expiresIn time.Duration) time.Time {
	return time.Now().Add(expiresIn)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func logErr(err error) error {
	if err != nil {
		slog.Info(err.Error())
	}
	return err
}
