package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	config "github.com/maheshrc27/marketing-hub/configs"
	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/repository"
	"github.com/maheshrc27/marketing-hub/internal/transfer"
	"github.com/maheshrc27/marketing-hub/pkg/utils"
)

const SessionDuration = 30 * 24 * time.Hour

type AuthService interface {
	// SignIn returns the stored profile for the identity, creating a free
	// profile on first sign-in. created reports whether it was new.
	SignIn(ctx context.Context, payload *transfer.SignInPayload) (profile *models.UserProfile, created bool, err error)
	IssueSession(userID string) (string, error)
}

type authService struct {
	cfg *config.Config
	p   repository.ProfileRepository
	now func() time.Time
}

func NewAuthService(cfg *config.Config, p repository.ProfileRepository) AuthService {
	return &authService{
		cfg: cfg,
		p:   p,
		now: time.Now,
	}
}

func (s *authService) SignIn(ctx context.Context, payload *transfer.SignInPayload) (*models.UserProfile, bool, error) {
	if payload == nil || strings.TrimSpace(payload.UserID) == "" {
		err := invalid("Sign in did not return a user identifier.")
		slog.Info(err.Error())
		return nil, false, err
	}

	existing, err := s.p.GetByUserID(ctx, payload.UserID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	profile := &models.UserProfile{
		UserID:    payload.UserID,
		Name:      optional(payload.FullName),
		Email:     optional(payload.Email),
		Plan:      models.TierFree,
		CreatedAt: s.now().UTC(),
	}
	if err := s.p.Save(ctx, profile); err != nil {
		return nil, false, err
	}
	slog.Info("created profile", "user_id", profile.UserID)
	return profile, true, nil
}

func (s *authService) IssueSession(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("User is not valid")
	}
	return utils.GenerateToken(s.cfg.SecretKey, userID, SessionDuration)
}
