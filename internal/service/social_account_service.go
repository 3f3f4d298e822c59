package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	config "github.com/maheshrc27/marketing-hub/configs"
	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/repository"
	"github.com/maheshrc27/marketing-hub/pkg/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
)

const (
	mockAccessToken = "mock_access_token"
	oauthStateTTL   = 10 * time.Minute
)

type SocialAccountService interface {
	List(ctx context.Context, userID string) ([]*models.ConnectedSocialAccount, error)
	Save(ctx context.Context, account *models.ConnectedSocialAccount) error
	// Connect stores a placeholder account for the platform until real OAuth
	// flows are wired.
	Connect(ctx context.Context, userID string, platform models.SocialPlatform) (*models.ConnectedSocialAccount, error)
	Disconnect(ctx context.Context, userID, accountID string) (*models.ConnectedSocialAccount, error)
	AuthURL(ctx context.Context, userID string, platform models.SocialPlatform) (string, error)
}

type socialAccountService struct {
	cfg *config.Config
	sa  repository.SocialAccountRepository
	now func() time.Time
}

func NewSocialAccountService(cfg *config.Config, sa repository.SocialAccountRepository) SocialAccountService {
	return &socialAccountService{
		cfg: cfg,
		sa:  sa,
		now: time.Now,
	}
}

func (s *socialAccountService) List(ctx context.Context, userID string) ([]*models.ConnectedSocialAccount, error) {
	if userID == "" {
		return nil, logErr(invalid("UserID is not valid"))
	}
	accounts, err := s.sa.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing social accounts: %w", err)
	}
	return accounts, nil
}

func (s *socialAccountService) Save(ctx context.Context, account *models.ConnectedSocialAccount) error {
	if account == nil || account.UserID == "" {
		return logErr(invalid("Account owner is missing."))
	}
	if _, ok := models.ParseSocialPlatform(account.Platform); !ok {
		return logErr(invalid("Invalid platform"))
	}
	if account.ConnectedAt.IsZero() {
		account.ConnectedAt = s.now().UTC()
	}
	return s.sa.Save(ctx, account)
}

func (s *socialAccountService) Connect(ctx context.Context, userID string, platform models.SocialPlatform) (*models.ConnectedSocialAccount, error) {
	token, err := utils.Encrypt([]byte(mockAccessToken), []byte(s.cfg.SecretKey))
	if err != nil {
		return nil, fmt.Errorf("encrypting access token: %w", err)
	}

	account := &models.ConnectedSocialAccount{
		UserID:      userID,
		Platform:    string(platform),
		AccountName: fmt.Sprintf("Mock %s Account", platform),
		AccountID:   fmt.Sprintf("mock_%s_%s", platform.Slug(), strings.ToUpper(uuid.NewString())),
		IsActive:    true,
		ConnectedAt: s.now().UTC(),
		AccessToken: &token,
	}
	if err := s.Save(ctx, account); err != nil {
		return nil, err
	}
	slog.Info("connected social account", "user_id", userID, "platform", platform)
	return account, nil
}

// Disconnect deactivates the account; the record is kept.
func (s *socialAccountService) Disconnect(ctx context.Context, userID, accountID string) (*models.ConnectedSocialAccount, error) {
	account, err := s.sa.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil || account.UserID != userID {
		return nil, logErr(notFound("social account"))
	}

	account.IsActive = false
	if err := s.sa.Save(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *socialAccountService) AuthURL(ctx context.Context, userID string, platform models.SocialPlatform) (string, error) {
	conf, opts, err := s.oauthConfig(platform)
	if err != nil {
		return "", err
	}

	state, err := utils.GenerateToken(s.cfg.SecretKey, userID, oauthStateTTL)
	if err != nil {
		return "", err
	}
	return conf.AuthCodeURL(state, opts...), nil
}

func (s *socialAccountService) oauthConfig(platform models.SocialPlatform) (*oauth2.Config, []oauth2.AuthCodeOption, error) {
	var client config.OAuthClient
	var endpoint oauth2.Endpoint
	var scopes []string
	var opts []oauth2.AuthCodeOption

	switch platform {
	case models.Instagram:
		client = s.cfg.Instagram
		endpoint = oauth2.Endpoint{
			AuthURL:  "https://www.instagram.com/oauth/authorize",
			TokenURL: "https://api.instagram.com/oauth/access_token",
		}
		scopes = []string{"instagram_business_basic,instagram_business_content_publish"}
	case models.Facebook:
		client = s.cfg.Facebook
		endpoint = facebook.Endpoint
		scopes = []string{"pages_manage_posts", "pages_read_engagement"}
	case models.LinkedIn:
		client = s.cfg.LinkedIn
		endpoint = oauth2.Endpoint{
			AuthURL:  "https://www.linkedin.com/oauth/v2/authorization",
			TokenURL: "https://www.linkedin.com/oauth/v2/accessToken",
		}
		scopes = []string{"openid", "profile", "w_member_social"}
	case models.Twitter:
		client = s.cfg.Twitter
		endpoint = oauth2.Endpoint{
			AuthURL:  "https://twitter.com/i/oauth2/authorize",
			TokenURL: "https://api.twitter.com/2/oauth2/token",
		}
		scopes = []string{"tweet.read", "tweet.write", "users.read", "offline.access"}
		opts = append(opts, oauth2.S256ChallengeOption(oauth2.GenerateVerifier()))
	case models.TikTok:
		client = s.cfg.Tiktok
		endpoint = oauth2.Endpoint{
			AuthURL:  "https://www.tiktok.com/v2/auth/authorize/",
			TokenURL: "https://open.tiktokapis.com/v2/oauth/token/",
		}
		scopes = []string{"user.info.basic,video.publish,video.upload"}
		opts = append(opts, oauth2.SetAuthURLParam("client_key", client.ClientID))
	case models.Pinterest:
		client = s.cfg.Pinterest
		endpoint = oauth2.Endpoint{
			AuthURL:  "https://www.pinterest.com/oauth/",
			TokenURL: "https://api.pinterest.com/v5/oauth/token",
		}
		scopes = []string{"boards:read,pins:read,pins:write"}
	default:
		return nil, nil, logErr(invalid("Invalid platform"))
	}

	if client.ClientID == "" || client.RedirectURI == "" {
		return nil, nil, logErr(invalid(fmt.Sprintf("%s sign-in is not configured.", platform)))
	}

	return &oauth2.Config{
		ClientID:     client.ClientID,
		ClientSecret: client.ClientSecret,
		RedirectURL:  client.RedirectURI,
		Scopes:       scopes,
		Endpoint:     endpoint,
	}, opts, nil
}
