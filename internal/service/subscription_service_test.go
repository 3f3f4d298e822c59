package service

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/repository"
	"github.com/maheshrc27/marketing-hub/internal/store"
	"github.com/maheshrc27/marketing-hub/internal/transfer"
	"github.com/maheshrc27/marketing-hub/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubscriptionFixture(t *testing.T) (SubscriptionService, *LocalStorefront, repository.ProfileRepository) {
	t.Helper()
	cfg := testConfig()
	rs := store.NewMemoryStore()
	profiles := repository.NewProfileRepository(rs)
	require.NoError(t, profiles.Save(context.Background(), &models.UserProfile{UserID: "u1", Plan: models.TierFree, CreatedAt: time.Now()}))

	front := NewLocalStorefront(cfg.StorefrontKey, DefaultProducts(cfg.ProProductID, cfg.AgencyProductID))
	svc := NewSubscriptionService(cfg, profiles, repository.NewSubscriptionRepository(rs), front)
	return svc, front, profiles
}

func TestSubscriptionService_PurchaseUpgradesTier(t *testing.T) {
	ctx := context.Background()
	svc, _, profiles := newSubscriptionFixture(t)

	tier, err := svc.Purchase(ctx, "u1", models.TierPro)
	require.NoError(t, err)
	assert.Equal(t, models.TierPro, tier)

	tier, err = svc.Purchase(ctx, "u1", models.TierAgency)
	require.NoError(t, err)
	assert.Equal(t, models.TierAgency, tier)

	profile, err := profiles.GetByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.TierFree, profile.Plan)
}

func TestSubscriptionService_PendingAndCancelled(t *testing.T) {
	ctx := context.Background()
	svc, front, _ := newSubscriptionFixture(t)

	front.Next = PurchasePending
	_, err := svc.Purchase(ctx, "u1", models.TierPro)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, MsgPurchasePending, err.Error())

	front.Next = PurchaseCancelled
	tier, err := svc.Purchase(ctx, "u1", models.TierPro)
	require.NoError(t, err)
	assert.Equal(t, models.TierFree, tier)
}

func TestSubscriptionService_UnavailableProduct(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	rs := store.NewMemoryStore()
	front := NewLocalStorefront(cfg.StorefrontKey, nil)
	svc := NewSubscriptionService(cfg, repository.NewProfileRepository(rs), repository.NewSubscriptionRepository(rs), front)

	_, err := svc.Purchase(ctx, "u1", models.TierAgency)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, MsgProductUnavailable, err.Error())
}

func TestSubscriptionService_RestoreSkipsForgedAndForeignTransactions(t *testing.T) {
	ctx := context.Background()
	svc, front, _ := newSubscriptionFixture(t)
	cfg := testConfig()

	claims := func(subject, productID string) transfer.TransactionClaims {
		return transfer.TransactionClaims{
			TransactionID: subject + "-" + productID,
			ProductID:     productID,
			PurchaseDate:  time.Now().UTC(),
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   subject,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
	}

	forged, err := utils.SignTransaction("someone-else", claims("u1", cfg.AgencyProductID))
	require.NoError(t, err)
	foreign, err := utils.SignTransaction(cfg.StorefrontKey, claims("u2", cfg.AgencyProductID))
	require.NoError(t, err)
	genuine, err := utils.SignTransaction(cfg.StorefrontKey, claims("u1", cfg.ProProductID))
	require.NoError(t, err)
	for _, tx := range []string{forged, foreign, genuine} {
		front.Grant("u1", tx)
	}

	tier, err := svc.Restore(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.TierPro, tier)
}

func TestSubscriptionService_ExpiredSubscriptionFallsBackToProfilePlan(t *testing.T) {
	ctx := context.Background()
	svc, front, _ := newSubscriptionFixture(t)
	cfg := testConfig()

	signed, err := utils.SignTransaction(cfg.StorefrontKey, transfer.TransactionClaims{
		TransactionID: "tx-agency",
		ProductID:     cfg.AgencyProductID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	require.NoError(t, err)
	front.Grant("u1", signed)

	tier, err := svc.Restore(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.TierAgency, tier)

	require.NoError(t, svc.OverrideTier(ctx, "u1", models.TierPro))
	svc.(*subscriptionService).now = fixedClock(time.Now().Add(2 * time.Hour))

	tier, err = svc.CurrentTier(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.TierPro, tier)
}

func TestSubscriptionService_PurchaseFreeResetsPlan(t *testing.T) {
	ctx := context.Background()
	svc, _, profiles := newSubscriptionFixture(t)

	require.NoError(t, svc.OverrideTier(ctx, "u1", models.TierAgency))
	tier, err := svc.CurrentTier(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.TierAgency, tier)

	tier, err = svc.Purchase(ctx, "u1", models.TierFree)
	require.NoError(t, err)
	assert.Equal(t, models.TierFree, tier)

	profile, err := profiles.GetByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.TierFree, profile.Plan)
}

func TestSocialAccountService_ConnectAndDisconnect(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSocialAccountRepository(store.NewMemoryStore())
	svc := NewSocialAccountService(testConfig(), repo)

	account, err := svc.Connect(ctx, "u1", models.Twitter)
	require.NoError(t, err)
	assert.Equal(t, "Mock Twitter/X Account", account.AccountName)
	assert.True(t, strings.HasPrefix(account.AccountID, "mock_twitter_"))
	assert.True(t, account.IsActive)

	token, err := utils.Decrypt(*account.AccessToken, []byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, "mock_access_token", token)

	_, err = svc.Disconnect(ctx, "u2", account.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	off, err := svc.Disconnect(ctx, "u1", account.ID)
	require.NoError(t, err)
	assert.False(t, off.IsActive)

	accounts, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.False(t, accounts[0].IsActive)
}

func TestSocialAccountService_AuthURL(t *testing.T) {
	cfg := testConfig()
	cfg.Facebook.ClientID = "fb-client"
	cfg.Facebook.RedirectURI = "https://hub.example.com/callback/facebook"
	svc := NewSocialAccountService(cfg, nil)

	raw, err := svc.AuthURL(context.Background(), "u1", models.Facebook)
	require.NoError(t, err)
	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "fb-client", u.Query().Get("client_id"))
	assert.Equal(t, cfg.Facebook.RedirectURI, u.Query().Get("redirect_uri"))

	claims, err := utils.ValidateToken(cfg.SecretKey, u.Query().Get("state"))
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)

	_, err = svc.AuthURL(context.Background(), "u1", models.LinkedIn)
	assert.ErrorIs(t, err, ErrValidation)
}

type memoryObjects struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (m *memoryObjects) Put(ctx context.Context, key string, file []byte, contentType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = file
	return nil
}

func (m *memoryObjects) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[key]; !ok {
		return errors.New("no such key")
	}
	delete(m.objects, key)
	return nil
}

func (m *memoryObjects) PublicURL(key string) string {
	return "https://media.example.com/" + key
}

func TestMediaService_UploadAndDelete(t *testing.T) {
	ctx := context.Background()
	objects := &memoryObjects{objects: make(map[string][]byte)}
	svc := NewMediaService(repository.NewMediaAssetRepository(store.NewMemoryStore()), objects)

	png := append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, bytes.Repeat([]byte{0}, 32)...)
	asset, err := svc.Upload(ctx, "u1", "logo.png", png)
	require.NoError(t, err)
	assert.Equal(t, "image/png", asset.FileType)
	assert.Equal(t, int64(len(png)), asset.FileSize)
	assert.True(t, strings.HasSuffix(asset.FileURL, ".png"))
	assert.Len(t, objects.objects, 1)

	_, err = svc.Upload(ctx, "u1", "notes.txt", []byte("plain text"))
	assert.ErrorIs(t, err, ErrValidation)

	assert.ErrorIs(t, svc.Delete(ctx, "u2", asset.ID), ErrNotFound)
	require.NoError(t, svc.Delete(ctx, "u1", asset.ID))
	assert.Empty(t, objects.objects)
}
