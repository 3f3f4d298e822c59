package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	config "github.com/maheshrc27/marketing-hub/configs"
	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/repository"
	"github.com/maheshrc27/marketing-hub/internal/transfer"
	"github.com/maheshrc27/marketing-hub/pkg/utils"
)

const (
	MsgProductUnavailable = "Product not available. Double-check the store product IDs."
	MsgPurchasePending    = "Purchase is pending approval."
	MsgUnverified         = "Unable to verify this transaction."
)

// SubscriptionService tracks which tier each user is entitled to. Verified
// store transactions take precedence over the plan saved on the profile.
type SubscriptionService interface {
	TierResolver
	LoadProducts(ctx context.Context) ([]models.Product, error)
	RefreshEntitlements(ctx context.Context, userID string) (models.SubscriptionTier, error)
	Purchase(ctx context.Context, userID string, tier models.SubscriptionTier) (models.SubscriptionTier, error)
	Restore(ctx context.Context, userID string) (models.SubscriptionTier, error)
	OverrideTier(ctx context.Context, userID string, tier models.SubscriptionTier) error
	VerifyTransaction(signed string) (*transfer.TransactionClaims, error)
}

type subscriptionService struct {
	cfg   *config.Config
	p     repository.ProfileRepository
	s     repository.SubscriptionRepository
	store Storefront
	now   func() time.Time

	mu       sync.Mutex
	products []models.Product
}

func NewSubscriptionService(cfg *config.Config, p repository.ProfileRepository, s repository.SubscriptionRepository, store Storefront) SubscriptionService {
	return &subscriptionService{
		cfg:   cfg,
		p:     p,
		s:     s,
		store: store,
		now:   time.Now,
	}
}

func (s *subscriptionService) productID(tier models.SubscriptionTier) string {
	switch tier {
	case models.TierPro:
		return s.cfg.ProProductID
	case models.TierAgency:
		return s.cfg.AgencyProductID
	default:
		return ""
	}
}

func (s *subscriptionService) tierFor(productID string) (models.SubscriptionTier, bool) {
	switch productID {
	case s.cfg.AgencyProductID:
		return models.TierAgency, true
	case s.cfg.ProProductID:
		return models.TierPro, true
	default:
		return models.TierFree, false
	}
}

func rank(t models.SubscriptionTier) int {
	switch t {
	case models.TierAgency:
		return 2
	case models.TierPro:
		return 1
	default:
		return 0
	}
}

func (s *subscriptionService) LoadProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.store.Products(ctx, []string{s.cfg.ProProductID, s.cfg.AgencyProductID})
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	return products, nil
}

func (s *subscriptionService) CurrentTier(ctx context.Context, userID string) (models.SubscriptionTier, error) {
	subs, err := s.s.ListActiveByUserID(ctx, userID)
	if err != nil {
		return models.TierFree, err
	}

	now := s.now()
	best, found := models.TierFree, false
	for _, sub := range subs {
		if sub.ExpiresAt != nil && !sub.ExpiresAt.After(now) {
			continue
		}
		if tier, ok := s.tierFor(sub.ProductID); ok && (!found || rank(tier) > rank(best)) {
			best, found = tier, true
		}
	}
	if found {
		return best, nil
	}

	profile, err := s.p.GetByUserID(ctx, userID)
	if err != nil {
		return models.TierFree, err
	}
	if profile == nil {
		return models.TierFree, nil
	}
	return profile.Plan, nil
}

func (s *subscriptionService) VerifyTransaction(signed string) (*transfer.TransactionClaims, error) {
	claims, err := utils.VerifyTransaction(s.cfg.StorefrontKey, signed)
	if err != nil {
		return nil, invalid(MsgUnverified)
	}
	return claims, nil
}

// record stores a verified transaction for the user.
func (s *subscriptionService) record(ctx context.Context, userID string, claims *transfer.TransactionClaims) error {
	existing, err := s.s.GetByTransactionID(ctx, claims.TransactionID)
	if err != nil {
		return err
	}
	if existing != nil && existing.UserID != userID {
		return logErr(invalid(MsgUnverified))
	}

	sub := &models.Subscription{
		UserID:        userID,
		ProductID:     claims.ProductID,
		TransactionID: claims.TransactionID,
		Status:        models.SubscriptionActive,
		PurchasedAt:   claims.PurchaseDate,
	}
	if claims.Revoked {
		sub.Status = models.SubscriptionRevoked
	}
	if claims.ExpiresAt != nil {
		expires := claims.ExpiresAt.Time.UTC()
		sub.ExpiresAt = &expires
	}
	if sub.PurchasedAt.IsZero() {
		sub.PurchasedAt = s.now().UTC()
	}
	return s.s.Save(ctx, sub)
}

// RefreshEntitlements walks the store's current transactions. Unverified
// transactions and ones issued to another user are skipped.
func (s *subscriptionService) RefreshEntitlements(ctx context.Context, userID string) (models.SubscriptionTier, error) {
	signed, err := s.store.CurrentEntitlements(ctx, userID)
	if err != nil {
		slog.Info(err.Error())
		return models.TierFree, err
	}

	for _, tx := range signed {
		claims, err := s.VerifyTransaction(tx)
		if err != nil || claims.Subject != userID {
			slog.Info("skipping unverified transaction", "user_id", userID)
			continue
		}
		if err := s.record(ctx, userID, claims); err != nil {
			if errors.Is(err, ErrValidation) {
				continue
			}
			return models.TierFree, err
		}
	}
	return s.CurrentTier(ctx, userID)
}

func (s *subscriptionService) Purchase(ctx context.Context, userID string, tier models.SubscriptionTier) (models.SubscriptionTier, error) {
	productID := s.productID(tier)
	if productID == "" {
		if err := s.OverrideTier(ctx, userID, models.TierFree); err != nil {
			return models.TierFree, err
		}
		return s.CurrentTier(ctx, userID)
	}

	s.mu.Lock()
	loaded := s.products
	s.mu.Unlock()
	if loaded == nil {
		var err error
		if loaded, err = s.LoadProducts(ctx); err != nil {
			return models.TierFree, err
		}
	}
	available := false
	for _, p := range loaded {
		if p.ID == productID {
			available = true
		}
	}
	if !available {
		return models.TierFree, logErr(invalid(MsgProductUnavailable))
	}

	result, err := s.store.Purchase(ctx, userID, productID)
	if err != nil {
		slog.Info(err.Error())
		return models.TierFree, err
	}

	switch result.Status {
	case PurchaseSuccess:
		claims, err := s.VerifyTransaction(result.SignedTransaction)
		if err != nil || claims.Subject != userID || claims.ProductID != productID {
			return models.TierFree, logErr(invalid(MsgUnverified))
		}
		if err := s.record(ctx, userID, claims); err != nil {
			return models.TierFree, err
		}
	case PurchasePending:
		return models.TierFree, logErr(invalid(MsgPurchasePending))
	}
	return s.CurrentTier(ctx, userID)
}

func (s *subscriptionService) Restore(ctx context.Context, userID string) (models.SubscriptionTier, error) {
	if err := s.store.Sync(ctx, userID); err != nil {
		slog.Info("store sync failed", "user_id", userID, "error", err)
	}
	return s.RefreshEntitlements(ctx, userID)
}

// OverrideTier sets the plan kept on the profile.
func (s *subscriptionService) OverrideTier(ctx context.Context, userID string, tier models.SubscriptionTier) error {
	profile, err := s.p.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return logErr(notFound("profile"))
	}
	profile.Plan = tier
	return s.p.Save(ctx, profile)
}
