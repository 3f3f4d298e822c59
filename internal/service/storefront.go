package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/transfer"
	"github.com/maheshrc27/marketing-hub/pkg/utils"
)

type PurchaseStatus string

const (
	PurchaseSuccess   PurchaseStatus = "success"
	PurchaseCancelled PurchaseStatus = "cancelled"
	PurchasePending   PurchaseStatus = "pending"
)

// PurchaseResult carries the signed transaction when Status is success.
type PurchaseResult struct {
	Status            PurchaseStatus
	SignedTransaction string
}

// Storefront is the app store the subscriptions are sold through.
type Storefront interface {
	Products(ctx context.Context, ids []string) ([]models.Product, error)
	Purchase(ctx context.Context, userID, productID string) (PurchaseResult, error)
	// CurrentEntitlements returns the signed transactions the user holds.
	CurrentEntitlements(ctx context.Context, userID string) ([]string, error)
	Sync(ctx context.Context, userID string) error
}

// LocalStorefront sells a fixed catalog and signs its own transactions. It
// stands in for the platform store in development and tests.
type LocalStorefront struct {
	mu       sync.Mutex
	key      string
	products []models.Product
	owned    map[string][]string
	// Next overrides the outcome of the next purchase.
	Next PurchaseStatus
}

func NewLocalStorefront(key string, products []models.Product) *LocalStorefront {
	return &LocalStorefront{
		key:      key,
		products: products,
		owned:    make(map[string][]string),
	}
}

// DefaultProducts builds the monthly pro and agency products.
func DefaultProducts(proID, agencyID string) []models.Product {
	return []models.Product{
		{ID: proID, Tier: models.TierPro, DisplayName: "Pro Monthly", Price: "$19.99"},
		{ID: agencyID, Tier: models.TierAgency, DisplayName: "Agency Monthly", Price: "$49.99"},
	}
}

func (f *LocalStorefront) Products(ctx context.Context, ids []string) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range f.products {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (f *LocalStorefront) Purchase(ctx context.Context, userID, productID string) (PurchaseResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	status := f.Next
	f.Next = ""
	switch status {
	case PurchaseCancelled, PurchasePending:
		return PurchaseResult{Status: status}, nil
	}

	now := time.Now().UTC()
	signed, err := utils.SignTransaction(f.key, transfer.TransactionClaims{
		TransactionID: strings.ToUpper(uuid.NewString()),
		ProductID:     productID,
		PurchaseDate:  now,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.AddDate(0, 1, 0)),
		},
	})
	if err != nil {
		return PurchaseResult{}, fmt.Errorf("signing transaction: %w", err)
	}
	f.owned[userID] = append(f.owned[userID], signed)
	return PurchaseResult{Status: PurchaseSuccess, SignedTransaction: signed}, nil
}

func (f *LocalStorefront) CurrentEntitlements(ctx context.Context, userID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.owned[userID]...), nil
}

func (f *LocalStorefront) Sync(ctx context.Context, userID string) error {
	return nil
}

// Grant adds a signed transaction to the user's entitlements.
func (f *LocalStorefront) Grant(userID, signed string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.owned[userID] = append(f.owned[userID], signed)
}
