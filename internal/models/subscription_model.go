package models

import "time"

type SubscriptionTier string

const (
	TierFree   SubscriptionTier = "free"
	TierPro    SubscriptionTier = "pro"
	TierAgency SubscriptionTier = "agency"
)

var SubscriptionTiers = []SubscriptionTier{TierFree, TierPro, TierAgency}

func ParseTier(s string) (SubscriptionTier, bool) {
	switch SubscriptionTier(s) {
	case TierFree, TierPro, TierAgency:
		return SubscriptionTier(s), true
	}
	return TierFree, false
}

func (t SubscriptionTier) DisplayName() string {
	switch t {
	case TierPro:
		return "Pro"
	case TierAgency:
		return "Agency"
	default:
		return "Free"
	}
}

func (t SubscriptionTier) AccentColorHex() string {
	switch t {
	case TierPro:
		return "#2AA876"
	case TierAgency:
		return "#7F52FF"
	default:
		return "#5B8DEF"
	}
}

// MaxCampaignPlans returns the plan cap and false when the tier is uncapped.
func (t SubscriptionTier) MaxCampaignPlans() (int, bool) {
	if t == TierFree {
		return 3, true
	}
	return 0, false
}

func (t SubscriptionTier) MaxCalendarItems() (int, bool) {
	if t == TierFree {
		return 10, true
	}
	return 0, false
}

func (t SubscriptionTier) MaxBrands() int {
	if t == TierAgency {
		return 10
	}
	return 1
}

func (t SubscriptionTier) CanAccessAgencyOnlyTemplates() bool {
	return t == TierAgency
}

// Entitlement is one active subscription product held by a user.
type Entitlement struct {
	ProductID     string `json:"product_id"`
	TransactionID string `json:"transaction_id"`
	Verified      bool   `json:"verified"`
}

type Product struct {
	ID          string           `json:"id"`
	Tier        SubscriptionTier `json:"tier"`
	DisplayName string           `json:"display_name"`
	Price       string           `json:"price"`
}

// Subscription is a verified store transaction kept as the user's
// entitlement.
type Subscription struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	ProductID     string     `json:"product_id"`
	TransactionID string     `json:"transaction_id"`
	Status        string     `json:"status"`
	PurchasedAt   time.Time  `json:"purchased_at"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

const (
	SubscriptionActive  = "active"
	SubscriptionRevoked = "revoked"
)
