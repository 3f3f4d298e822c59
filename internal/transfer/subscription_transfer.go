package transfer

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TransactionClaims is the signed payload of a storefront transaction.
// The subject is the purchasing user.
type TransactionClaims struct {
	TransactionID string    `json:"transaction_id"`
	ProductID     string    `json:"product_id"`
	PurchaseDate  time.Time `json:"purchase_date"`
	Revoked       bool      `json:"revoked,omitempty"`
	jwt.RegisteredClaims
}

type PurchaseRequest struct {
	Tier string `json:"tier"`
}

type SubscriptionStatus struct {
	Tier            string `json:"tier"`
	DisplayName     string `json:"display_name"`
	AccentColorHex  string `json:"accent_color_hex"`
	MaxCampaigns    *int   `json:"max_campaign_plans"`
	MaxCalendarItem *int   `json:"max_calendar_items"`
	MaxBrands       int    `json:"max_brands"`
}
