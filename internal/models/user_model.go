package models

import "time"

type UserProfile struct {
	UserID       string           `json:"user_id"`
	Name         *string          `json:"name,omitempty"`
	Email        *string          `json:"email,omitempty"`
	BusinessName *string          `json:"business_name,omitempty"`
	BusinessType *string          `json:"business_type,omitempty"`
	Plan         SubscriptionTier `json:"plan"`
	CreatedAt    time.Time        `json:"created_at"`
	AvatarURL    *string          `json:"avatar_url,omitempty"`
}

type Brand struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Industry string `json:"industry"`
	ColorHex string `json:"color_hex"`
}

type CampaignPlan struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	BrandID        *string   `json:"brand_id,omitempty"`
	Platform       string    `json:"platform"`
	Budget         float64   `json:"budget"`
	Goal           string    `json:"goal"`
	OutlineDetails string    `json:"outline_details"`
	CreatedAt      time.Time `json:"created_at"`
}

type ContentCalendarItem struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	BrandID  *string   `json:"brand_id,omitempty"`
	Date     time.Time `json:"date"`
	Platform string    `json:"platform"`
	Title    string    `json:"title"`
	Notes    string    `json:"notes"`
}

type Booking struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	ServiceType   string    `json:"service_type"`
	RequestedTime time.Time `json:"requested_time"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}
