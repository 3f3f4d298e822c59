package models

import (
	"time"
)

type ConnectedSocialAccount struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Platform     string    `json:"platform"`
	AccountName  string    `json:"account_name"`
	AccountID    string    `json:"account_id"`
	IsActive     bool      `json:"is_active"`
	ConnectedAt  time.Time `json:"connected_at"`
	AccessToken  *string   `json:"-"`
	RefreshToken *string   `json:"-"`
}
