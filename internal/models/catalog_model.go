package models

import "time"

type TemplateItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	IsPremium     bool    `json:"is_premium"`
	IsAgencyOnly  bool    `json:"is_agency_only"`
	AssetFileName *string `json:"asset_file_name,omitempty"`
}

type AffiliateTool struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	ShortDescription string `json:"short_description"`
	URL              string `json:"url"`
	IsProRecommended bool   `json:"is_pro_recommended"`
}

type AffiliateClick struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ToolID    string    `json:"tool_id"`
	Timestamp time.Time `json:"timestamp"`
}
