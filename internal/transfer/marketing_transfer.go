package transfer

import "time"

type BrandInput struct {
	Name     string `json:"name"`
	Industry string `json:"industry"`
	ColorHex string `json:"color_hex"`
}

type OutlineRequest struct {
	Platform string  `json:"platform"`
	Budget   float64 `json:"budget"`
	Goal     string  `json:"goal"`
}

type CampaignInput struct {
	BrandID        *string `json:"brand_id"`
	Platform       string  `json:"platform"`
	Budget         float64 `json:"budget"`
	Goal           string  `json:"goal"`
	OutlineDetails string  `json:"outline_details"`
}

type CalendarItemInput struct {
	BrandID  *string   `json:"brand_id"`
	Date     time.Time `json:"date"`
	Platform string    `json:"platform"`
	Title    string    `json:"title"`
	Notes    string    `json:"notes"`
}

type GeneratedContentInput struct {
	BrandID  *string   `json:"brand_id"`
	Date     time.Time `json:"date"`
	Platform string    `json:"platform"`
	Content  string    `json:"content"`
}

// BulkCalendarUpdate applies the set fields to every listed item.
type BulkCalendarUpdate struct {
	IDs      []string   `json:"ids"`
	Date     *time.Time `json:"date"`
	Platform *string    `json:"platform"`
}

type BulkDelete struct {
	IDs []string `json:"ids"`
}

type GenerateRequest struct {
	BusinessType string `json:"business_type"`
	Audience     string `json:"audience"`
	Tone         string `json:"tone"`
	Platform     string `json:"platform"`
}

type BookingRequest struct {
	ServiceType   string    `json:"service_type"`
	RequestedTime time.Time `json:"requested_time"`
	Notes         string    `json:"notes"`
}

type TemplateView struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	IsPremium     bool    `json:"is_premium"`
	IsAgencyOnly  bool    `json:"is_agency_only"`
	AssetFileName *string `json:"asset_file_name,omitempty"`
	Locked        bool    `json:"locked"`
}

type AffiliateToolView struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	ShortDescription string  `json:"short_description"`
	URL              string  `json:"url"`
	IsProRecommended bool    `json:"is_pro_recommended"`
	Badge            *string `json:"badge,omitempty"`
}
