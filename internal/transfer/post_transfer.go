package transfer

import "time"

type PostCreation struct {
	BrandID        *string   `json:"brand_id"`
	CalendarItemID *string   `json:"calendar_item_id"`
	Platform       string    `json:"platform"`
	AccountID      *string   `json:"account_id"`
	Content        string    `json:"content"`
	ScheduledDate  time.Time `json:"scheduled_date"`
	MediaURLs      []string  `json:"media_urls"`
	Hashtags       *string   `json:"hashtags"`
	LinkURL        *string   `json:"link_url"`
	Draft          bool      `json:"draft"`
}

type StatusUpdate struct {
	Status       string  `json:"status"`
	ErrorMessage *string `json:"error_message"`
}

type ConnectRequest struct {
	Platform string `json:"platform"`
}
