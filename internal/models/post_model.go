package models

import "time"

type PostStatus string

const (
	PostStatusDraft          PostStatus = "Draft"
	PostStatusScheduled      PostStatus = "Scheduled"
	PostStatusPosting        PostStatus = "Posting"
	PostStatusPosted         PostStatus = "Posted"
	PostStatusFailed         PostStatus = "Failed"
	PostStatusReadyForReview PostStatus = "Ready for Review"
	PostStatusReviewed       PostStatus = "Reviewed"
	PostStatusShared         PostStatus = "Shared"
	PostStatusCancelled      PostStatus = "Cancelled"
)

var PostStatuses = []PostStatus{
	PostStatusDraft, PostStatusScheduled, PostStatusPosting, PostStatusPosted, PostStatusFailed,
	PostStatusReadyForReview, PostStatusReviewed, PostStatusShared, PostStatusCancelled,
}

func ParsePostStatus(s string) (PostStatus, bool) {
	for _, st := range PostStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

type ScheduledPost struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	BrandID        *string    `json:"brand_id,omitempty"`
	CalendarItemID *string    `json:"calendar_item_id,omitempty"`
	Platform       string     `json:"platform"`
	AccountID      *string    `json:"account_id,omitempty"`
	Content        string     `json:"content"`
	ScheduledDate  time.Time  `json:"scheduled_date"`
	Status         PostStatus `json:"status"`
	MediaURLs      []string   `json:"media_urls"`
	Hashtags       *string    `json:"hashtags,omitempty"`
	LinkURL        *string    `json:"link_url,omitempty"`
	PostedAt       *time.Time `json:"posted_at,omitempty"`
	ErrorMessage   *string    `json:"error_message,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	// LeaseExpiresAt is set while a publisher holds the post in Posting.
	LeaseExpiresAt *time.Time `json:"lease_expires_at,omitempty"`
}

type MediaAsset struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	FileName  string    `json:"file_name"`
	FileType  string    `json:"file_type"`
	FileSize  int64     `json:"file_size"`
	FileURL   string    `json:"file_url"`
	CreatedAt time.Time `json:"created_at"`
}

// PostingHistory records one publish attempt for a post.
type PostingHistory struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	PostID         string    `json:"post_id"`
	AccountID      string    `json:"account_id,omitempty"`
	PlatformPostID string    `json:"platform_post_id,omitempty"`
	ErrorMessage   string    `json:"error_message,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
