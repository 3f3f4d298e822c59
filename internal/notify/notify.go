package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/maheshrc27/marketing-hub/internal/models"
)

const (
	CategoryPostReminder = "POST_REMINDER"
	ActionReviewPost     = "REVIEW_POST"

	DeepLinkScheduledPost = "scheduledPost"

	reminderTitle = "Time to Review Your Post"
)

// DeepLink points a notification back at the entity it is about.
type DeepLink struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Reminder is the push notification shown when a post comes due.
type Reminder struct {
	UserID   string   `json:"user_id"`
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Category string   `json:"category"`
	Actions  []string `json:"actions"`
	DeepLink DeepLink `json:"deep_link"`
}

// ID keys the reminder so it can be replaced or cancelled later.
func ID(postID string) string {
	return "post-" + postID
}

func PostReminder(post *models.ScheduledPost) Reminder {
	return Reminder{
		UserID:   post.UserID,
		Title:    reminderTitle,
		Body:     fmt.Sprintf("Your %s post is scheduled for now. Review and share it!", post.Platform),
		Category: CategoryPostReminder,
		Actions:  []string{ActionReviewPost},
		DeepLink: DeepLink{Type: DeepLinkScheduledPost, ID: post.ID},
	}
}

// ParseDeepLink returns the post id a tapped notification should open.
func ParseDeepLink(link DeepLink) (string, bool) {
	if link.Type != DeepLinkScheduledPost || link.ID == "" {
		return "", false
	}
	return link.ID, true
}

// Deliverer hands a reminder to the push provider.
type Deliverer interface {
	Deliver(ctx context.Context, r Reminder) error
}

type logDeliverer struct{}

// NewLogDeliverer writes reminders to the log instead of pushing them.
func NewLogDeliverer() Deliverer {
	return logDeliverer{}
}

func (logDeliverer) Deliver(ctx context.Context, r Reminder) error {
	slog.Info("post reminder",
		"user_id", r.UserID,
		"title", r.Title,
		"body", r.Body,
		"category", r.Category,
		"post_id", r.DeepLink.ID,
	)
	return nil
}
