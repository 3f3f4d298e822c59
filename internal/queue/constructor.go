package queue

import (
	"github.com/maheshrc27/marketing-hub/internal/notify"
	"github.com/maheshrc27/marketing-hub/internal/service"
)

// Queue handles the background tasks that act on posts.
type Queue struct {
	ps        service.PostService
	deliverer notify.Deliverer
}

func NewQueue(ps service.PostService, deliverer notify.Deliverer) *Queue {
	return &Queue{
		ps:        ps,
		deliverer: deliverer,
	}
}

const (
	TaskTypePublishPost  = "publish:post"
	TaskTypePostReminder = "notify:post-reminder"
)

type PublishPostPayload struct {
	PostID string `json:"post_id"`
}

type PostReminderPayload struct {
	Reminder notify.Reminder `json:"reminder"`
}
