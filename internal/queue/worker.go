package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/marketing-hub/internal/service"
)

// Register adds the queue's handlers to mux.
func (q *Queue) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TaskTypePublishPost, q.HandlePublishPostTask)
	mux.HandleFunc(TaskTypePostReminder, q.HandlePostReminderTask)
}

func (q *Queue) HandlePublishPostTask(ctx context.Context, task *asynq.Task) error {
	var payload PublishPostPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	post, err := q.ps.PublishPost(ctx, payload.PostID)
	switch {
	case errors.Is(err, service.ErrNotClaimable), errors.Is(err, service.ErrNotFound):
		log.Printf("Skipping post %s: %v", payload.PostID, err)
		return nil
	case err != nil:
		return err
	}

	log.Printf("Post %s finished as %s", post.ID, post.Status)
	return nil
}

func (q *Queue) HandlePostReminderTask(ctx context.Context, task *asynq.Task) error {
	var payload PostReminderPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}
	return q.deliverer.Deliver(ctx, payload.Reminder)
}
