package queue

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/notify"
)

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// TaskDeleter is satisfied by *asynq.Inspector.
type TaskDeleter interface {
	DeleteTask(queue, id string) error
}

func EnqueuePost(client Enqueuer, payload PublishPostPayload, delay time.Duration) error {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypePublishPost, taskPayload)

	_, err = client.Enqueue(task, asynq.ProcessIn(delay), asynq.MaxRetry(3))
	if err != nil {
		return err
	}

	log.Printf("Task scheduled: %+v", payload)
	return nil
}

// Reminders schedules review reminders as delayed tasks keyed by post id, so
// rescheduling a post replaces its pending reminder.
type Reminders struct {
	client    Enqueuer
	inspector TaskDeleter
	queue     string
}

func NewReminders(client Enqueuer, inspector TaskDeleter) *Reminders {
	return &Reminders{
		client:    client,
		inspector: inspector,
		queue:     "default",
	}
}

func (r *Reminders) Schedule(ctx context.Context, post *models.ScheduledPost) error {
	taskPayload, err := json.Marshal(PostReminderPayload{Reminder: notify.PostReminder(post)})
	if err != nil {
		return err
	}
	id := notify.ID(post.ID)
	task := asynq.NewTask(TaskTypePostReminder, taskPayload)

	if err := r.Cancel(ctx, post.ID); err != nil {
		return err
	}
	_, err = r.client.Enqueue(task,
		asynq.TaskID(id),
		asynq.Queue(r.queue),
		asynq.ProcessAt(post.ScheduledDate),
		asynq.MaxRetry(1),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		log.Printf("Reminder %s is already running", id)
		return nil
	}
	return err
}

func (r *Reminders) Cancel(ctx context.Context, postID string) error {
	err := r.inspector.DeleteTask(r.queue, notify.ID(postID))
	if errors.Is(err, asynq.ErrTaskNotFound) || errors.Is(err, asynq.ErrQueueNotFound) {
		return nil
	}
	return err
}
