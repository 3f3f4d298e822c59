package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/maheshrc27/marketing-hub/internal/repository"
	"github.com/maheshrc27/marketing-hub/internal/service"
)

// Ticker is satisfied by *scheduler.Scheduler.
type Ticker interface {
	RunOnce(userID string) bool
}

// DueSweepJob runs one publish tick for every user with due posts, so posts
// go out even when their owner has no publish loop running.
type DueSweepJob struct {
	pr        repository.PostRepository
	scheduler Ticker
	now       func() time.Time
}

func NewDueSweepJob(pr repository.PostRepository, scheduler Ticker) *DueSweepJob {
	return &DueSweepJob{
		pr:        pr,
		scheduler: scheduler,
		now:       time.Now,
	}
}

func (j *DueSweepJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	owners, err := service.DueOwners(ctx, j.pr, j.now())
	cancel()
	if err != nil {
		slog.Info(err.Error())
		return
	}

	ticked := 0
	for _, userID := range owners {
		if j.scheduler.RunOnce(userID) {
			ticked++
		}
	}
	if ticked > 0 {
		slog.Info("swept due posts", "users", ticked)
	}
}
