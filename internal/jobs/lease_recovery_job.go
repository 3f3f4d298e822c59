package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/maheshrc27/marketing-hub/internal/service"
)

// LeaseRecoveryJob fails posts left in Posting by a publisher that stopped
// before it finished.
type LeaseRecoveryJob struct {
	ps      service.PostService
	timeout time.Duration
}

func NewLeaseRecoveryJob(ps service.PostService) *LeaseRecoveryJob {
	return &LeaseRecoveryJob{
		ps:      ps,
		timeout: time.Minute,
	}
}

func (j *LeaseRecoveryJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	n, err := j.ps.RecoverExpiredLeases(ctx)
	if err != nil {
		slog.Info(err.Error())
		return
	}
	if n > 0 {
		slog.Info("recovered interrupted posts", "count", n)
	}
}
