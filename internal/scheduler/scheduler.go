package scheduler

import (
	"context"
	"log"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/maheshrc27/marketing-hub/internal/service"
	"github.com/robfig/cron/v3"
)

// Scheduler runs one recurring publish loop per user. Each loop ticks right
// away and then every interval; a tick that is still running when the next
// one fires causes that one to be skipped.
type Scheduler struct {
	ps       service.PostService
	interval time.Duration

	mu      sync.Mutex
	runners map[string]*cron.Cron
	once    map[string]bool
	// OnTick, when set, receives every finished tick.
	OnTick func(userID string, summary service.ProcessSummary, err error)
}

func New(ps service.PostService, interval time.Duration) *Scheduler {
	return &Scheduler{
		ps:       ps,
		interval: interval,
		runners:  make(map[string]*cron.Cron),
		once:     make(map[string]bool),
	}
}

// Start begins the loop for the user. It reports false when one is already
// running.
func (s *Scheduler) Start(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runners[userID]; ok {
		return false
	}

	logger := cron.VerbosePrintfLogger(log.New(os.Stdout, "scheduler: ", log.LstdFlags))
	c := cron.New(cron.WithLogger(logger))
	job := cron.NewChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)).
		Then(cron.FuncJob(func() { s.tick(userID) }))
	c.Schedule(cron.Every(s.interval), job)
	c.Start()
	s.runners[userID] = c

	go job.Run()
	slog.Info("scheduler started", "user_id", userID, "interval", s.interval)
	return true
}

// RunOnce runs a single tick for a user without a loop and waits for it.
// It reports false when the user's loop or another single tick already
// covers them.
func (s *Scheduler) RunOnce(userID string) bool {
	s.mu.Lock()
	if _, ok := s.runners[userID]; ok || s.once[userID] {
		s.mu.Unlock()
		return false
	}
	s.once[userID] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.once, userID)
		s.mu.Unlock()
	}()
	s.tick(userID)
	return true
}

// tick is never cancelled once started; Stop only prevents the next one.
func (s *Scheduler) tick(userID string) {
	summary, err := s.ps.ProcessScheduledPosts(context.Background(), userID)
	if err != nil {
		slog.Error("scheduler tick failed", "user_id", userID, "error", err)
	} else if summary.Due > 0 {
		slog.Info("scheduler tick",
			"user_id", userID,
			"due", summary.Due,
			"posted", summary.Posted,
			"failed", summary.Failed,
			"skipped", summary.Skipped,
		)
	}
	if s.OnTick != nil {
		s.OnTick(userID, summary, err)
	}
}

// Stop halts future ticks for the user. A tick already in flight finishes.
func (s *Scheduler) Stop(userID string) bool {
	s.mu.Lock()
	c, ok := s.runners[userID]
	delete(s.runners, userID)
	s.mu.Unlock()
	if !ok {
		return false
	}
	c.Stop()
	slog.Info("scheduler stopped", "user_id", userID)
	return true
}

// StopAll halts every loop. The returned context is done once in-flight
// cron-triggered ticks have returned.
func (s *Scheduler) StopAll() context.Context {
	s.mu.Lock()
	runners := s.runners
	s.runners = make(map[string]*cron.Cron)
	s.mu.Unlock()

	var wg sync.WaitGroup
	for _, c := range runners {
		wg.Add(1)
		go func(c *cron.Cron) {
			defer wg.Done()
			<-c.Stop().Done()
		}(c)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		wg.Wait()
		cancel()
	}()
	return ctx
}

func (s *Scheduler) Running(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.runners[userID]
	return ok
}

// Users lists the users with a running loop.
func (s *Scheduler) Users() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]string, 0, len(s.runners))
	for id := range s.runners {
		users = append(users, id)
	}
	return users
}
