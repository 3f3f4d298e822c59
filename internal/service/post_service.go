package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/repository"
	"github.com/maheshrc27/marketing-hub/internal/share"
	"github.com/maheshrc27/marketing-hub/internal/transfer"
)

const (
	MsgNoAccount       = "No connected account"
	MsgAccountInactive = "Account not found or inactive"
	MsgInvalidPlatform = "Invalid platform"
	MsgInterrupted     = "Publishing was interrupted before it finished."
)

var ErrNotClaimable = errors.New("post is not waiting to be published")

// ReminderScheduler arranges a review reminder at a post's scheduled time.
type ReminderScheduler interface {
	Schedule(ctx context.Context, post *models.ScheduledPost) error
	Cancel(ctx context.Context, postID string) error
}

type noReminders struct{}

func (noReminders) Schedule(ctx context.Context, post *models.ScheduledPost) error { return nil }
func (noReminders) Cancel(ctx context.Context, postID string) error { return nil }

// ProcessSummary counts the outcomes of one scheduler tick.
type ProcessSummary struct {
	Due     int `json:"due"`
	Posted  int `json:"posted"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

type PostService interface {
	Create(ctx context.Context, userID string, pc *transfer.PostCreation) (*models.ScheduledPost, error)
	Update(ctx context.Context, userID, postID string, pc *transfer.PostCreation) (*models.ScheduledPost, error)
	Get(ctx context.Context, userID, postID string) (*models.ScheduledPost, error)
	List(ctx context.Context, userID string, status *models.PostStatus) ([]*models.ScheduledPost, error)
	DueNow(ctx context.Context, userID string) ([]*models.ScheduledPost, error)
	UpdateStatus(ctx context.Context, userID, postID string, status models.PostStatus, errorMessage *string) (*models.ScheduledPost, error)
	Delete(ctx context.Context, userID, postID string) error
	History(ctx context.Context, userID, postID string) ([]*models.PostingHistory, error)
	ShareURL(ctx context.Context, userID, postID string) (string, bool, error)
	ProcessScheduledPosts(ctx context.Context, userID string) (ProcessSummary, error)
	PublishPost(ctx context.Context, postID string) (*models.ScheduledPost, error)
	RecoverExpiredLeases(ctx context.Context) (int, error)
	RescheduleReminders(ctx context.Context, userID string) (int, error)
}

type postService struct {
	pr        repository.PostRepository
	ac        repository.SocialAccountRepository
	ph        repository.PostingHistoryRepository
	publisher Publisher
	reminders ReminderScheduler
	lease     time.Duration
	now       func() time.Time
}

func NewPostService(
	pr repository.PostRepository,
	ac repository.SocialAccountRepository,
	ph repository.PostingHistoryRepository,
	publisher Publisher,
	reminders ReminderScheduler,
	lease time.Duration) PostService {
	if reminders == nil {
		reminders = noReminders{}
	}
	return &postService{
		pr:        pr,
		ac:        ac,
		ph:        ph,
		publisher: publisher,
		reminders: reminders,
		lease:     lease,
		now:       time.Now,
	}
}

func validatePost(pc *transfer.PostCreation) error {
	if pc == nil {
		return invalid("post creation data is nil")
	}
	platform, ok := models.ParseSocialPlatform(pc.Platform)
	if !ok {
		return invalid(MsgInvalidPlatform)
	}
	if strings.TrimSpace(pc.Content) == "" {
		return invalid("Write something to post.")
	}
	if n := utf8.RuneCountInString(pc.Content); n > platform.MaxPostLength() {
		return invalid(fmt.Sprintf("%s posts are limited to %d characters.", platform, platform.MaxPostLength()))
	}
	if platform.RequiresMedia() && len(pc.MediaURLs) == 0 {
		return invalid(fmt.Sprintf("%s posts need at least one image or video.", platform))
	}
	if pc.ScheduledDate.IsZero() {
		return invalid("Choose when to post.")
	}
	return nil
}

func (s *postService) Create(ctx context.Context, userID string, pc *transfer.PostCreation) (*models.ScheduledPost, error) {
	if err := validatePost(pc); err != nil {
		return nil, logErr(err)
	}

	status := models.PostStatusScheduled
	if pc.Draft {
		status = models.PostStatusDraft
	}
	post := &models.ScheduledPost{
		UserID:         userID,
		BrandID:        nonEmpty(pc.BrandID),
		CalendarItemID: nonEmpty(pc.CalendarItemID),
		Platform:       pc.Platform,
		AccountID:      nonEmpty(pc.AccountID),
		Content:        pc.Content,
		ScheduledDate:  pc.ScheduledDate.UTC(),
		Status:         status,
		MediaURLs:      pc.MediaURLs,
		Hashtags:       nonEmpty(pc.Hashtags),
		LinkURL:        nonEmpty(pc.LinkURL),
		CreatedAt:      s.now().UTC(),
	}
	if post.MediaURLs == nil {
		post.MediaURLs = []string{}
	}
	if err := s.pr.Save(ctx, post); err != nil {
		return nil, err
	}
	s.syncReminder(ctx, post)
	return post, nil
}

func (s *postService) Update(ctx context.Context, userID, postID string, pc *transfer.PostCreation) (*models.ScheduledPost, error) {
	post, err := s.Get(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if post.Status == models.PostStatusPosting || post.Status == models.PostStatusPosted {
		return nil, logErr(invalid("Published posts can't be edited."))
	}
	if err := validatePost(pc); err != nil {
		return nil, logErr(err)
	}

	post.BrandID = nonEmpty(pc.BrandID)
	post.CalendarItemID = nonEmpty(pc.CalendarItemID)
	post.Platform = pc.Platform
	post.AccountID = nonEmpty(pc.AccountID)
	post.Content = pc.Content
	post.ScheduledDate = pc.ScheduledDate.UTC()
	post.MediaURLs = pc.MediaURLs
	if post.MediaURLs == nil {
		post.MediaURLs = []string{}
	}
	post.Hashtags = nonEmpty(pc.Hashtags)
	post.LinkURL = nonEmpty(pc.LinkURL)
	post.ErrorMessage = nil
	if pc.Draft {
		post.Status = models.PostStatusDraft
	} else {
		post.Status = models.PostStatusScheduled
	}

	if err := s.pr.Save(ctx, post); err != nil {
		return nil, err
	}
	s.syncReminder(ctx, post)
	return post, nil
}

func (s *postService) Get(ctx context.Context, userID, postID string) (*models.ScheduledPost, error) {
	if postID == "" {
		return nil, logErr(invalid("post id is not valid"))
	}
	post, err := s.pr.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil || post.UserID != userID {
		return nil, logErr(notFound("post"))
	}
	return post, nil
}

func (s *postService) List(ctx context.Context, userID string, status *models.PostStatus) ([]*models.ScheduledPost, error) {
	posts, err := s.pr.ListByUserID(ctx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	return posts, nil
}

func (s *postService) DueNow(ctx context.Context, userID string) ([]*models.ScheduledPost, error) {
	return s.pr.ListDue(ctx, userID, s.now())
}

// UpdateStatus sets a status by hand. Posted stamps postedAt and the error
// message is replaced with the given one.
func (s *postService) UpdateStatus(ctx context.Context, userID, postID string, status models.PostStatus, errorMessage *string) (*models.ScheduledPost, error) {
	if _, ok := models.ParsePostStatus(string(status)); !ok {
		return nil, logErr(invalid("Unknown post status."))
	}
	post, err := s.Get(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	post.Status = status
	if status == models.PostStatusPosted {
		now := s.now().UTC()
		post.PostedAt = &now
	}
	post.ErrorMessage = nonEmpty(errorMessage)
	if status != models.PostStatusPosting {
		post.LeaseExpiresAt = nil
	}
	if err := s.pr.Save(ctx, post); err != nil {
		return nil, err
	}
	s.syncReminder(ctx, post)
	return post, nil
}

func (s *postService) Delete(ctx context.Context, userID, postID string) error {
	if _, err := s.Get(ctx, userID, postID); err != nil {
		return err
	}
	if err := s.pr.Remove(ctx, postID); err != nil {
		return fmt.Errorf("removing post: %w", err)
	}
	if err := s.reminders.Cancel(ctx, postID); err != nil {
		slog.Info("cancelling reminder failed", "post_id", postID, "error", err)
	}
	return nil
}

func (s *postService) History(ctx context.Context, userID, postID string) ([]*models.PostingHistory, error) {
	if _, err := s.Get(ctx, userID, postID); err != nil {
		return nil, err
	}
	return s.ph.ListByPostID(ctx, postID)
}

func (s *postService) ShareURL(ctx context.Context, userID, postID string) (string, bool, error) {
	post, err := s.Get(ctx, userID, postID)
	if err != nil {
		return "", false, err
	}
	url, ok := share.ForPost(post)
	return url, ok, nil
}

// ProcessScheduledPosts publishes the user's due posts one at a time in
// scheduled order. A fetch failure aborts the tick.
func (s *postService) ProcessScheduledPosts(ctx context.Context, userID string) (ProcessSummary, error) {
	var summary ProcessSummary

	due, err := s.pr.ListDue(ctx, userID, s.now())
	if err != nil {
		slog.Error("fetching due posts failed", "user_id", userID, "error", err)
		return summary, err
	}
	summary.Due = len(due)

	for _, post := range due {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}
		result, err := s.publish(ctx, post)
		switch {
		case errors.Is(err, ErrNotClaimable):
			summary.Skipped++
		case errors.Is(err, ErrNotAttempted):
			slog.Info("post released for the next tick", "post_id", post.ID, "error", err)
			summary.Skipped++
		case err != nil:
			slog.Error("publishing post failed", "post_id", post.ID, "error", err)
			summary.Skipped++
		case result.Status == models.PostStatusPosted:
			summary.Posted++
		default:
			summary.Failed++
		}
	}
	return summary, nil
}

func (s *postService) PublishPost(ctx context.Context, postID string) (*models.ScheduledPost, error) {
	post, err := s.pr.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, logErr(notFound("post"))
	}
	return s.publish(ctx, post)
}

// publish claims the post with a lease, then drives it to posted or failed.
// A publisher that never reached the platform hands the post back as
// scheduled. Only a crash or a store outage leaves the lease to expire.
func (s *postService) publish(ctx context.Context, post *models.ScheduledPost) (*models.ScheduledPost, error) {
	if post.Status != models.PostStatusScheduled {
		return nil, ErrNotClaimable
	}

	claimed := *post
	claimed.Status = models.PostStatusPosting
	leaseUntil := s.now().UTC().Add(s.lease)
	claimed.LeaseExpiresAt = &leaseUntil
	ok, err := s.pr.SaveIfStatus(ctx, &claimed, models.PostStatusScheduled)
	if err != nil {
		return nil, err
	}
	if !ok {
		slog.Info("post already claimed", "post_id", post.ID)
		return nil, ErrNotClaimable
	}

	if claimed.AccountID == nil {
		return s.finish(ctx, &claimed, "", MsgNoAccount)
	}
	account, err := s.ac.GetByID(ctx, *claimed.AccountID)
	if err != nil {
		slog.Info(err.Error())
		return s.finish(ctx, &claimed, "", err.Error())
	}
	if account == nil || account.UserID != claimed.UserID || !account.IsActive {
		return s.finish(ctx, &claimed, "", MsgAccountInactive)
	}
	platform, ok := models.ParseSocialPlatform(claimed.Platform)
	if !ok {
		return s.finish(ctx, &claimed, "", MsgInvalidPlatform)
	}

	platformPostID, err := s.publisher.Publish(ctx, platform, account, &claimed)
	if errors.Is(err, ErrNotAttempted) {
		return nil, s.release(ctx, &claimed, err)
	}
	if err != nil {
		return s.finish(ctx, &claimed, "", err.Error())
	}
	return s.finish(ctx, &claimed, platformPostID, "")
}

// release returns a claimed post to scheduled and reports cause.
func (s *postService) release(ctx context.Context, post *models.ScheduledPost, cause error) error {
	post.Status = models.PostStatusScheduled
	post.LeaseExpiresAt = nil
	if _, err := s.pr.SaveIfStatus(context.WithoutCancel(ctx), post, models.PostStatusPosting); err != nil {
		return fmt.Errorf("releasing post %s: %w", post.ID, err)
	}
	return cause
}

func (s *postService) finish(ctx context.Context, post *models.ScheduledPost, platformPostID, failure string) (*models.ScheduledPost, error) {
	now := s.now().UTC()
	post.LeaseExpiresAt = nil
	if failure == "" {
		post.Status = models.PostStatusPosted
		post.PostedAt = &now
		post.ErrorMessage = nil
	} else {
		post.Status = models.PostStatusFailed
		post.ErrorMessage = &failure
	}
	if err := s.pr.Save(ctx, post); err != nil {
		slog.Info("saving publish result failed, retrying", "post_id", post.ID, "error", err)
		if err := s.pr.Save(context.WithoutCancel(ctx), post); err != nil {
			return nil, err
		}
	}

	history := &models.PostingHistory{
		UserID:         post.UserID,
		PostID:         post.ID,
		PlatformPostID: platformPostID,
		ErrorMessage:   failure,
		CreatedAt:      now,
	}
	if post.AccountID != nil {
		history.AccountID = *post.AccountID
	}
	if err := s.ph.Create(context.WithoutCancel(ctx), history); err != nil {
		slog.Info("saving posting history failed", "post_id", post.ID, "error", err)
	}
	return post, nil
}

// RecoverExpiredLeases fails posts whose publisher stopped before finishing.
func (s *postService) RecoverExpiredLeases(ctx context.Context) (int, error) {
	stuck, err := s.pr.ListExpiredLeases(ctx, s.now())
	if err != nil {
		return 0, err
	}

	recovered := 0
	for _, post := range stuck {
		failed := *post
		failed.Status = models.PostStatusFailed
		failed.LeaseExpiresAt = nil
		msg := MsgInterrupted
		failed.ErrorMessage = &msg
		ok, err := s.pr.SaveIfStatus(ctx, &failed, models.PostStatusPosting)
		if err != nil {
			slog.Info(err.Error())
			continue
		}
		if ok {
			recovered++
		}
	}
	return recovered, nil
}

// RescheduleReminders re-arms reminders for every future scheduled post.
func (s *postService) RescheduleReminders(ctx context.Context, userID string) (int, error) {
	status := models.PostStatusScheduled
	posts, err := s.pr.ListByUserID(ctx, userID, &status)
	if err != nil {
		return 0, err
	}

	now := s.now()
	count := 0
	for _, post := range posts {
		if !post.ScheduledDate.After(now) {
			continue
		}
		if err := s.reminders.Schedule(ctx, post); err != nil {
			slog.Info("scheduling reminder failed", "post_id", post.ID, "error", err)
			continue
		}
		count++
	}
	return count, nil
}

func (s *postService) syncReminder(ctx context.Context, post *models.ScheduledPost) {
	var err error
	if post.Status == models.PostStatusScheduled && post.ScheduledDate.After(s.now()) {
		err = s.reminders.Schedule(ctx, post)
	} else {
		err = s.reminders.Cancel(ctx, post.ID)
	}
	if err != nil {
		slog.Info("updating reminder failed", "post_id", post.ID, "error", err)
	}
}

// DueOwners lists the users that currently have posts waiting to publish.
func DueOwners(ctx context.Context, pr repository.PostRepository, now time.Time) ([]string, error) {
	due, err := pr.ListDueForAll(ctx, now)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	owners := []string{}
	for _, post := range due {
		if !seen[post.UserID] {
			seen[post.UserID] = true
			owners = append(owners, post.UserID)
		}
	}
	return owners, nil
}
