package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mixelka/tempmailbot/pkg/models"
)

// Sessions is the session view the scheduler reads at fire time.
type Sessions interface {
	Get(userID int64) (models.Address, bool)
}

// Inbox queries the provider for the current messages of an address.
type Inbox interface {
	Messages(ctx context.Context, addr models.Address) []models.MessageSummary
}

// Notifier pushes a new-mail notification into a chat.
type Notifier func(ctx context.Context, chatID int64, addr models.Address, count int)

// Scheduler arms a single deferred inbox check per mailbox creation.
//
// Each arming fires exactly once after the configured delay and then
// terminates; there is no re-arming, no recurring polling and no cancellation
// once armed. The check deliberately re-reads the user's session at fire
// time, so a mailbox created inside the delay window is the one that gets
// checked, not the one that armed the job.
type Scheduler struct {
	delay    time.Duration
	sessions Sessions
	inbox    Inbox
	logger   *slog.Logger

	notify Notifier

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScheduler creates a scheduler with the given fire delay
func NewScheduler(delay time.Duration, sessions Sessions, inbox Inbox, logger *slog.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		delay:    delay,
		sessions: sessions,
		inbox:    inbox,
		logger:   logger.With("component", "notify_scheduler"),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// SetNotifier sets the push callback for delivered checks
func (s *Scheduler) SetNotifier(fn Notifier) {
	s.notify = fn
}

// Arm schedules one deferred inbox check for the user. The job waits the
// configured delay, skips silently when the user has no session or an empty
// inbox, and otherwise delivers a single notification to chatID.
func (s *Scheduler) Arm(userID, chatID int64) {
	s.logger.Debug("armed inbox check", "user_id", userID, "delay", s.delay)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-s.ctx.Done():
			return
		case <-timer.C:
		}

		addr, ok := s.sessions.Get(userID)
		if !ok {
			s.logger.Debug("inbox check skipped, no session", "user_id", userID)
			return
		}

		msgs := s.inbox.Messages(s.ctx, addr)
		if len(msgs) == 0 {
			s.logger.Debug("inbox check skipped, no messages", "user_id", userID, "address", addr.String())
			return
		}

		if s.notify == nil {
			s.logger.Warn("inbox check fired without notifier", "user_id", userID)
			return
		}

		s.logger.Info("delivering new-mail notification",
			"user_id", userID,
			"address", addr.String(),
			"count", len(msgs),
		)
		s.notify(s.ctx, chatID, addr, len(msgs))
	}()
}

// Close stops accepting fires and waits for in-flight jobs.
func (s *Scheduler) Close() {
	s.cancel()
	s.wg.Wait()
}
