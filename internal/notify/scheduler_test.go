package notify

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mixelka/tempmailbot/pkg/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeSessions struct {
	mu     sync.Mutex
	active map[int64]models.Address
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{active: make(map[int64]models.Address)}
}

func (f *fakeSessions) set(userID int64, addr models.Address) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.active[userID] = addr
}

func (f *fakeSessions) Get(userID int64) (models.Address, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	addr, ok := f.active[userID]
	return addr, ok
}

type fakeInbox struct {
	mu       sync.Mutex
	calls    int
	lastAddr models.Address
	msgs     []models.MessageSummary
}

func (f *fakeInbox) Messages(ctx context.Context, addr models.Address) []models.MessageSummary {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastAddr = addr
	return f.msgs
}

func (f *fakeInbox) stats() (int, models.Address) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls, f.lastAddr
}

type notification struct {
	chatID int64
	addr   models.Address
	count  int
}

func TestSchedulerDelivers(t *testing.T) {
	sessions := newFakeSessions()
	addr := models.Address{Login: "abc123defg", Domain: "example.com"}
	sessions.set(7, addr)

	inbox := &fakeInbox{msgs: []models.MessageSummary{{ID: 1}, {ID: 2}}}

	delivered := make(chan notification, 1)
	s := NewScheduler(10*time.Millisecond, sessions, inbox, testLogger())
	s.SetNotifier(func(ctx context.Context, chatID int64, addr models.Address, count int) {
		delivered <- notification{chatID: chatID, addr: addr, count: count}
	})
	defer s.Close()

	s.Arm(7, 700)

	select {
	case n := <-delivered:
		assert.Equal(t, int64(700), n.chatID)
		assert.Equal(t, addr, n.addr)
		assert.Equal(t, 2, n.count)
	case <-time.After(time.Second):
		t.Fatal("notification was not delivered")
	}

	calls, _ := inbox.stats()
	assert.Equal(t, 1, calls)
}

func TestSchedulerSkipsWithoutSession(t *testing.T) {
	sessions := newFakeSessions()
	inbox := &fakeInbox{msgs: []models.MessageSummary{{ID: 1}}}

	s := NewScheduler(5*time.Millisecond, sessions, inbox, testLogger())
	s.SetNotifier(func(ctx context.Context, chatID int64, addr models.Address, count int) {
		t.Error("notifier must not fire without a session")
	})

	s.Arm(7, 700)
	s.Close() // waits for the job

	calls, _ := inbox.stats()
	assert.Equal(t, 0, calls, "no session means no provider call")
}

func TestSchedulerSkipsEmptyInbox(t *testing.T) {
	sessions := newFakeSessions()
	sessions.set(7, models.Address{Login: "abc123defg", Domain: "example.com"})
	inbox := &fakeInbox{}

	s := NewScheduler(5*time.Millisecond, sessions, inbox, testLogger())
	s.SetNotifier(func(ctx context.Context, chatID int64, addr models.Address, count int) {
		t.Error("notifier must not fire on an empty inbox")
	})

	s.Arm(7, 700)

	assert.Eventually(t, func() bool {
		calls, _ := inbox.stats()
		return calls == 1
	}, time.Second, 5*time.Millisecond)
	s.Close()
}

// A mailbox created inside the delay window is the one that gets checked,
// not the one active at arm time.
func TestSchedulerReadsCurrentAddressAtFireTime(t *testing.T) {
	sessions := newFakeSessions()
	first := models.Address{Login: "aaaaaaaaaa", Domain: "first.com"}
	second := models.Address{Login: "bbbbbbbbbb", Domain: "second.com"}
	sessions.set(7, first)

	inbox := &fakeInbox{msgs: []models.MessageSummary{{ID: 1}}}

	delivered := make(chan notification, 1)
	s := NewScheduler(50*time.Millisecond, sessions, inbox, testLogger())
	s.SetNotifier(func(ctx context.Context, chatID int64, addr models.Address, count int) {
		delivered <- notification{chatID: chatID, addr: addr, count: count}
	})
	defer s.Close()

	s.Arm(7, 700)
	sessions.set(7, second) // user creates another mailbox before the check fires

	select {
	case n := <-delivered:
		assert.Equal(t, second, n.addr)
	case <-time.After(time.Second):
		t.Fatal("notification was not delivered")
	}

	_, lastAddr := inbox.stats()
	require.Equal(t, second, lastAddr)
}

func TestSchedulerCloseAbortsPendingJobs(t *testing.T) {
	sessions := newFakeSessions()
	sessions.set(7, models.Address{Login: "abc123defg", Domain: "example.com"})
	inbox := &fakeInbox{msgs: []models.MessageSummary{{ID: 1}}}

	s := NewScheduler(time.Hour, sessions, inbox, testLogger())
	s.SetNotifier(func(ctx context.Context, chatID int64, addr models.Address, count int) {
		t.Error("notifier must not fire after close")
	})

	s.Arm(7, 700)

	done := make(chan struct{})
	go func() {
		s.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("close did not drain pending jobs")
	}

	calls, _ := inbox.stats()
	assert.Equal(t, 0, calls)
}
