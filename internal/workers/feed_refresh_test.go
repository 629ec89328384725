package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/okto-client/internal/logger"
	"github.com/MKhiriev/okto-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessions struct {
	mu      sync.Mutex
	session models.Session
}

func (s *stubSessions) Snapshot() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *stubSessions) set(session models.Session) {
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
}

// spyFeed counts RefreshFeed calls and remembers the last user id.
type spyFeed struct {
	calls  atomic.Int64
	userID atomic.Int64
	err    error
}

func (s *spyFeed) RefreshFeed(_ context.Context, userID int64) error {
	s.calls.Add(1)
	s.userID.Store(userID)
	return s.err
}

func authenticated(userID int64) models.Session {
	return models.Session{Status: models.SessionAuthenticated, Token: "tok", UserID: &userID}
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestFeedRefreshWorker_RefreshesSignedInUser(t *testing.T) {
	sessions := &stubSessions{session: authenticated(7)}
	feed := &spyFeed{}
	w := NewFeedRefreshWorker(sessions, feed, 10*time.Millisecond, logger.Nop())

	w.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	w.Stop()

	got := feed.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "RefreshFeed called %d times", got)
	assert.Equal(t, int64(7), feed.userID.Load())
}

func TestFeedRefreshWorker_SkipsAnonymous(t *testing.T) {
	sessions := &stubSessions{session: models.Session{Status: models.SessionAnonymous, Token: "tok"}}
	feed := &spyFeed{}
	w := NewFeedRefreshWorker(sessions, feed, 5*time.Millisecond, logger.Nop())

	w.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, feed.calls.Load())

	sessions.set(authenticated(3))
	assert.Eventually(t, func() bool { return feed.calls.Load() > 0 }, time.Second, 5*time.Millisecond)
	w.Stop()

	assert.Equal(t, int64(3), feed.userID.Load())
}

func TestFeedRefreshWorker_KeepsRunningAfterErrors(t *testing.T) {
	sessions := &stubSessions{session: authenticated(1)}
	feed := &spyFeed{err: errors.New("server down")}
	w := NewFeedRefreshWorker(sessions, feed, 5*time.Millisecond, logger.Nop())

	w.Start(context.Background())
	assert.Eventually(t, func() bool { return feed.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	w.Stop()
}

func TestFeedRefreshWorker_Stop_StopsGoroutine(t *testing.T) {
	sessions := &stubSessions{session: authenticated(1)}
	feed := &spyFeed{}
	w := NewFeedRefreshWorker(sessions, feed, 10*time.Millisecond, logger.Nop())

	w.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	w.Stop()

	callsAfterStop := feed.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, feed.calls.Load(), "no refresh after Stop")
}

func TestFeedRefreshWorker_ContextCancelStops(t *testing.T) {
	sessions := &stubSessions{session: authenticated(1)}
	feed := &spyFeed{}
	w := NewFeedRefreshWorker(sessions, feed, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after context cancel")
	}
}

func TestFeedRefreshWorker_DisabledInterval(t *testing.T) {
	sessions := &stubSessions{session: authenticated(1)}
	feed := &spyFeed{}
	w := NewFeedRefreshWorker(sessions, feed, 0, logger.Nop())

	w.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	w.Stop()

	assert.Zero(t, feed.calls.Load())
}

func TestFeedRefreshWorker_StopBeforeStart(t *testing.T) {
	w := NewFeedRefreshWorker(&stubSessions{}, &spyFeed{}, time.Second, logger.Nop())
	assert.NotPanics(t, func() { w.Stop() })
}

func TestFeedRefreshWorker_RestartReplacesJob(t *testing.T) {
	sessions := &stubSessions{session: authenticated(1)}
	feed := &spyFeed{}
	w := NewFeedRefreshWorker(sessions, feed, 5*time.Millisecond, logger.Nop())
	require.NotNil(t, w)

	w.Start(context.Background())
	w.Start(context.Background())
	assert.Eventually(t, func() bool { return feed.calls.Load() > 0 }, time.Second, 5*time.Millisecond)
	w.Stop()

	after := feed.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, feed.calls.Load(), "a single Stop ends the restarted job")
}
