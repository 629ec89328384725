package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/okto-client/internal/logger"
)

type feedRefreshWorker struct {
	sessions SessionSource
	feed     FeedRefresher
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewFeedRefreshWorker returns a worker that reloads the feed of the signed-in
// user every interval. A non-positive interval disables it: Start does
// nothing.
func NewFeedRefreshWorker(sessions SessionSource, feed FeedRefresher, interval time.Duration, logger *logger.Logger) Worker {
	return &feedRefreshWorker{
		sessions: sessions,
		feed:     feed,
		interval: interval,
		logger:   logger,
	}
}

// Start stops a running job and launches a new ticker goroutine. Ticks while
// no user is authenticated are skipped.
func (w *feedRefreshWorker) Start(ctx context.Context) {
	if w.interval <= 0 {
		return
	}

	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.tick(jobCtx)
			}
		}
	}()

	w.logger.Debug().Str("func", "feedRefreshWorker.Start").Dur("interval", w.interval).Msg("feed refresh started")
}

func (w *feedRefreshWorker) tick(ctx context.Context) {
	session := w.sessions.Snapshot()
	if !session.IsAuthenticated() || session.UserID == nil {
		return
	}

	if err := w.feed.RefreshFeed(ctx, *session.UserID); err != nil {
		w.logger.Err(err).Str("func", "feedRefreshWorker.tick").Int64("user_id", *session.UserID).Msg("periodic feed refresh failed")
	}
}

// Stop cancels the ticker goroutine and waits for it to exit.
func (w *feedRefreshWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
