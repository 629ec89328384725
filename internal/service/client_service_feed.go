package service

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/okto-client/internal/adapter"
	"github.com/MKhiriev/okto-client/internal/config"
	"github.com/MKhiriev/okto-client/internal/logger"
	"github.com/MKhiriev/okto-client/models"
)

type clientFeedService struct {
	adapter  adapter.ServerAdapter
	ids      IDGenerator
	pageSize int

	mu    sync.RWMutex
	state models.FeedState
	// generation is bumped by Reset; loads started under an older
	// generation are discarded.
	generation uint64

	publishMu sync.Mutex
	observers observable[models.FeedState]

	logger *logger.Logger
}

func NewClientFeedService(serverAdapter adapter.ServerAdapter, ids IDGenerator, feedCfg config.ClientFeed, logger *logger.Logger) ClientFeedService {
	pageSize := feedCfg.PageSize
	if pageSize <= 0 {
		pageSize = config.DefaultPageSize
	}

	return &clientFeedService{
		adapter:  serverAdapter,
		ids:      ids,
		pageSize: pageSize,
		state:    models.FeedState{SelectedCategory: models.CategoryForYou},
		logger:   logger,
	}
}

func (f *clientFeedService) LoadFeed(ctx context.Context, userID int64) error {
	f.mu.Lock()
	generation := f.generation
	f.state.Loading = true
	f.state.ErrorMessage = ""
	f.mu.Unlock()
	f.publish()

	var (
		articles []models.NewsArticle
		insights []models.Insight
		sources  []string
	)

	// wait for all three; the first error wins, the others are discarded
	var g errgroup.Group
	g.Go(func() error {
		a, err := f.adapter.GetNewsFeed(ctx, userID, f.pageSize)
		if err != nil {
			return fmt.Errorf("load articles: %w", err)
		}
		articles = a
		return nil
	})
	g.Go(func() error {
		in, err := f.adapter.GetInsights(ctx, userID)
		if err != nil {
			return fmt.Errorf("load insights: %w", err)
		}
		insights = in
		return nil
	})
	g.Go(func() error {
		src, err := f.adapter.GetNewsSources(ctx)
		if err != nil {
			return fmt.Errorf("load sources: %w", err)
		}
		sources = src
		return nil
	})

	if err := g.Wait(); err != nil {
		f.logger.Err(err).Str("func", "clientFeedService.LoadFeed").Int64("user_id", userID).Msg("error loading feed")
		f.mu.Lock()
		if f.generation != generation {
			f.mu.Unlock()
			return ErrSessionChanged
		}
		f.state.Loading = false
		f.state.ErrorMessage = UserMessage(err)
		f.mu.Unlock()
		f.publish()
		return err
	}

	for i := range insights {
		insights[i].ID = f.ids.Generate()
	}

	f.mu.Lock()
	if f.generation != generation {
		f.mu.Unlock()
		f.logger.Debug().Str("func", "clientFeedService.LoadFeed").Int64("user_id", userID).Msg("feed reset during load, result discarded")
		return ErrSessionChanged
	}
	f.state.Articles = articles
	f.state.Insights = insights
	f.state.Sources = sources
	f.state.Loading = false
	f.state.ErrorMessage = ""
	f.mu.Unlock()
	f.publish()

	f.logger.Debug().Str("func", "clientFeedService.LoadFeed").
		Int("articles", len(articles)).Int("insights", len(insights)).Int("sources", len(sources)).
		Msg("feed loaded")

	return nil
}

func (f *clientFeedService) RefreshFeed(ctx context.Context, userID int64) error {
	return f.LoadFeed(ctx, userID)
}

func (f *clientFeedService) ManualRefreshNews(ctx context.Context) error {
	if err := f.adapter.RefreshNews(ctx); err != nil {
		f.logger.Err(err).Str("func", "clientFeedService.ManualRefreshNews").Msg("error refreshing news")
		return fmt.Errorf("refresh news: %w", err)
	}
	return nil
}

func (f *clientFeedService) FilterByCategory(label string) []models.NewsArticle {
	f.mu.RLock()
	articles := f.state.Articles
	f.mu.RUnlock()

	return models.FilterArticlesByCategory(articles, label)
}

func (f *clientFeedService) SelectCategory(label string) error {
	if !models.IsKnownCategory(label) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, label)
	}

	f.mu.Lock()
	f.state.SelectedCategory = label
	f.mu.Unlock()
	f.publish()

	return nil
}

func (f *clientFeedService) Reset() {
	f.mu.Lock()
	f.generation++
	f.state = models.FeedState{SelectedCategory: models.CategoryForYou}
	f.mu.Unlock()
	f.publish()
}

func (f *clientFeedService) Snapshot() models.FeedState {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state
}

func (f *clientFeedService) Subscribe(listener func(models.FeedState)) func() {
	return f.observers.subscribe(listener)
}

func (f *clientFeedService) publish() {
	f.publishMu.Lock()
	defer f.publishMu.Unlock()
	f.observers.emit(f.Snapshot())
}
