package portal

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/daniilsolovey/community-portal/internal/db"
	"github.com/daniilsolovey/community-portal/internal/domain"
	"github.com/daniilsolovey/community-portal/internal/fallback"
)

// noOpLogger creates a logger that discards all output for tests
func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

// stubStore is a manual stub implementation of Store. Unset funcs return empty results.
type stubStore struct {
	unconfigured bool

	latestNewsFunc          func(ctx context.Context, communityID string, limit int) ([]db.News, error)
	trendingNewsFunc        func(ctx context.Context, communityID string, limit int) ([]db.News, error)
	newsBySlugFunc          func(ctx context.Context, slug string) (*db.News, error)
	setNewsViewCountFunc    func(ctx context.Context, newsID string, views int) error
	eventsBetweenFunc       func(ctx context.Context, communityID string, from, to time.Time) ([]db.Event, error)
	eventBySlugFunc         func(ctx context.Context, slug string) (*db.Event, error)
	activeBusinessesFunc    func(ctx context.Context, communityID string, limit int) ([]db.Business, error)
	businessBySlugFunc      func(ctx context.Context, slug string) (*db.Business, error)
	activeDealsFunc         func(ctx context.Context, communityID string, limit int) ([]db.Deal, error)
	activeClassifiedsFunc   func(ctx context.Context, communityID, category string, limit int) ([]db.Classified, error)
	activeAnnouncementsFunc func(ctx context.Context, communityID string) ([]db.Announcement, error)
	hubsFunc                func(ctx context.Context, communityID string, limit int) ([]db.Hub, error)
	hubBySlugFunc           func(ctx context.Context, slug string) (*db.Hub, error)
	recentMemorialsFunc     func(ctx context.Context, communityID string, limit int) ([]db.Memorial, error)
	authorsFunc             func(ctx context.Context, communityID string) ([]db.Author, error)
	searchNewsFunc          func(ctx context.Context, sq domain.SearchQuery) ([]db.News, error)
	searchEventsFunc        func(ctx context.Context, sq domain.SearchQuery) ([]db.Event, error)
	searchBusinessesFunc    func(ctx context.Context, sq domain.SearchQuery) ([]db.Business, error)
	searchAnnouncementsFunc func(ctx context.Context, sq domain.SearchQuery) ([]db.Announcement, error)
}

func (s *stubStore) Configured() bool {
	return !s.unconfigured
}

func (s *stubStore) LatestNews(ctx context.Context, communityID string, limit int) ([]db.News, error) {
	if s.latestNewsFunc != nil {
		return s.latestNewsFunc(ctx, communityID, limit)
	}
	return nil, nil
}

func (s *stubStore) TrendingNews(ctx context.Context, communityID string, limit int) ([]db.News, error) {
	if s.trendingNewsFunc != nil {
		return s.trendingNewsFunc(ctx, communityID, limit)
	}
	return nil, nil
}

func (s *stubStore) NewsBySlug(ctx context.Context, slug string) (*db.News, error) {
	if s.newsBySlugFunc != nil {
		return s.newsBySlugFunc(ctx, slug)
	}
	return nil, domain.ErrNotFound
}

func (s *stubStore) SetNewsViewCount(ctx context.Context, newsID string, views int) error {
	if s.setNewsViewCountFunc != nil {
		return s.setNewsViewCountFunc(ctx, newsID, views)
	}
	return nil
}

func (s *stubStore) EventsBetween(ctx context.Context, communityID string, from, to time.Time) ([]db.Event, error) {
	if s.eventsBetweenFunc != nil {
		return s.eventsBetweenFunc(ctx, communityID, from, to)
	}
	return nil, nil
}

func (s *stubStore) EventBySlug(ctx context.Context, slug string) (*db.Event, error) {
	if s.eventBySlugFunc != nil {
		return s.eventBySlugFunc(ctx, slug)
	}
	return nil, domain.ErrNotFound
}

func (s *stubStore) ActiveBusinesses(ctx context.Context, communityID string, limit int) ([]db.Business, error) {
	if s.activeBusinessesFunc != nil {
		return s.activeBusinessesFunc(ctx, communityID, limit)
	}
	return nil, nil
}

func (s *stubStore) BusinessBySlug(ctx context.Context, slug string) (*db.Business, error) {
	if s.businessBySlugFunc != nil {
		return s.businessBySlugFunc(ctx, slug)
	}
	return nil, domain.ErrNotFound
}

func (s *stubStore) ActiveDeals(ctx context.Context, communityID string, limit int) ([]db.Deal, error) {
	if s.activeDealsFunc != nil {
		return s.activeDealsFunc(ctx, communityID, limit)
	}
	return nil, nil
}

func (s *stubStore) ActiveClassifieds(ctx context.Context, communityID, category string, limit int) ([]db.Classified, error) {
	if s.activeClassifiedsFunc != nil {
		return s.activeClassifiedsFunc(ctx, communityID, category, limit)
	}
	return nil, nil
}

func (s *stubStore) ActiveAnnouncements(ctx context.Context, communityID string) ([]db.Announcement, error) {
	if s.activeAnnouncementsFunc != nil {
		return s.activeAnnouncementsFunc(ctx, communityID)
	}
	return nil, nil
}

func (s *stubStore) Hubs(ctx context.Context, communityID string, limit int) ([]db.Hub, error) {
	if s.hubsFunc != nil {
		return s.hubsFunc(ctx, communityID, limit)
	}
	return nil, nil
}

func (s *stubStore) HubBySlug(ctx context.Context, slug string) (*db.Hub, error) {
	if s.hubBySlugFunc != nil {
		return s.hubBySlugFunc(ctx, slug)
	}
	return nil, domain.ErrNotFound
}

func (s *stubStore) RecentMemorials(ctx context.Context, communityID string, limit int) ([]db.Memorial, error) {
	if s.recentMemorialsFunc != nil {
		return s.recentMemorialsFunc(ctx, communityID, limit)
	}
	return nil, nil
}

func (s *stubStore) Authors(ctx context.Context, communityID string) ([]db.Author, error) {
	if s.authorsFunc != nil {
		return s.authorsFunc(ctx, communityID)
	}
	return nil, nil
}

func (s *stubStore) SearchNews(ctx context.Context, sq domain.SearchQuery) ([]db.News, error) {
	if s.searchNewsFunc != nil {
		return s.searchNewsFunc(ctx, sq)
	}
	return nil, nil
}

func (s *stubStore) SearchEvents(ctx context.Context, sq domain.SearchQuery) ([]db.Event, error) {
	if s.searchEventsFunc != nil {
		return s.searchEventsFunc(ctx, sq)
	}
	return nil, nil
}

func (s *stubStore) SearchBusinesses(ctx context.Context, sq domain.SearchQuery) ([]db.Business, error) {
	if s.searchBusinessesFunc != nil {
		return s.searchBusinessesFunc(ctx, sq)
	}
	return nil, nil
}

func (s *stubStore) SearchAnnouncements(ctx context.Context, sq domain.SearchQuery) ([]db.Announcement, error) {
	if s.searchAnnouncementsFunc != nil {
		return s.searchAnnouncementsFunc(ctx, sq)
	}
	return nil, nil
}

func newTestManager(store Store) *Manager {
	return NewManager(store, fallback.New(), nil, noOpLogger(), Options{BranchTimeout: time.Second})
}
