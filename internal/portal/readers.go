package portal

import (
	"context"
	"fmt"
	"time"

	"github.com/daniilsolovey/community-portal/internal/domain"
)

func (m *Manager) LatestNews(ctx context.Context, communityID string, limit int) ([]domain.NewsArticle, error) {
	if m.useFallback("news") {
		return m.fallback.News(limit), nil
	}

	list, err := m.store.LatestNews(ctx, communityID, limit)
	if err != nil {
		return nil, fmt.Errorf("db get latest news: %w", err)
	}

	return mapRows(list, NewNewsArticle), nil
}

func (m *Manager) TrendingNews(ctx context.Context, communityID string, limit int) ([]domain.NewsArticle, error) {
	if m.useFallback("news") {
		return m.fallback.News(limit), nil
	}

	list, err := m.store.TrendingNews(ctx, communityID, limit)
	if err != nil {
		return nil, fmt.Errorf("db get trending news: %w", err)
	}

	return mapRows(list, NewNewsArticle), nil
}

// NewsBySlug returns a published article and counts the view without waiting for it.
func (m *Manager) NewsBySlug(ctx context.Context, slug string) (*domain.NewsArticle, error) {
	if m.useFallback("news") {
		article := m.fallback.Article(slug)
		return &article, nil
	}

	n, err := m.store.NewsBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get news by slug: %w", err)
	}

	m.incrementViewCountAsync(ctx, n.ID, n.ViewCount)

	article := NewNewsArticle(n)
	return &article, nil
}

// incrementViewCountAsync stores readViews+1 in a detached goroutine. It runs at
// most once and never retries; failures are only logged. The write is based on
// readViews, so concurrent readers of one article can lose increments.
func (m *Manager) incrementViewCountAsync(ctx context.Context, newsID string, readViews int) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.opts.ViewCountTimeout)

	go func() {
		defer cancel()

		err := m.store.SetNewsViewCount(ctx, newsID, readViews+1)
		if err != nil {
			m.logger.Debug("view count update failed", "newsID", newsID, "error", err)
		}

		if m.viewCountDone != nil {
			m.viewCountDone(err)
		}
	}()
}

// UpcomingEvents returns events starting within windowDays from now.
func (m *Manager) UpcomingEvents(ctx context.Context, communityID string, windowDays int) ([]domain.Event, error) {
	if m.useFallback("events") {
		return m.fallback.UpcomingEvents(windowDays), nil
	}

	now := m.now()
	list, err := m.store.EventsBetween(ctx, communityID, now, now.AddDate(0, 0, windowDays))
	if err != nil {
		return nil, fmt.Errorf("db get upcoming events: %w", err)
	}

	return mapRows(list, NewEvent), nil
}

// TodayEvents returns events starting on the current calendar day.
func (m *Manager) TodayEvents(ctx context.Context, communityID string) ([]domain.Event, error) {
	if m.useFallback("events") {
		return m.fallback.TodayEvents(), nil
	}

	now := m.now()
	y, mo, d := now.Date()
	start := time.Date(y, mo, d, 0, 0, 0, 0, now.Location())

	list, err := m.store.EventsBetween(ctx, communityID, start, start.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("db get today events: %w", err)
	}

	return mapRows(list, NewEvent), nil
}

func (m *Manager) EventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	if m.useFallback("events") {
		event := m.fallback.Event(slug)
		return &event, nil
	}

	e, err := m.store.EventBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get event by slug: %w", err)
	}

	event := NewEvent(e)
	return &event, nil
}

func (m *Manager) ActiveBusinesses(ctx context.Context, communityID string, limit int) ([]domain.Business, error) {
	if m.useFallback("businesses") {
		return m.fallback.Businesses(limit), nil
	}

	list, err := m.store.ActiveBusinesses(ctx, communityID, limit)
	if err != nil {
		return nil, fmt.Errorf("db get active businesses: %w", err)
	}

	return mapRows(list, NewBusiness), nil
}

// BusinessBySlug includes opening hours keyed by weekday.
func (m *Manager) BusinessBySlug(ctx context.Context, slug string) (*domain.Business, error) {
	if m.useFallback("businesses") {
		business := m.fallback.Business(slug)
		return &business, nil
	}

	b, err := m.store.BusinessBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get business by slug: %w", err)
	}

	business := NewBusiness(b)
	if business.Hours == nil {
		business.Hours = map[string]domain.Hours{}
	}

	return &business, nil
}

func (m *Manager) ActiveDeals(ctx context.Context, communityID string, limit int) ([]domain.Deal, error) {
	if m.useFallback("deals") {
		return m.fallback.Deals(limit), nil
	}

	list, err := m.store.ActiveDeals(ctx, communityID, limit)
	if err != nil {
		return nil, fmt.Errorf("db get active deals: %w", err)
	}

	return mapRows(list, NewDeal), nil
}

// ActiveClassifieds filters by category when it is not empty.
func (m *Manager) ActiveClassifieds(ctx context.Context, communityID, category string, limit int) ([]domain.ClassifiedListing, error) {
	if m.useFallback("classifieds") {
		return m.fallback.Classifieds(category, limit), nil
	}

	list, err := m.store.ActiveClassifieds(ctx, communityID, category, limit)
	if err != nil {
		return nil, fmt.Errorf("db get active classifieds: %w", err)
	}

	return mapRows(list, NewClassifiedListing), nil
}

func (m *Manager) ActiveAnnouncements(ctx context.Context, communityID string) ([]domain.Announcement, error) {
	if m.useFallback("announcements") {
		return m.fallback.Announcements(), nil
	}

	list, err := m.store.ActiveAnnouncements(ctx, communityID)
	if err != nil {
		return nil, fmt.Errorf("db get active announcements: %w", err)
	}

	return mapRows(list, NewAnnouncement), nil
}

func (m *Manager) Hubs(ctx context.Context, communityID string, limit int) ([]domain.Hub, error) {
	if m.useFallback("hubs") {
		return m.fallback.Hubs(limit), nil
	}

	list, err := m.store.Hubs(ctx, communityID, limit)
	if err != nil {
		return nil, fmt.Errorf("db get hubs: %w", err)
	}

	return mapRows(list, NewHub), nil
}

// HubBySlug includes the hub posts with their comment counts.
func (m *Manager) HubBySlug(ctx context.Context, slug string) (*domain.Hub, error) {
	if m.useFallback("hubs") {
		hub := m.fallback.Hub(slug)
		return &hub, nil
	}

	h, err := m.store.HubBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get hub by slug: %w", err)
	}

	hub := NewHub(h)
	if hub.Posts == nil {
		hub.Posts = []domain.HubPost{}
	}

	return &hub, nil
}

func (m *Manager) RecentMemorials(ctx context.Context, communityID string, limit int) ([]domain.Memorial, error) {
	if m.useFallback("memorials") {
		return m.fallback.Memorials(limit), nil
	}

	list, err := m.store.RecentMemorials(ctx, communityID, limit)
	if err != nil {
		return nil, fmt.Errorf("db get memorials: %w", err)
	}

	return mapRows(list, NewMemorial), nil
}

func (m *Manager) Authors(ctx context.Context, communityID string) ([]domain.Author, error) {
	if m.useFallback("authors") {
		return m.fallback.Authors(), nil
	}

	list, err := m.store.Authors(ctx, communityID)
	if err != nil {
		return nil, fmt.Errorf("db get authors: %w", err)
	}

	return mapRows(list, NewAuthor), nil
}
