package portal

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/daniilsolovey/community-portal/internal/domain"
)

const (
	snippetLength = 160

	// fallbackSearchPool is how many generated rows per category an unconfigured
	// store searches through.
	fallbackSearchPool = 30
)

// searchOrder is the fixed concatenation order of categories.
var searchOrder = []domain.SearchScope{
	domain.ScopeNews,
	domain.ScopeEvents,
	domain.ScopeBusinesses,
	domain.ScopeAnnouncements,
}

type searchFunc func(ctx context.Context, q domain.SearchQuery) ([]domain.SearchResult, error)

// Search runs one query per requested category, concurrently for ScopeAll.
// A failing category contributes no results and is never reported to the
// caller; the only error is domain.ErrInvalidParams.
func (m *Manager) Search(ctx context.Context, params domain.SearchParams) (*domain.SearchResponse, error) {
	p, err := params.Normalize()
	if err != nil {
		return nil, err
	}

	q := domain.SearchQuery{
		Text:        strings.TrimSpace(p.Query),
		Since:       p.TimeFilter.Since(m.now()),
		CommunityID: p.CommunityID,
		Limit:       p.Limit,
		Offset:      p.Offset(),
	}

	categories := searchOrder
	if p.Scope != domain.ScopeAll {
		categories = []domain.SearchScope{p.Scope}
	}

	perCategory := make([][]domain.SearchResult, len(categories))

	var wg sync.WaitGroup
	for i, category := range categories {
		wg.Add(1)
		go func() {
			defer wg.Done()
			perCategory[i] = m.searchCategory(ctx, category, q)
		}()
	}
	wg.Wait()

	results := lo.Flatten(perCategory)
	sortResults(results, p.SortBy)

	return &domain.SearchResponse{
		Results: results,
		Total:   len(results),
		Page:    p.Page,
		HasMore: len(results) >= p.Limit,
	}, nil
}

// searchCategory isolates a single branch: errors and timeouts become an empty list.
func (m *Manager) searchCategory(ctx context.Context, category domain.SearchScope, q domain.SearchQuery) []domain.SearchResult {
	var results []domain.SearchResult
	err := m.branch(ctx, func(ctx context.Context) (err error) {
		results, err = m.categorySearch(category)(ctx, q)
		return err
	})
	if err != nil {
		m.logger.Warn("search category failed", "category", category, "query", q.Text, "error", err)
		m.metrics.SearchBranchFailed(string(category))
		return []domain.SearchResult{}
	}

	return results
}

func (m *Manager) categorySearch(category domain.SearchScope) searchFunc {
	switch category {
	case domain.ScopeNews:
		return m.searchNews
	case domain.ScopeEvents:
		return m.searchEvents
	case domain.ScopeBusinesses:
		return m.searchBusinesses
	case domain.ScopeAnnouncements:
		return m.searchAnnouncements
	}

	return func(context.Context, domain.SearchQuery) ([]domain.SearchResult, error) {
		return nil, fmt.Errorf("search category %q: %w", category, domain.ErrInvalidParams)
	}
}

func (m *Manager) searchNews(ctx context.Context, q domain.SearchQuery) ([]domain.SearchResult, error) {
	if m.useFallback("news") {
		news := lo.Filter(m.fallback.News(fallbackSearchPool), func(n domain.NewsArticle, _ int) bool {
			return matches(q, n.PublicationDate, n.Title, n.Body)
		})
		return lo.Map(paginate(news, q), func(n domain.NewsArticle, _ int) domain.SearchResult {
			return newsResult(n)
		}), nil
	}

	list, err := m.store.SearchNews(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("db search news: %w", err)
	}

	return lo.Map(mapRows(list, NewNewsArticle), func(n domain.NewsArticle, _ int) domain.SearchResult {
		return newsResult(n)
	}), nil
}

func (m *Manager) searchEvents(ctx context.Context, q domain.SearchQuery) ([]domain.SearchResult, error) {
	if m.useFallback("events") {
		events := lo.Filter(m.fallback.UpcomingEvents(fallbackSearchPool), func(e domain.Event, _ int) bool {
			return matches(q, e.StartDate, e.Title, e.Description, e.Location)
		})
		return lo.Map(paginate(events, q), func(e domain.Event, _ int) domain.SearchResult {
			return eventResult(e)
		}), nil
	}

	list, err := m.store.SearchEvents(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("db search events: %w", err)
	}

	return lo.Map(mapRows(list, NewEvent), func(e domain.Event, _ int) domain.SearchResult {
		return eventResult(e)
	}), nil
}

func (m *Manager) searchBusinesses(ctx context.Context, q domain.SearchQuery) ([]domain.SearchResult, error) {
	if m.useFallback("businesses") {
		businesses := lo.Filter(m.fallback.Businesses(fallbackSearchPool), func(b domain.Business, _ int) bool {
			return matches(q, b.CreatedAt, b.Name, b.Description)
		})
		return lo.Map(paginate(businesses, q), func(b domain.Business, _ int) domain.SearchResult {
			return businessResult(b)
		}), nil
	}

	list, err := m.store.SearchBusinesses(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("db search businesses: %w", err)
	}

	return lo.Map(mapRows(list, NewBusiness), func(b domain.Business, _ int) domain.SearchResult {
		return businessResult(b)
	}), nil
}

func (m *Manager) searchAnnouncements(ctx context.Context, q domain.SearchQuery) ([]domain.SearchResult, error) {
	if m.useFallback("announcements") {
		return []domain.SearchResult{}, nil
	}

	list, err := m.store.SearchAnnouncements(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("db search announcements: %w", err)
	}

	return lo.Map(mapRows(list, NewAnnouncement), func(a domain.Announcement, _ int) domain.SearchResult {
		return announcementResult(a)
	}), nil
}

// matches is the in-memory counterpart of the store's ILIKE match.
func matches(q domain.SearchQuery, at time.Time, fields ...string) bool {
	if q.Since != nil && at.Before(*q.Since) {
		return false
	}

	text := strings.ToLower(q.Text)
	return lo.SomeBy(fields, func(f string) bool {
		return strings.Contains(strings.ToLower(f), text)
	})
}

func paginate[T any](items []T, q domain.SearchQuery) []T {
	return lo.Subset(items, q.Offset, uint(q.Limit))
}

// sortResults orders merged results in place. Relevance keeps the category
// concatenation order. Ties keep their relative order.
func sortResults(results []domain.SearchResult, sortBy domain.SortBy) {
	switch sortBy {
	case domain.SortRecent:
		slices.SortStableFunc(results, func(a, b domain.SearchResult) int {
			return b.At.Compare(a.At)
		})
	case domain.SortPopular:
		slices.SortStableFunc(results, func(a, b domain.SearchResult) int {
			return b.Popularity() - a.Popularity()
		})
	}
}

func snippet(text string) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= snippetLength {
		return string(runes)
	}
	return string(runes[:snippetLength])
}

func newsResult(n domain.NewsArticle) domain.SearchResult {
	views := n.ViewCount
	return domain.SearchResult{
		ID:      n.ID,
		Type:    domain.ResultNews,
		Title:   n.Title,
		Snippet: snippet(n.Body),
		Image:   n.ImageURL,
		Date:    n.PublicationDate.Format(time.RFC3339),
		URL:     "/news/" + n.Slug,
		Views:   &views,
		At:      n.PublicationDate,
	}
}

func eventResult(e domain.Event) domain.SearchResult {
	return domain.SearchResult{
		ID:        e.ID,
		Type:      domain.ResultEvent,
		Title:     e.Title,
		Snippet:   snippet(e.Description),
		Image:     e.ImageURL,
		Date:      e.StartDate.Format(time.RFC3339),
		URL:       "/events/" + e.Slug,
		Organizer: e.Organizer,
		Location:  e.Location,
		At:        e.StartDate,
	}
}

func businessResult(b domain.Business) domain.SearchResult {
	reviews := b.ReviewCount
	return domain.SearchResult{
		ID:          b.ID,
		Type:        domain.ResultBusiness,
		Title:       b.Name,
		Snippet:     snippet(b.Description),
		Image:       b.ImageURL,
		Date:        b.CreatedAt.Format(time.RFC3339),
		URL:         "/businesses/" + b.Slug,
		Location:    b.Address,
		Rating:      b.AverageRating,
		ReviewCount: &reviews,
		Hours:       b.Hours,
		At:          b.CreatedAt,
	}
}

func announcementResult(a domain.Announcement) domain.SearchResult {
	priority := a.Priority
	return domain.SearchResult{
		ID:       a.ID,
		Type:     domain.ResultAnnouncement,
		Title:    a.Title,
		Snippet:  snippet(a.Body),
		Date:     a.PublicationDate.Format(time.RFC3339),
		URL:      "/announcements/" + a.ID,
		Priority: &priority,
		At:       a.PublicationDate,
	}
}
