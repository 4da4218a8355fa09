package portal

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/community-portal/internal/db"
	"github.com/daniilsolovey/community-portal/internal/domain"
	"github.com/daniilsolovey/community-portal/internal/fallback"
	"github.com/daniilsolovey/community-portal/internal/metrics"
)

var searchNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func searchStore() *stubStore {
	return &stubStore{
		searchNewsFunc: func(context.Context, domain.SearchQuery) ([]db.News, error) {
			return []db.News{
				{ID: "news-1", Slug: "park-reopens", Title: "Park reopens", Body: "The park", PublicationDate: searchNow.Add(-time.Hour), ViewCount: 10},
				{ID: "news-2", Slug: "park-budget", Title: "Park budget", Body: "Budget", PublicationDate: searchNow.Add(-48 * time.Hour), ViewCount: 90},
			}, nil
		},
		searchEventsFunc: func(context.Context, domain.SearchQuery) ([]db.Event, error) {
			return []db.Event{
				{ID: "event-1", Slug: "yoga", Title: "Yoga in the park", Organizer: "Yoga Club", Location: "Riverside Park", StartDate: searchNow.Add(24 * time.Hour)},
			}, nil
		},
		searchBusinessesFunc: func(context.Context, domain.SearchQuery) ([]db.Business, error) {
			return []db.Business{
				{ID: "business-1", Slug: "park-cafe", Name: "Park Cafe", Ratings: []int{4, 5, 3}, CreatedAt: searchNow.Add(-24 * time.Hour)},
			}, nil
		},
		searchAnnouncementsFunc: func(context.Context, domain.SearchQuery) ([]db.Announcement, error) {
			return []db.Announcement{
				{ID: "announcement-1", Title: "Park closed", Priority: 5, PublicationDate: searchNow.Add(-30 * time.Minute)},
			}, nil
		},
	}
}

func newSearchManager(store Store, m *metrics.Metrics) *Manager {
	manager := NewManager(store, fallback.NewWithClock(func() time.Time { return searchNow }), m, noOpLogger(), Options{BranchTimeout: time.Second})
	manager.now = func() time.Time { return searchNow }
	return manager
}

func resultIDs(results []domain.SearchResult) []string {
	ids := make([]string, len(results))
	for i := range results {
		ids[i] = results[i].ID
	}
	return ids
}

func TestManager_Search_Relevance(t *testing.T) {
	resp, err := newSearchManager(searchStore(), nil).Search(context.Background(), domain.SearchParams{Query: "park"})
	require.NoError(t, err)

	assert.Equal(t, []string{"news-1", "news-2", "event-1", "business-1", "announcement-1"}, resultIDs(resp.Results))
	assert.Equal(t, 5, resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.False(t, resp.HasMore)

	news := resp.Results[0]
	assert.Equal(t, domain.ResultNews, news.Type)
	assert.Equal(t, "/news/park-reopens", news.URL)
	assert.Equal(t, searchNow.Add(-time.Hour).Format(time.RFC3339), news.Date)
	require.NotNil(t, news.Views)
	assert.Equal(t, 10, *news.Views)

	event := resp.Results[2]
	assert.Equal(t, domain.ResultEvent, event.Type)
	assert.Equal(t, "Yoga Club", event.Organizer)
	assert.Equal(t, "Riverside Park", event.Location)

	business := resp.Results[3]
	require.NotNil(t, business.Rating)
	assert.Equal(t, 4.0, *business.Rating)
	require.NotNil(t, business.ReviewCount)
	assert.Equal(t, 3, *business.ReviewCount)

	announcement := resp.Results[4]
	require.NotNil(t, announcement.Priority)
	assert.Equal(t, 5, *announcement.Priority)
}

func TestManager_Search_Sorting(t *testing.T) {
	tests := []struct {
		sortBy domain.SortBy
		want   []string
	}{
		{sortBy: domain.SortRecent, want: []string{"event-1", "announcement-1", "news-1", "business-1", "news-2"}},
		{sortBy: domain.SortPopular, want: []string{"news-2", "news-1", "event-1", "business-1", "announcement-1"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.sortBy), func(t *testing.T) {
			resp, err := newSearchManager(searchStore(), nil).Search(context.Background(), domain.SearchParams{Query: "park", SortBy: tt.sortBy})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resultIDs(resp.Results))
		})
	}
}

func TestManager_Search_RecentIsStable(t *testing.T) {
	same := searchNow.Add(-time.Hour)
	store := &stubStore{
		searchNewsFunc: func(context.Context, domain.SearchQuery) ([]db.News, error) {
			return []db.News{
				{ID: "news-a", PublicationDate: same},
				{ID: "news-b", PublicationDate: searchNow},
				{ID: "news-c", PublicationDate: same},
				{ID: "news-d", PublicationDate: same},
			}, nil
		},
	}

	resp, err := newSearchManager(store, nil).Search(context.Background(), domain.SearchParams{
		Scope:  domain.ScopeNews,
		SortBy: domain.SortRecent,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"news-b", "news-a", "news-c", "news-d"}, resultIDs(resp.Results))

	for i := 1; i < len(resp.Results); i++ {
		assert.False(t, resp.Results[i].At.After(resp.Results[i-1].At))
	}
}

func TestManager_Search_PartialDegradation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	store := searchStore()
	store.searchEventsFunc = func(context.Context, domain.SearchQuery) ([]db.Event, error) {
		return nil, errors.New("events index corrupted")
	}

	resp, err := newSearchManager(store, m).Search(context.Background(), domain.SearchParams{Query: "park"})
	require.NoError(t, err)
	assert.Equal(t, []string{"news-1", "news-2", "business-1", "announcement-1"}, resultIDs(resp.Results))
	for _, r := range resp.Results {
		assert.NotEqual(t, domain.ResultEvent, r.Type)
	}

	count, err := testutil.GatherAndCount(reg, "portal_search_branch_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestManager_Search_SlowBranchTimesOut(t *testing.T) {
	store := searchStore()
	store.searchBusinessesFunc = func(ctx context.Context, _ domain.SearchQuery) ([]db.Business, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	manager := newSearchManager(store, nil)
	manager.opts.BranchTimeout = 50 * time.Millisecond

	resp, err := manager.Search(context.Background(), domain.SearchParams{Query: "park"})
	require.NoError(t, err)
	assert.Equal(t, []string{"news-1", "news-2", "event-1", "announcement-1"}, resultIDs(resp.Results))
}

func TestManager_Search_SingleScope(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []string
	)
	record := func(name string) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, name)
	}

	store := &stubStore{
		searchNewsFunc: func(context.Context, domain.SearchQuery) ([]db.News, error) {
			record("news")
			return nil, nil
		},
		searchEventsFunc: func(context.Context, domain.SearchQuery) ([]db.Event, error) {
			record("events")
			return []db.Event{{ID: "event-1"}}, nil
		},
		searchBusinessesFunc: func(context.Context, domain.SearchQuery) ([]db.Business, error) {
			record("businesses")
			return nil, nil
		},
	}

	resp, err := newSearchManager(store, nil).Search(context.Background(), domain.SearchParams{Scope: domain.ScopeEvents})
	require.NoError(t, err)
	assert.Equal(t, []string{"events"}, calls)
	assert.Equal(t, []string{"event-1"}, resultIDs(resp.Results))
}

func TestManager_Search_Query(t *testing.T) {
	community := "downtown-1"

	var got domain.SearchQuery
	store := &stubStore{
		searchNewsFunc: func(_ context.Context, q domain.SearchQuery) ([]db.News, error) {
			got = q
			return []db.News{{ID: "news-1"}, {ID: "news-2"}}, nil
		},
	}

	resp, err := newSearchManager(store, nil).Search(context.Background(), domain.SearchParams{
		Query:       "  park  ",
		Scope:       domain.ScopeNews,
		TimeFilter:  domain.TimeWeek,
		Page:        3,
		Limit:       2,
		CommunityID: &community,
	})
	require.NoError(t, err)

	assert.Equal(t, "park", got.Text)
	assert.Equal(t, 2, got.Limit)
	assert.Equal(t, 4, got.Offset)
	require.NotNil(t, got.CommunityID)
	assert.Equal(t, community, *got.CommunityID)
	require.NotNil(t, got.Since)
	assert.Equal(t, searchNow.Add(-7*24*time.Hour), *got.Since)

	assert.Equal(t, 3, resp.Page)
	assert.Equal(t, 2, resp.Total)
	assert.True(t, resp.HasMore)
}

func TestManager_Search_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params domain.SearchParams
	}{
		{name: "unknown sort", params: domain.SearchParams{SortBy: "random"}},
		{name: "offset overflow", params: domain.SearchParams{Scope: domain.ScopeNews, Limit: 5, Page: math.MaxInt/5 + 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			store := &stubStore{
				searchNewsFunc: func(context.Context, domain.SearchQuery) ([]db.News, error) {
					called = true
					return nil, nil
				},
			}

			_, err := newSearchManager(store, nil).Search(context.Background(), tt.params)
			assert.ErrorIs(t, err, domain.ErrInvalidParams)
			assert.False(t, called)
		})
	}
}

func TestManager_Search_Unconfigured(t *testing.T) {
	manager := newSearchManager(&stubStore{unconfigured: true}, nil)
	ctx := context.Background()

	resp, err := manager.Search(ctx, domain.SearchParams{Query: "COMMUNITY UPDATE", Scope: domain.ScopeNews, Limit: 5})
	require.NoError(t, err)
	require.Len(t, resp.Results, 5)
	assert.Equal(t, "/news/news-article-1", resp.Results[0].URL)
	assert.True(t, resp.HasMore)

	page2, err := manager.Search(ctx, domain.SearchParams{Query: "community update", Scope: domain.ScopeNews, Limit: 5, Page: 2})
	require.NoError(t, err)
	require.Len(t, page2.Results, 5)
	assert.Equal(t, "/news/news-article-6", page2.Results[0].URL)

	week, err := manager.Search(ctx, domain.SearchParams{Scope: domain.ScopeNews, TimeFilter: domain.TimeWeek, Limit: 100})
	require.NoError(t, err)
	for _, r := range week.Results {
		assert.False(t, r.At.Before(searchNow.Add(-7*24*time.Hour)), r.Date)
	}
	assert.NotEmpty(t, week.Results)

	past, err := manager.Search(ctx, domain.SearchParams{Scope: domain.ScopeNews, Limit: 5, Page: 100})
	require.NoError(t, err)
	assert.NotNil(t, past.Results)
	assert.Empty(t, past.Results)

	_, err = manager.Search(ctx, domain.SearchParams{Scope: domain.ScopeNews, Limit: 5, Page: math.MaxInt/5 + 2})
	assert.ErrorIs(t, err, domain.ErrInvalidParams)

	none, err := manager.Search(ctx, domain.SearchParams{Query: "no such thing"})
	require.NoError(t, err)
	assert.NotNil(t, none.Results)
	assert.Empty(t, none.Results)
	assert.False(t, none.HasMore)
}

func TestSnippet(t *testing.T) {
	short := "Short body"
	assert.Equal(t, short, snippet("  "+short+"  "))

	long := strings.Repeat("é", snippetLength+10)
	got := snippet(long)
	assert.Equal(t, snippetLength, len([]rune(got)))
}
