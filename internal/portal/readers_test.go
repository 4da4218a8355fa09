package portal

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/community-portal/internal/db"
	"github.com/daniilsolovey/community-portal/internal/domain"
	"github.com/daniilsolovey/community-portal/internal/fallback"
	"github.com/daniilsolovey/community-portal/internal/metrics"
)

func strPtr(s string) *string { return &s }

func TestManager_Unconfigured(t *testing.T) {
	ctx := context.Background()

	calls := 0
	store := &stubStore{
		unconfigured: true,
		latestNewsFunc: func(context.Context, string, int) ([]db.News, error) {
			calls++
			return nil, errors.New("must not be called")
		},
		activeBusinessesFunc: func(context.Context, string, int) ([]db.Business, error) {
			calls++
			return nil, errors.New("must not be called")
		},
	}
	manager := NewManager(store, fallback.New(), metrics.New(prometheus.NewRegistry()), noOpLogger(), Options{})

	news, err := manager.LatestNews(ctx, "downtown-1", 7)
	require.NoError(t, err)
	assert.Len(t, news, 7)
	assert.Equal(t, "news-article-1", news[0].Slug)

	businesses, err := manager.ActiveBusinesses(ctx, "downtown-1", 3)
	require.NoError(t, err)
	assert.Len(t, businesses, 3)

	article, err := manager.NewsBySlug(ctx, "anything")
	require.NoError(t, err)
	assert.Equal(t, "anything", article.Slug)

	events, err := manager.TodayEvents(ctx, "downtown-1")
	require.NoError(t, err)
	assert.Len(t, events, fallback.TodayEventsCount)

	announcements, err := manager.ActiveAnnouncements(ctx, "downtown-1")
	require.NoError(t, err)
	assert.NotNil(t, announcements)
	assert.Empty(t, announcements)

	hub, err := manager.HubBySlug(ctx, "gardening")
	require.NoError(t, err)
	assert.NotEmpty(t, hub.Posts)

	business, err := manager.BusinessBySlug(ctx, "bakery")
	require.NoError(t, err)
	assert.Len(t, business.Hours, 7)

	assert.Equal(t, 0, calls)
}

func TestManager_ActiveBusinesses_Ratings(t *testing.T) {
	store := &stubStore{
		activeBusinessesFunc: func(_ context.Context, communityID string, limit int) ([]db.Business, error) {
			assert.Equal(t, "downtown-1", communityID)
			assert.Equal(t, 6, limit)
			return []db.Business{
				{ID: "business-1", Name: "Alpha", Ratings: []int{4, 5, 3}},
				{ID: "business-2", Name: "Beta"},
				{ID: "business-3", Name: "Gamma", Ratings: []int{5, 4}},
			}, nil
		},
	}

	businesses, err := newTestManager(store).ActiveBusinesses(context.Background(), "downtown-1", 6)
	require.NoError(t, err)
	require.Len(t, businesses, 3)

	require.NotNil(t, businesses[0].AverageRating)
	assert.Equal(t, 4.0, *businesses[0].AverageRating)
	assert.Equal(t, 3, businesses[0].ReviewCount)

	assert.Nil(t, businesses[1].AverageRating)
	assert.Equal(t, 0, businesses[1].ReviewCount)

	require.NotNil(t, businesses[2].AverageRating)
	assert.Equal(t, 4.5, *businesses[2].AverageRating)
}

func TestManager_BusinessBySlug_Hours(t *testing.T) {
	store := &stubStore{
		businessBySlugFunc: func(_ context.Context, slug string) (*db.Business, error) {
			return &db.Business{
				ID:   "business-1",
				Slug: slug,
				Hours: []db.BusinessHours{
					{DayOfWeek: 0, IsClosed: true},
					{DayOfWeek: 1, OpenTime: strPtr("07:00"), CloseTime: strPtr("15:00")},
					{DayOfWeek: 9, OpenTime: strPtr("00:00")},
				},
			}, nil
		},
	}

	business, err := newTestManager(store).BusinessBySlug(context.Background(), "alpha-bakery")
	require.NoError(t, err)

	assert.Equal(t, map[string]domain.Hours{
		"sunday": {Closed: true},
		"monday": {Open: "07:00", Close: "15:00"},
	}, business.Hours)
	assert.Nil(t, business.AverageRating)
}

func TestManager_BusinessBySlug_NoHours(t *testing.T) {
	store := &stubStore{
		businessBySlugFunc: func(_ context.Context, slug string) (*db.Business, error) {
			return &db.Business{ID: "business-2", Slug: slug}, nil
		},
	}

	business, err := newTestManager(store).BusinessBySlug(context.Background(), "beta-books")
	require.NoError(t, err)
	assert.NotNil(t, business.Hours)
	assert.Empty(t, business.Hours)
}

func TestManager_LatestNews_EmbeddedAuthor(t *testing.T) {
	store := &stubStore{
		latestNewsFunc: func(context.Context, string, int) ([]db.News, error) {
			return []db.News{{
				ID:     "news-1",
				Slug:   "park-reopens",
				Author: &db.NewsAuthor{ID: "author-1", Name: "Jane Smith", Bio: strPtr("Reporter")},
			}}, nil
		},
	}

	news, err := newTestManager(store).LatestNews(context.Background(), "downtown-1", 5)
	require.NoError(t, err)
	require.Len(t, news, 1)
	require.NotNil(t, news[0].Author)
	assert.Equal(t, "Jane Smith", news[0].Author.Name)
	assert.Equal(t, "Reporter", news[0].Author.Bio)

	for _, source := range [][]domain.NewsArticle{news, fallback.New().News(1)} {
		raw, err := json.Marshal(source[0])
		require.NoError(t, err)

		var doc struct {
			Author map[string]json.RawMessage `json:"author"`
		}
		require.NoError(t, json.Unmarshal(raw, &doc))
		assert.Contains(t, doc.Author, "name")
		assert.NotContains(t, doc.Author, "articleCount")
	}
}

func TestManager_ActiveAnnouncements_Status(t *testing.T) {
	store := &stubStore{
		activeAnnouncementsFunc: func(context.Context, string) ([]db.Announcement, error) {
			return []db.Announcement{{ID: "announcement-1", Title: "Road works", Priority: 2, Status: "published"}}, nil
		},
	}

	announcements, err := newTestManager(store).ActiveAnnouncements(context.Background(), "downtown-1")
	require.NoError(t, err)
	require.Len(t, announcements, 1)
	assert.Equal(t, domain.AnnouncementStatusPublished, announcements[0].Status)
}

func TestManager_Errors(t *testing.T) {
	ctx := context.Background()
	queryErr := errors.New("connection reset")

	store := &stubStore{
		latestNewsFunc: func(context.Context, string, int) ([]db.News, error) {
			return nil, queryErr
		},
	}
	manager := newTestManager(store)

	_, err := manager.LatestNews(ctx, "downtown-1", 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, queryErr)

	_, err = manager.NewsBySlug(ctx, "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = manager.HubBySlug(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestManager_EmptyListsAreNotNil(t *testing.T) {
	ctx := context.Background()
	manager := newTestManager(&stubStore{})

	news, err := manager.LatestNews(ctx, "downtown-1", 5)
	require.NoError(t, err)
	assert.NotNil(t, news)

	deals, err := manager.ActiveDeals(ctx, "downtown-1", 5)
	require.NoError(t, err)
	assert.NotNil(t, deals)

	authors, err := manager.Authors(ctx, "downtown-1")
	require.NoError(t, err)
	assert.NotNil(t, authors)
}

func TestManager_Events_Windows(t *testing.T) {
	now := time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC)

	var from, to time.Time
	store := &stubStore{
		eventsBetweenFunc: func(_ context.Context, _ string, f, tt time.Time) ([]db.Event, error) {
			from, to = f, tt
			return []db.Event{{ID: "event-1", RSVPCount: 2}}, nil
		},
	}
	manager := newTestManager(store)
	manager.now = func() time.Time { return now }

	events, err := manager.TodayEvents(context.Background(), "downtown-1")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC), to)
	require.Len(t, events, 1)
	assert.Equal(t, 2, events[0].RSVPCount)
	assert.NotNil(t, events[0].HubIDs)

	_, err = manager.UpcomingEvents(context.Background(), "downtown-1", 7)
	require.NoError(t, err)
	assert.Equal(t, now, from)
	assert.Equal(t, now.AddDate(0, 0, 7), to)
}

func TestManager_HubBySlug(t *testing.T) {
	store := &stubStore{
		hubBySlugFunc: func(_ context.Context, slug string) (*db.Hub, error) {
			return &db.Hub{
				ID:          "hub-1",
				Slug:        slug,
				MemberCount: 3,
				Posts: []db.HubPost{
					{ID: "post-1", CommentCount: 2},
					{ID: "post-2"},
				},
			}, nil
		},
	}

	hub, err := newTestManager(store).HubBySlug(context.Background(), "gardening")
	require.NoError(t, err)
	assert.Equal(t, 3, hub.MemberCount)
	require.Len(t, hub.Posts, 2)
	assert.Equal(t, 2, hub.Posts[0].CommentCount)
	assert.Equal(t, 0, hub.Posts[1].CommentCount)
}

func TestManager_NewsBySlug_IncrementsViewCount(t *testing.T) {
	done := make(chan struct{})
	var gotViews atomic.Int64

	store := &stubStore{
		newsBySlugFunc: func(_ context.Context, slug string) (*db.News, error) {
			return &db.News{ID: "news-1", Slug: slug, ViewCount: 41}, nil
		},
		setNewsViewCountFunc: func(ctx context.Context, newsID string, views int) error {
			<-done
			gotViews.Store(int64(views))
			return ctx.Err()
		},
	}

	manager := newTestManager(store)
	finished := make(chan error, 1)
	manager.viewCountDone = func(err error) { finished <- err }

	ctx, cancel := context.WithCancel(context.Background())

	// the update is blocked until done is closed, so the read must return first
	article, err := manager.NewsBySlug(ctx, "park-reopens")
	require.NoError(t, err)
	assert.Equal(t, 41, article.ViewCount)

	// cancelling the request must not cancel the detached update
	cancel()
	close(done)

	select {
	case err := <-finished:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("view count update did not finish")
	}
	assert.Equal(t, int64(42), gotViews.Load())
}

func TestManager_NewsBySlug_IncrementFailureIsIgnored(t *testing.T) {
	store := &stubStore{
		newsBySlugFunc: func(_ context.Context, slug string) (*db.News, error) {
			return &db.News{ID: "news-1", Slug: slug}, nil
		},
		setNewsViewCountFunc: func(context.Context, string, int) error {
			return errors.New("read only replica")
		},
	}

	manager := newTestManager(store)
	finished := make(chan error, 1)
	manager.viewCountDone = func(err error) { finished <- err }

	article, err := manager.NewsBySlug(context.Background(), "park-reopens")
	require.NoError(t, err)
	assert.Equal(t, "news-1", article.ID)

	select {
	case err := <-finished:
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("view count update did not finish")
	}
}
