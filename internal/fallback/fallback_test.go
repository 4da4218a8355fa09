package fallback

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/community-portal/internal/domain"
)

var baseTime = time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)

func newTestGenerator() *Generator {
	return NewWithClock(func() time.Time { return baseTime })
}

func TestGenerator_News(t *testing.T) {
	g := newTestGenerator()

	news := g.News(10)
	require.Len(t, news, 10)

	seen := make(map[string]struct{}, len(news))
	for i, n := range news {
		assert.Equal(t, fmt.Sprintf("news-article-%d", i+1), n.Slug)
		assert.Equal(t, baseTime.Add(-time.Duration(i)*24*time.Hour), n.PublicationDate)
		assert.Equal(t, domain.NewsStatusPublished, n.Status)
		require.NotNil(t, n.Author)
		assert.NotEmpty(t, n.Author.Name)
		assert.Positive(t, n.ViewCount)
		seen[n.Slug] = struct{}{}
	}
	assert.Len(t, seen, 10)

	assert.Empty(t, g.News(0))
	assert.Empty(t, g.News(-1))
}

func TestGenerator_TodayEvents(t *testing.T) {
	g := newTestGenerator()

	events := g.TodayEvents()
	require.Len(t, events, TodayEventsCount)
	for i, e := range events {
		y, m, d := e.StartDate.Date()
		assert.Equal(t, 2024, y)
		assert.Equal(t, time.January, m)
		assert.Equal(t, 14, d)
		assert.NotNil(t, e.HubIDs)
		if i > 0 {
			assert.True(t, e.StartDate.After(events[i-1].StartDate))
		}
	}
}

func TestGenerator_UpcomingEvents(t *testing.T) {
	g := newTestGenerator()

	events := g.UpcomingEvents(7)
	require.Len(t, events, 7)
	for _, e := range events {
		assert.True(t, e.StartDate.After(baseTime))
		assert.False(t, e.StartDate.After(baseTime.Add(7*24*time.Hour)))
	}
}

func TestGenerator_Businesses(t *testing.T) {
	g := newTestGenerator()

	businesses := g.Businesses(6)
	require.Len(t, businesses, 6)
	for _, b := range businesses {
		require.NotNil(t, b.AverageRating)
		assert.GreaterOrEqual(t, *b.AverageRating, 3.0)
		assert.LessOrEqual(t, *b.AverageRating, 5.0)
		assert.Positive(t, b.ReviewCount)
		assert.True(t, b.IsActive)
		assert.Nil(t, b.Hours)
	}

	detail := g.Business("bakery")
	assert.Equal(t, "bakery", detail.Slug)
	assert.Len(t, detail.Hours, 7)
	assert.True(t, detail.Hours["sunday"].Closed)
	assert.Equal(t, "09:00", detail.Hours["monday"].Open)
}

func TestGenerator_Classifieds(t *testing.T) {
	g := newTestGenerator()

	listings := g.Classifieds("jobs", 3)
	require.Len(t, listings, 3)
	for _, l := range listings {
		assert.Equal(t, "jobs", l.Category)
		assert.Equal(t, domain.ClassifiedStatusActive, l.Status)
		assert.NotNil(t, l.User)
	}
}

func TestGenerator_Announcements(t *testing.T) {
	g := newTestGenerator()

	announcements := g.Announcements()
	assert.NotNil(t, announcements)
	assert.Empty(t, announcements)
}

func TestGenerator_Hub(t *testing.T) {
	g := newTestGenerator()

	hub := g.Hub("gardening")
	assert.Equal(t, "gardening", hub.Slug)
	assert.Len(t, hub.Posts, 3)
	assert.Positive(t, hub.MemberCount)

	for _, h := range g.Hubs(4) {
		assert.Empty(t, h.Posts)
	}
}

func TestGenerator_Deals_Memorials_Authors(t *testing.T) {
	g := newTestGenerator()

	deals := g.Deals(3)
	require.Len(t, deals, 3)
	for _, d := range deals {
		assert.True(t, d.ValidFrom.Before(d.ValidUntil))
		require.NotNil(t, d.Business)
		assert.NotEmpty(t, d.Business.Name)
	}

	memorials := g.Memorials(2)
	require.Len(t, memorials, 2)
	assert.True(t, memorials[0].DeathDate.After(memorials[1].DeathDate))

	authors := g.Authors()
	assert.Len(t, authors, AuthorsCount)
	for _, a := range authors {
		assert.Positive(t, a.ArticleCount)
	}
}
