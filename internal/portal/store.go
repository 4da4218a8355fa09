package portal

import (
	"context"
	"time"

	"github.com/daniilsolovey/community-portal/internal/db"
	"github.com/daniilsolovey/community-portal/internal/domain"
)

// Store is the read capability the portal needs. *db.Repository implements it.
type Store interface {
	Configured() bool

	LatestNews(ctx context.Context, communityID string, limit int) ([]db.News, error)
	TrendingNews(ctx context.Context, communityID string, limit int) ([]db.News, error)
	NewsBySlug(ctx context.Context, slug string) (*db.News, error)
	SetNewsViewCount(ctx context.Context, newsID string, views int) error

	EventsBetween(ctx context.Context, communityID string, from, to time.Time) ([]db.Event, error)
	EventBySlug(ctx context.Context, slug string) (*db.Event, error)

	ActiveBusinesses(ctx context.Context, communityID string, limit int) ([]db.Business, error)
	BusinessBySlug(ctx context.Context, slug string) (*db.Business, error)

	ActiveDeals(ctx context.Context, communityID string, limit int) ([]db.Deal, error)
	ActiveClassifieds(ctx context.Context, communityID, category string, limit int) ([]db.Classified, error)
	ActiveAnnouncements(ctx context.Context, communityID string) ([]db.Announcement, error)

	Hubs(ctx context.Context, communityID string, limit int) ([]db.Hub, error)
	HubBySlug(ctx context.Context, slug string) (*db.Hub, error)
	RecentMemorials(ctx context.Context, communityID string, limit int) ([]db.Memorial, error)
	Authors(ctx context.Context, communityID string) ([]db.Author, error)

	SearchNews(ctx context.Context, sq domain.SearchQuery) ([]db.News, error)
	SearchEvents(ctx context.Context, sq domain.SearchQuery) ([]db.Event, error)
	SearchBusinesses(ctx context.Context, sq domain.SearchQuery) ([]db.Business, error)
	SearchAnnouncements(ctx context.Context, sq domain.SearchQuery) ([]db.Announcement, error)
}

var _ Store = (*db.Repository)(nil)
