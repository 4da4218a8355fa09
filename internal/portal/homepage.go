package portal

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/daniilsolovey/community-portal/internal/domain"
)

// branch runs fn under the per-branch timeout.
func (m *Manager) branch(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, m.opts.BranchTimeout)
	defer cancel()

	return fn(ctx)
}

// Homepage loads latest news, today's events, active announcements and featured
// businesses concurrently. The first failing branch cancels the others and
// fails the whole call. Branch order is kept as returned.
func (m *Manager) Homepage(ctx context.Context, communityID string) (hp *domain.Homepage, err error) {
	defer func(start time.Time) { m.metrics.ObserveHomepage(start, err) }(time.Now())

	var (
		news          []domain.NewsArticle
		events        []domain.Event
		announcements []domain.Announcement
		businesses    []domain.Business
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return m.branch(ctx, func(ctx context.Context) (err error) {
			news, err = m.LatestNews(ctx, communityID, HomepageNewsLimit)
			return err
		})
	})
	g.Go(func() error {
		return m.branch(ctx, func(ctx context.Context) (err error) {
			events, err = m.TodayEvents(ctx, communityID)
			return err
		})
	})
	g.Go(func() error {
		return m.branch(ctx, func(ctx context.Context) (err error) {
			announcements, err = m.ActiveAnnouncements(ctx, communityID)
			return err
		})
	})
	g.Go(func() error {
		return m.branch(ctx, func(ctx context.Context) (err error) {
			businesses, err = m.ActiveBusinesses(ctx, communityID, HomepageBusinessesLimit)
			return err
		})
	})

	if err := g.Wait(); err != nil {
		m.logger.Warn("homepage composition failed", "communityID", communityID, "error", err)
		return nil, fmt.Errorf("compose homepage: %w", err)
	}

	hp = &domain.Homepage{
		LatestNews:         []domain.NewsArticle{},
		TodaysEvents:       events,
		Announcements:      announcements,
		FeaturedBusinesses: businesses,
	}

	if len(news) > 0 {
		hp.FeaturedNews = &news[0]
		hp.LatestNews = news[1:min(len(news), HomepageNewsLimit)]
	}

	if len(hp.Announcements) > HomepageAnnouncementsLimit {
		hp.Announcements = hp.Announcements[:HomepageAnnouncementsLimit]
	}

	return hp, nil
}
