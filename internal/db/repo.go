package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"

	"github.com/daniilsolovey/community-portal/internal/domain"
)

const (
	StatusPublished        = "published"
	StatusClassifiedActive = "active"
)

type Repository struct {
	db pg.DBI
}

// New wraps a live connection or transaction. A nil db yields an
// unconfigured Repository.
func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Configured() bool {
	return r.db != nil
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func notFoundOr(err error, format string, args ...any) error {
	if errors.Is(err, pg.ErrNoRows) {
		return fmt.Errorf(format+": %w", append(args, domain.ErrNotFound)...)
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

func (r *Repository) publishedNews(ctx context.Context, news *[]News, communityID string, now time.Time) *pg.Query {
	return r.db.ModelContext(ctx, news).
		Relation("Author").
		Where(`t.community_id = ?`, communityID).
		Where(`t.status = ?`, StatusPublished).
		Where(`t.publication_date <= ?`, now)
}

// LatestNews returns published articles of a community, newest first.
func (r *Repository) LatestNews(ctx context.Context, communityID string, limit int) ([]News, error) {
	var news []News
	err := r.publishedNews(ctx, &news, communityID, time.Now()).
		OrderExpr(`t.publication_date DESC, t.id DESC`).
		Limit(limit).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query latest news: %w", err)
	}

	return news, nil
}

// TrendingNews returns published articles of a community, most viewed first.
func (r *Repository) TrendingNews(ctx context.Context, communityID string, limit int) ([]News, error) {
	var news []News
	err := r.publishedNews(ctx, &news, communityID, time.Now()).
		OrderExpr(`t.view_count DESC, t.publication_date DESC`).
		Limit(limit).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query trending news: %w", err)
	}

	return news, nil
}

func (r *Repository) NewsBySlug(ctx context.Context, slug string) (*News, error) {
	news := &News{}
	err := r.db.ModelContext(ctx, news).
		Relation("Author").
		Where(`t.slug = ?`, slug).
		Where(`t.status = ?`, StatusPublished).
		Limit(1).
		Select()
	if err != nil {
		return nil, notFoundOr(err, "failed to get news by slug %q", slug)
	}

	return news, nil
}

// SetNewsViewCount overwrites view_count with the given value. Callers pass a
// value derived from an earlier read, so concurrent increments can be lost.
func (r *Repository) SetNewsViewCount(ctx context.Context, newsID string, views int) error {
	_, err := r.db.ModelContext(ctx, (*News)(nil)).
		Set(`view_count = ?`, views).
		Where(`t.id = ?`, newsID).
		Update()
	if err != nil {
		return fmt.Errorf("failed to update news view count: %w", err)
	}

	return nil
}

func (r *Repository) eventsQuery(ctx context.Context, events any) *pg.Query {
	return r.db.ModelContext(ctx, events).
		ColumnExpr(`t.*`).
		ColumnExpr(`(SELECT count(*) FROM event_rsvps rsvp WHERE rsvp.event_id = t.id) AS rsvp_count`).
		ColumnExpr(`ARRAY(SELECT eh.hub_id FROM event_hubs eh WHERE eh.event_id = t.id ORDER BY eh.hub_id) AS hub_ids`).
		Relation("Category")
}

// EventsBetween returns community events starting in [from, to), soonest first.
func (r *Repository) EventsBetween(ctx context.Context, communityID string, from, to time.Time) ([]Event, error) {
	var events []Event
	err := r.eventsQuery(ctx, &events).
		Where(`t.community_id = ?`, communityID).
		Where(`t.start_date >= ?`, from).
		Where(`t.start_date < ?`, to).
		OrderExpr(`t.start_date ASC, t.id ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}

	return events, nil
}

func (r *Repository) EventBySlug(ctx context.Context, slug string) (*Event, error) {
	event := &Event{}
	err := r.eventsQuery(ctx, event).
		Where(`t.slug = ?`, slug).
		Limit(1).
		Select()
	if err != nil {
		return nil, notFoundOr(err, "failed to get event by slug %q", slug)
	}

	return event, nil
}

func (r *Repository) businessesQuery(ctx context.Context, businesses any) *pg.Query {
	return r.db.ModelContext(ctx, businesses).
		ColumnExpr(`t.*`).
		ColumnExpr(`ARRAY(SELECT rv.rating FROM business_reviews rv WHERE rv.business_id = t.id ORDER BY rv.created_at) AS ratings`).
		Where(`t.is_active = TRUE`)
}

func (r *Repository) ActiveBusinesses(ctx context.Context, communityID string, limit int) ([]Business, error) {
	var businesses []Business
	err := r.businessesQuery(ctx, &businesses).
		Where(`t.community_id = ?`, communityID).
		OrderExpr(`t.name ASC`).
		Limit(limit).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query businesses: %w", err)
	}

	return businesses, nil
}

// BusinessBySlug additionally loads the weekly opening hours.
func (r *Repository) BusinessBySlug(ctx context.Context, slug string) (*Business, error) {
	business := &Business{}
	err := r.businessesQuery(ctx, business).
		Relation("Hours", func(q *pg.Query) (*pg.Query, error) {
			return q.OrderExpr(`hours.day_of_week ASC`), nil
		}).
		Where(`t.slug = ?`, slug).
		Limit(1).
		Select()
	if err != nil {
		return nil, notFoundOr(err, "failed to get business by slug %q", slug)
	}

	return business, nil
}

func (r *Repository) ActiveDeals(ctx context.Context, communityID string, limit int) ([]Deal, error) {
	now := time.Now()

	var deals []Deal
	err := r.db.ModelContext(ctx, &deals).
		Relation("Business").
		Where(`t.community_id = ?`, communityID).
		Where(`t.is_active = TRUE`).
		Where(`t.valid_from <= ?`, now).
		Where(`t.valid_until >= ?`, now).
		OrderExpr(`t.valid_until ASC, t.id ASC`).
		Limit(limit).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query deals: %w", err)
	}

	return deals, nil
}

// ActiveClassifieds filters by category only when it is not empty.
func (r *Repository) ActiveClassifieds(ctx context.Context, communityID, category string, limit int) ([]Classified, error) {
	var classifieds []Classified
	query := r.db.ModelContext(ctx, &classifieds).
		Relation("User").
		Where(`t.community_id = ?`, communityID).
		Where(`t.status = ?`, StatusClassifiedActive)

	if category != "" {
		query = query.Where(`t.category = ?`, category)
	}

	err := query.
		OrderExpr(`t.created_at DESC, t.id DESC`).
		Limit(limit).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query classifieds: %w", err)
	}

	return classifieds, nil
}

// ActiveAnnouncements returns published, unexpired announcements ordered by
// priority and then recency.
func (r *Repository) ActiveAnnouncements(ctx context.Context, communityID string) ([]Announcement, error) {
	now := time.Now()

	var announcements []Announcement
	err := r.db.ModelContext(ctx, &announcements).
		Where(`t.community_id = ?`, communityID).
		Where(`t.status = ?`, StatusPublished).
		Where(`t.publication_date <= ?`, now).
		WhereGroup(func(q *pg.Query) (*pg.Query, error) {
			return q.WhereOr(`t.expires_at IS NULL`).WhereOr(`t.expires_at > ?`, now), nil
		}).
		OrderExpr(`t.priority DESC, t.publication_date DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query announcements: %w", err)
	}

	return announcements, nil
}

func (r *Repository) hubsQuery(ctx context.Context, hubs any) *pg.Query {
	return r.db.ModelContext(ctx, hubs).
		ColumnExpr(`t.*`).
		ColumnExpr(`(SELECT count(*) FROM hub_members hm WHERE hm.hub_id = t.id) AS member_count`)
}

func (r *Repository) Hubs(ctx context.Context, communityID string, limit int) ([]Hub, error) {
	var hubs []Hub
	err := r.hubsQuery(ctx, &hubs).
		Where(`t.community_id = ?`, communityID).
		OrderExpr(`t.name ASC`).
		Limit(limit).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query hubs: %w", err)
	}

	return hubs, nil
}

// HubBySlug additionally loads posts, newest first, each with its comment count.
func (r *Repository) HubBySlug(ctx context.Context, slug string) (*Hub, error) {
	hub := &Hub{}
	err := r.hubsQuery(ctx, hub).
		Relation("Posts", func(q *pg.Query) (*pg.Query, error) {
			return q.
				ColumnExpr(`post.*`).
				ColumnExpr(`(SELECT count(*) FROM hub_post_comments c WHERE c.post_id = post.id) AS comment_count`).
				OrderExpr(`post.created_at DESC`), nil
		}).
		Where(`t.slug = ?`, slug).
		Limit(1).
		Select()
	if err != nil {
		return nil, notFoundOr(err, "failed to get hub by slug %q", slug)
	}

	return hub, nil
}

func (r *Repository) RecentMemorials(ctx context.Context, communityID string, limit int) ([]Memorial, error) {
	var memorials []Memorial
	err := r.db.ModelContext(ctx, &memorials).
		ColumnExpr(`t.*`).
		ColumnExpr(`(SELECT count(*) FROM memorial_guestbook_entries g WHERE g.memorial_id = t.id) AS guestbook_count`).
		Where(`t.community_id = ?`, communityID).
		OrderExpr(`t.death_date DESC`).
		Limit(limit).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query memorials: %w", err)
	}

	return memorials, nil
}

// Authors returns authors with at least one published article in the
// community, with the article count scoped to that community.
func (r *Repository) Authors(ctx context.Context, communityID string) ([]Author, error) {
	var authors []Author
	err := r.db.ModelContext(ctx, &authors).
		ColumnExpr(`t.*`).
		ColumnExpr(`(SELECT count(*) FROM news n WHERE n.author_id = t.id AND n.community_id = ? AND n.status = ?) AS article_count`,
			communityID, StatusPublished).
		Where(`EXISTS (SELECT 1 FROM news n WHERE n.author_id = t.id AND n.community_id = ? AND n.status = ?)`,
			communityID, StatusPublished).
		OrderExpr(`article_count DESC, t.name ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}

	return authors, nil
}
