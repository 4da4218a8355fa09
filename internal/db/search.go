package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-pg/pg/v10"

	"github.com/daniilsolovey/community-portal/internal/domain"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(text string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(text)) + "%"
}

// matchAny adds a case-insensitive OR match of text across columns, plus the
// optional community and lower time bound on dateColumn, and pagination.
func matchAny(q *pg.Query, sq domain.SearchQuery, dateColumn string, columns ...string) *pg.Query {
	pattern := likePattern(sq.Text)
	q = q.WhereGroup(func(q *pg.Query) (*pg.Query, error) {
		for _, column := range columns {
			q = q.WhereOr(`? ILIKE ?`, pg.Ident(column), pattern)
		}
		return q, nil
	})

	if sq.CommunityID != nil {
		q = q.Where(`t.community_id = ?`, *sq.CommunityID)
	}

	if sq.Since != nil {
		q = q.Where(`? >= ?`, pg.Ident(dateColumn), *sq.Since)
	}

	return q.Limit(sq.Limit).Offset(sq.Offset)
}

func (r *Repository) SearchNews(ctx context.Context, sq domain.SearchQuery) ([]News, error) {
	var news []News
	err := matchAny(
		r.db.ModelContext(ctx, &news).
			Relation("Author").
			Where(`t.status = ?`, StatusPublished),
		sq, "t.publication_date", "t.title", "t.body",
	).
		OrderExpr(`t.publication_date DESC, t.id DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to search news: %w", err)
	}

	return news, nil
}

func (r *Repository) SearchEvents(ctx context.Context, sq domain.SearchQuery) ([]Event, error) {
	var events []Event
	err := matchAny(
		r.eventsQuery(ctx, &events),
		sq, "t.start_date", "t.title", "t.description", "t.location",
	).
		OrderExpr(`t.start_date ASC, t.id ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to search events: %w", err)
	}

	return events, nil
}

func (r *Repository) SearchBusinesses(ctx context.Context, sq domain.SearchQuery) ([]Business, error) {
	var businesses []Business
	err := matchAny(
		r.businessesQuery(ctx, &businesses),
		sq, "t.created_at", "t.name", "t.description",
	).
		OrderExpr(`t.created_at DESC, t.id DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to search businesses: %w", err)
	}

	return businesses, nil
}

func (r *Repository) SearchAnnouncements(ctx context.Context, sq domain.SearchQuery) ([]Announcement, error) {
	var announcements []Announcement
	err := matchAny(
		r.db.ModelContext(ctx, &announcements).
			Where(`t.status = ?`, StatusPublished),
		sq, "t.publication_date", "t.title", "t.body",
	).
		OrderExpr(`t.publication_date DESC, t.id DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to search announcements: %w", err)
	}

	return announcements, nil
}
