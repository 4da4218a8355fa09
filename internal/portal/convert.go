package portal

import (
	"time"

	"github.com/samber/lo"

	"github.com/daniilsolovey/community-portal/internal/db"
	"github.com/daniilsolovey/community-portal/internal/domain"
)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func NewAuthor(a *db.Author) domain.Author {
	return domain.Author{
		ID:           a.ID,
		Name:         a.Name,
		Bio:          deref(a.Bio),
		AvatarURL:    a.AvatarURL,
		ArticleCount: a.ArticleCount,
	}
}

func NewNewsArticle(n *db.News) domain.NewsArticle {
	article := domain.NewsArticle{
		ID:              n.ID,
		Slug:            n.Slug,
		Title:           n.Title,
		Excerpt:         deref(n.Excerpt),
		Body:            n.Body,
		ImageURL:        n.ImageURL,
		PublicationDate: n.PublicationDate,
		ViewCount:       n.ViewCount,
		Status:          domain.NewsStatus(n.Status),
		CommunityID:     n.CommunityID,
	}

	if n.Author != nil {
		article.Author = &domain.NewsAuthor{
			ID:        n.Author.ID,
			Name:      n.Author.Name,
			Bio:       deref(n.Author.Bio),
			AvatarURL: n.Author.AvatarURL,
		}
	}

	return article
}

func NewEvent(e *db.Event) domain.Event {
	event := domain.Event{
		ID:          e.ID,
		Slug:        e.Slug,
		Title:       e.Title,
		Description: e.Description,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Location:    e.Location,
		Organizer:   e.Organizer,
		ImageURL:    e.ImageURL,
		CommunityID: e.CommunityID,
		RSVPCount:   e.RSVPCount,
		HubIDs:      e.HubIDs,
	}

	if event.HubIDs == nil {
		event.HubIDs = []string{}
	}

	if e.Category != nil {
		event.Category = &domain.Category{
			ID:   e.Category.ID,
			Name: e.Category.Name,
			Slug: e.Category.Slug,
		}
	}

	return event
}

// NewBusiness derives the rating summary from the raw ratings. Hours are
// grouped only when the row carries them.
func NewBusiness(b *db.Business) domain.Business {
	business := domain.Business{
		ID:            b.ID,
		Slug:          b.Slug,
		Name:          b.Name,
		Description:   b.Description,
		CategoryID:    b.CategoryID,
		CommunityID:   b.CommunityID,
		IsActive:      b.IsActive,
		ImageURL:      b.ImageURL,
		Address:       b.Address,
		Phone:         deref(b.Phone),
		Website:       deref(b.Website),
		AverageRating: domain.AverageRating(b.Ratings),
		ReviewCount:   len(b.Ratings),
		CreatedAt:     b.CreatedAt,
	}

	if len(b.Hours) > 0 {
		business.Hours = NewHoursByDay(b.Hours)
	}

	return business
}

// NewHoursByDay keys opening hours by weekday name. Rows with an out of
// range day are skipped; a later row for the same day wins.
func NewHoursByDay(rows []db.BusinessHours) map[string]domain.Hours {
	hours := make(map[string]domain.Hours, len(rows))
	for _, h := range rows {
		if h.DayOfWeek < int(time.Sunday) || h.DayOfWeek > int(time.Saturday) {
			continue
		}
		hours[domain.WeekdayKey(time.Weekday(h.DayOfWeek))] = domain.Hours{
			Open:   deref(h.OpenTime),
			Close:  deref(h.CloseTime),
			Closed: h.IsClosed,
		}
	}
	return hours
}

func NewDeal(d *db.Deal) domain.Deal {
	deal := domain.Deal{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Discount:    d.Discount,
		ValidFrom:   d.ValidFrom,
		ValidUntil:  d.ValidUntil,
		IsActive:    d.IsActive,
		CommunityID: d.CommunityID,
	}

	if d.Business != nil {
		deal.Business = &domain.BusinessRef{
			ID:       d.Business.ID,
			Slug:     d.Business.Slug,
			Name:     d.Business.Name,
			ImageURL: d.Business.ImageURL,
		}
	}

	return deal
}

func NewClassifiedListing(c *db.Classified) domain.ClassifiedListing {
	listing := domain.ClassifiedListing{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Price:       c.Price,
		Status:      domain.ClassifiedStatus(c.Status),
		CreatedAt:   c.CreatedAt,
		CommunityID: c.CommunityID,
	}

	if c.User != nil {
		listing.User = &domain.UserRef{
			ID:        c.User.ID,
			Name:      c.User.Name,
			AvatarURL: c.User.AvatarURL,
		}
	}

	return listing
}

func NewAnnouncement(a *db.Announcement) domain.Announcement {
	return domain.Announcement{
		ID:              a.ID,
		Title:           a.Title,
		Body:            a.Body,
		Type:            a.Type,
		Priority:        a.Priority,
		PublicationDate: a.PublicationDate,
		ExpiresAt:       a.ExpiresAt,
		Status:          domain.AnnouncementStatus(a.Status),
		CommunityID:     a.CommunityID,
	}
}

func NewHub(h *db.Hub) domain.Hub {
	hub := domain.Hub{
		ID:          h.ID,
		Slug:        h.Slug,
		Name:        h.Name,
		Description: h.Description,
		ImageURL:    h.ImageURL,
		CommunityID: h.CommunityID,
		MemberCount: h.MemberCount,
	}

	if h.Posts != nil {
		hub.Posts = lo.Map(h.Posts, func(p db.HubPost, _ int) domain.HubPost {
			return domain.HubPost{
				ID:           p.ID,
				Title:        p.Title,
				Body:         p.Body,
				AuthorName:   p.AuthorName,
				CreatedAt:    p.CreatedAt,
				CommentCount: p.CommentCount,
			}
		})
	}

	return hub
}

func NewMemorial(m *db.Memorial) domain.Memorial {
	return domain.Memorial{
		ID:             m.ID,
		Slug:           m.Slug,
		Name:           m.Name,
		BirthDate:      m.BirthDate,
		DeathDate:      m.DeathDate,
		Obituary:       m.Obituary,
		ImageURL:       m.ImageURL,
		CommunityID:    m.CommunityID,
		GuestbookCount: m.GuestbookCount,
	}
}

// mapRows converts store rows with fn and never returns nil, so empty lists
// encode as [].
func mapRows[R, T any](rows []R, fn func(*R) T) []T {
	if len(rows) == 0 {
		return []T{}
	}
	return lo.Map(rows, func(_ R, i int) T {
		return fn(&rows[i])
	})
}
