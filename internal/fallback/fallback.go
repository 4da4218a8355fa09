// Package fallback produces synthetic community content with the same shape
// the store-backed readers return. It performs no I/O and never fails.
package fallback

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/daniilsolovey/community-portal/internal/domain"
)

const (
	// DefaultCommunityID is stamped on synthetic rows.
	DefaultCommunityID = "demo-community"

	TodayEventsCount = 5
	AuthorsCount     = 4
)

var (
	authorNames = []string{"Maria Lopez", "James Carter", "Aisha Khan", "Tom Becker"}
	locations   = []string{"Town Hall", "Riverside Park", "Public Library", "Community Center", "Main Street Plaza"}
	categories  = []domain.Category{
		{ID: "category-1", Name: "Arts", Slug: "arts"},
		{ID: "category-2", Name: "Sports", Slug: "sports"},
		{ID: "category-3", Name: "Family", Slug: "family"},
	}
	listingCategories = []string{"for-sale", "housing", "jobs", "services"}
)

// Generator builds placeholder content relative to an injectable clock.
type Generator struct {
	now func() time.Time
}

func New() *Generator {
	return &Generator{now: time.Now}
}

// NewWithClock is used by tests that need stable dates.
func NewWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

func (g *Generator) daysAgo(i int) time.Time {
	return g.now().Add(-time.Duration(i) * 24 * time.Hour)
}

func (g *Generator) daysAhead(i int) time.Time {
	return g.now().Add(time.Duration(i) * 24 * time.Hour)
}

func imageURL(kind string, i int) *string {
	u := fmt.Sprintf("/images/placeholder/%s-%d.jpg", kind, i%6+1)
	return &u
}

func (g *Generator) author(i int) *domain.NewsAuthor {
	n := i % len(authorNames)
	return &domain.NewsAuthor{
		ID:   fmt.Sprintf("author-%d", n+1),
		Name: authorNames[n],
	}
}

// News returns limit published articles, newest first.
func (g *Generator) News(limit int) []domain.NewsArticle {
	news := make([]domain.NewsArticle, 0, max(limit, 0))
	for i := 0; i < limit; i++ {
		news = append(news, g.article(i))
	}
	return news
}

func (g *Generator) article(i int) domain.NewsArticle {
	return domain.NewsArticle{
		ID:              fmt.Sprintf("news-%d", i+1),
		Slug:            fmt.Sprintf("news-article-%d", i+1),
		Title:           fmt.Sprintf("Community update #%d", i+1),
		Excerpt:         "A short look at what is happening around the neighbourhood this week.",
		Body:            "Residents gathered to discuss upcoming improvements to local parks, schools and roads. More details will follow as plans are finalised.",
		ImageURL:        imageURL("news", i),
		PublicationDate: g.daysAgo(i),
		ViewCount:       rand.IntN(1000) + 50,
		Status:          domain.NewsStatusPublished,
		CommunityID:     DefaultCommunityID,
		Author:          g.author(i),
	}
}

// Article returns a single synthetic article carrying the requested slug.
func (g *Generator) Article(slug string) domain.NewsArticle {
	a := g.article(0)
	a.Slug = slug
	return a
}

// TodayEvents returns events starting later today.
func (g *Generator) TodayEvents() []domain.Event {
	events := make([]domain.Event, 0, TodayEventsCount)
	y, m, d := g.now().Date()
	start := time.Date(y, m, d, 9, 0, 0, 0, g.now().Location())
	for i := 0; i < TodayEventsCount; i++ {
		events = append(events, g.event(i, start.Add(time.Duration(2*i)*time.Hour)))
	}
	return events
}

// UpcomingEvents returns one event per day of the window.
func (g *Generator) UpcomingEvents(windowDays int) []domain.Event {
	events := make([]domain.Event, 0, max(windowDays, 0))
	for i := 0; i < windowDays; i++ {
		events = append(events, g.event(i, g.daysAhead(i+1)))
	}
	return events
}

// Event returns a single synthetic event carrying the requested slug.
func (g *Generator) Event(slug string) domain.Event {
	e := g.event(0, g.daysAhead(1))
	e.Slug = slug
	return e
}

func (g *Generator) event(i int, start time.Time) domain.Event {
	end := start.Add(2 * time.Hour)
	category := categories[i%len(categories)]
	return domain.Event{
		ID:          fmt.Sprintf("event-%d", i+1),
		Slug:        fmt.Sprintf("event-%d", i+1),
		Title:       fmt.Sprintf("Neighbourhood meetup #%d", i+1),
		Description: "Meet your neighbours, share ideas and enjoy local food.",
		StartDate:   start,
		EndDate:     &end,
		Location:    locations[i%len(locations)],
		Organizer:   "Community Association",
		ImageURL:    imageURL("event", i),
		CommunityID: DefaultCommunityID,
		Category:    &category,
		RSVPCount:   rand.IntN(120),
		HubIDs:      []string{},
	}
}

// Businesses returns limit active businesses with random ratings.
func (g *Generator) Businesses(limit int) []domain.Business {
	businesses := make([]domain.Business, 0, max(limit, 0))
	for i := 0; i < limit; i++ {
		businesses = append(businesses, g.business(i))
	}
	return businesses
}

// Business returns a single synthetic business with opening hours.
func (g *Generator) Business(slug string) domain.Business {
	b := g.business(0)
	b.Slug = slug
	b.Hours = g.hours()
	return b
}

func (g *Generator) business(i int) domain.Business {
	rating := float64(30+rand.IntN(21)) / 10
	return domain.Business{
		ID:            fmt.Sprintf("business-%d", i+1),
		Slug:          fmt.Sprintf("business-%d", i+1),
		Name:          fmt.Sprintf("Local Shop %d", i+1),
		Description:   "Family-owned business serving the community.",
		CategoryID:    categories[i%len(categories)].ID,
		CommunityID:   DefaultCommunityID,
		IsActive:      true,
		ImageURL:      imageURL("business", i),
		Address:       fmt.Sprintf("%d Main Street", 100+i),
		AverageRating: &rating,
		ReviewCount:   rand.IntN(200) + 1,
		CreatedAt:     g.daysAgo(i),
	}
}

func (g *Generator) hours() map[string]domain.Hours {
	hours := make(map[string]domain.Hours, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d == time.Sunday {
			hours[domain.WeekdayKey(d)] = domain.Hours{Closed: true}
			continue
		}
		hours[domain.WeekdayKey(d)] = domain.Hours{Open: "09:00", Close: "18:00"}
	}
	return hours
}

func (g *Generator) Deals(limit int) []domain.Deal {
	deals := make([]domain.Deal, 0, max(limit, 0))
	for i := 0; i < limit; i++ {
		b := g.business(i)
		deals = append(deals, domain.Deal{
			ID:          fmt.Sprintf("deal-%d", i+1),
			Title:       fmt.Sprintf("%d%% off this week", (i+1)*5),
			Description: "Show this deal at the counter.",
			Discount:    fmt.Sprintf("%d%%", (i+1)*5),
			ValidFrom:   g.daysAgo(i),
			ValidUntil:  g.daysAhead(i + 1),
			IsActive:    true,
			CommunityID: DefaultCommunityID,
			Business: &domain.BusinessRef{
				ID:       b.ID,
				Slug:     b.Slug,
				Name:     b.Name,
				ImageURL: b.ImageURL,
			},
		})
	}
	return deals
}

// Classifieds returns active listings, optionally all in the given category.
func (g *Generator) Classifieds(category string, limit int) []domain.ClassifiedListing {
	listings := make([]domain.ClassifiedListing, 0, max(limit, 0))
	for i := 0; i < limit; i++ {
		c := category
		if c == "" {
			c = listingCategories[i%len(listingCategories)]
		}
		price := float64(rand.IntN(500) + 5)
		listings = append(listings, domain.ClassifiedListing{
			ID:          fmt.Sprintf("classified-%d", i+1),
			Title:       fmt.Sprintf("Listing %d", i+1),
			Description: "Gently used, pick up only.",
			Category:    c,
			Price:       &price,
			Status:      domain.ClassifiedStatusActive,
			CreatedAt:   g.daysAgo(i),
			CommunityID: DefaultCommunityID,
			User: &domain.UserRef{
				ID:   fmt.Sprintf("user-%d", i%5+1),
				Name: authorNames[i%len(authorNames)],
			},
		})
	}
	return listings
}

// Announcements has no synthetic content: placeholder notices would be
// mistaken for real ones.
func (g *Generator) Announcements() []domain.Announcement {
	return []domain.Announcement{}
}

func (g *Generator) Hubs(limit int) []domain.Hub {
	hubs := make([]domain.Hub, 0, max(limit, 0))
	for i := 0; i < limit; i++ {
		hubs = append(hubs, g.hub(i))
	}
	return hubs
}

// Hub returns a single synthetic hub with a handful of posts.
func (g *Generator) Hub(slug string) domain.Hub {
	h := g.hub(0)
	h.Slug = slug
	h.Posts = make([]domain.HubPost, 0, 3)
	for i := 0; i < 3; i++ {
		h.Posts = append(h.Posts, domain.HubPost{
			ID:           fmt.Sprintf("post-%d", i+1),
			Title:        fmt.Sprintf("Discussion %d", i+1),
			Body:         "What does everyone think about the new bike lanes?",
			AuthorName:   authorNames[i%len(authorNames)],
			CreatedAt:    g.daysAgo(i),
			CommentCount: rand.IntN(30),
		})
	}
	return h
}

func (g *Generator) hub(i int) domain.Hub {
	return domain.Hub{
		ID:          fmt.Sprintf("hub-%d", i+1),
		Slug:        fmt.Sprintf("hub-%d", i+1),
		Name:        fmt.Sprintf("Interest group %d", i+1),
		Description: "A place for neighbours who share an interest.",
		ImageURL:    imageURL("hub", i),
		CommunityID: DefaultCommunityID,
		MemberCount: rand.IntN(500) + 10,
	}
}

func (g *Generator) Memorials(limit int) []domain.Memorial {
	memorials := make([]domain.Memorial, 0, max(limit, 0))
	for i := 0; i < limit; i++ {
		birth := g.daysAgo(i).AddDate(-70-i, 0, 0)
		memorials = append(memorials, domain.Memorial{
			ID:             fmt.Sprintf("memorial-%d", i+1),
			Slug:           fmt.Sprintf("memorial-%d", i+1),
			Name:           fmt.Sprintf("Resident %d", i+1),
			BirthDate:      &birth,
			DeathDate:      g.daysAgo(i),
			Obituary:       "A beloved member of our community who will be dearly missed.",
			CommunityID:    DefaultCommunityID,
			GuestbookCount: rand.IntN(60),
		})
	}
	return memorials
}

func (g *Generator) Authors() []domain.Author {
	authors := make([]domain.Author, 0, AuthorsCount)
	for i := 0; i < AuthorsCount; i++ {
		a := g.author(i)
		authors = append(authors, domain.Author{
			ID:           a.ID,
			Name:         a.Name,
			ArticleCount: rand.IntN(40) + 1,
		})
	}
	return authors
}
