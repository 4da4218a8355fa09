package domain

import (
	"fmt"
	"math"
	"time"
)

type SearchScope string

const (
	ScopeAll           SearchScope = "all"
	ScopeNews          SearchScope = "news"
	ScopeEvents        SearchScope = "events"
	ScopeBusinesses    SearchScope = "businesses"
	ScopeAnnouncements SearchScope = "announcements"
)

type TimeFilter string

const (
	TimeAny   TimeFilter = "any"
	TimeToday TimeFilter = "today"
	TimeWeek  TimeFilter = "week"
	TimeMonth TimeFilter = "month"
	TimeYear  TimeFilter = "year"
)

type SortBy string

const (
	SortRelevance SortBy = "relevance"
	SortRecent    SortBy = "recent"
	SortPopular   SortBy = "popular"
)

type ResultType string

const (
	ResultNews         ResultType = "news"
	ResultEvent        ResultType = "event"
	ResultBusiness     ResultType = "business"
	ResultAnnouncement ResultType = "announcement"
)

const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100

	// MaxSearchOffset bounds (page-1)*limit so the offset fits a Postgres integer.
	MaxSearchOffset = math.MaxInt32
)

type SearchParams struct {
	Query       string      `json:"query"`
	Scope       SearchScope `json:"scope"`
	TimeFilter  TimeFilter  `json:"timeFilter"`
	SortBy      SortBy      `json:"sortBy"`
	Page        int         `json:"page"`
	Limit       int         `json:"limit"`
	CommunityID *string     `json:"communityId,omitempty"`
}

// Normalize fills defaults and rejects unknown enum values.
func (p SearchParams) Normalize() (SearchParams, error) {
	if p.Scope == "" {
		p.Scope = ScopeAll
	}
	if p.TimeFilter == "" {
		p.TimeFilter = TimeAny
	}
	if p.SortBy == "" {
		p.SortBy = SortRelevance
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultSearchLimit
	}
	if p.Limit > MaxSearchLimit {
		p.Limit = MaxSearchLimit
	}
	if p.CommunityID != nil && *p.CommunityID == "" {
		p.CommunityID = nil
	}
	if p.Page-1 > MaxSearchOffset/p.Limit {
		return p, fmt.Errorf("page %d is out of range: %w", p.Page, ErrInvalidParams)
	}

	switch p.Scope {
	case ScopeAll, ScopeNews, ScopeEvents, ScopeBusinesses, ScopeAnnouncements:
	default:
		return p, fmt.Errorf("unknown scope %q: %w", p.Scope, ErrInvalidParams)
	}

	switch p.TimeFilter {
	case TimeAny, TimeToday, TimeWeek, TimeMonth, TimeYear:
	default:
		return p, fmt.Errorf("unknown time filter %q: %w", p.TimeFilter, ErrInvalidParams)
	}

	switch p.SortBy {
	case SortRelevance, SortRecent, SortPopular:
	default:
		return p, fmt.Errorf("unknown sort %q: %w", p.SortBy, ErrInvalidParams)
	}

	return p, nil
}

// Offset is the number of rows each category query skips.
func (p SearchParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Since converts the time filter into an absolute lower bound relative to now.
// A nil result means no bound.
func (f TimeFilter) Since(now time.Time) *time.Time {
	var since time.Time
	switch f {
	case TimeToday:
		y, m, d := now.Date()
		since = time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	case TimeWeek:
		since = now.Add(-7 * 24 * time.Hour)
	case TimeMonth:
		since = now.AddDate(0, -1, 0)
	case TimeYear:
		since = now.AddDate(-1, 0, 0)
	default:
		return nil
	}

	return &since
}

// SearchQuery is what a single category branch receives.
type SearchQuery struct {
	Text        string
	Since       *time.Time
	CommunityID *string
	Limit       int
	Offset      int
}

type SearchResult struct {
	ID          string           `json:"id"`
	Type        ResultType       `json:"type"`
	Title       string           `json:"title"`
	Snippet     string           `json:"snippet"`
	Image       *string          `json:"image,omitempty"`
	Date        string           `json:"date"`
	URL         string           `json:"url"`
	Organizer   string           `json:"organizer,omitempty"`
	Location    string           `json:"location,omitempty"`
	Rating      *float64         `json:"rating,omitempty"`
	ReviewCount *int             `json:"reviewCount,omitempty"`
	Hours       map[string]Hours `json:"hours,omitempty"`
	Discount    string           `json:"discount,omitempty"`
	Priority    *int             `json:"priority,omitempty"`
	Views       *int             `json:"views,omitempty"`

	// At is the parsed form of Date used for ordering.
	At time.Time `json:"-"`
}

// Popularity is the engagement metric used by SortPopular. Types without one rank as 0.
func (r SearchResult) Popularity() int {
	if r.Views == nil {
		return 0
	}
	return *r.Views
}

type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
	Page    int            `json:"page"`
	HasMore bool           `json:"hasMore"`
}
