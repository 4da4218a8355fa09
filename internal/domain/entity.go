package domain

import "time"

type NewsStatus string

const (
	NewsStatusDraft     NewsStatus = "draft"
	NewsStatusPublished NewsStatus = "published"
)

type AnnouncementStatus string

const (
	AnnouncementStatusDraft     AnnouncementStatus = "draft"
	AnnouncementStatusPublished AnnouncementStatus = "published"
)

type ClassifiedStatus string

const (
	ClassifiedStatusActive  ClassifiedStatus = "active"
	ClassifiedStatusExpired ClassifiedStatus = "expired"
)

type Author struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Bio          string  `json:"bio,omitempty"`
	AvatarURL    *string `json:"avatarUrl,omitempty"`
	ArticleCount int     `json:"articleCount"`
}

// NewsAuthor is the author as embedded in an article, without leaderboard stats.
type NewsAuthor struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Bio       string  `json:"bio,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

type NewsArticle struct {
	ID              string      `json:"id"`
	Slug            string      `json:"slug"`
	Title           string      `json:"title"`
	Excerpt         string      `json:"excerpt"`
	Body            string      `json:"body"`
	ImageURL        *string     `json:"imageUrl,omitempty"`
	PublicationDate time.Time   `json:"publicationDate"`
	ViewCount       int         `json:"viewCount"`
	Status          NewsStatus  `json:"status"`
	CommunityID     string      `json:"communityId"`
	Author          *NewsAuthor `json:"author,omitempty"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Event struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Location    string     `json:"location"`
	Organizer   string     `json:"organizer"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
	CommunityID string     `json:"communityId"`
	Category    *Category  `json:"category,omitempty"`
	RSVPCount   int        `json:"rsvpCount"`
	HubIDs      []string   `json:"hubIds"`
}

type Business struct {
	ID            string           `json:"id"`
	Slug          string           `json:"slug"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	CategoryID    string           `json:"categoryId"`
	CommunityID   string           `json:"communityId"`
	IsActive      bool             `json:"isActive"`
	ImageURL      *string          `json:"imageUrl,omitempty"`
	Address       string           `json:"address"`
	Phone         string           `json:"phone,omitempty"`
	Website       string           `json:"website,omitempty"`
	AverageRating *float64         `json:"averageRating"`
	ReviewCount   int              `json:"reviewCount"`
	Hours         map[string]Hours `json:"hours,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// BusinessRef is the partial business projection embedded in deals.
type BusinessRef struct {
	ID       string  `json:"id"`
	Slug     string  `json:"slug"`
	Name     string  `json:"name"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

type Deal struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Discount    string       `json:"discount"`
	ValidFrom   time.Time    `json:"validFrom"`
	ValidUntil  time.Time    `json:"validUntil"`
	IsActive    bool         `json:"isActive"`
	CommunityID string       `json:"communityId"`
	Business    *BusinessRef `json:"business,omitempty"`
}

// UserRef is the partial user projection embedded in classifieds.
type UserRef struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

type ClassifiedListing struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Price       *float64         `json:"price,omitempty"`
	Status      ClassifiedStatus `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
	CommunityID string           `json:"communityId"`
	User        *UserRef         `json:"user,omitempty"`
}

type Announcement struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Body            string             `json:"body"`
	Type            string             `json:"type"`
	Priority        int                `json:"priority"`
	PublicationDate time.Time          `json:"publicationDate"`
	ExpiresAt       *time.Time         `json:"expiresAt,omitempty"`
	Status          AnnouncementStatus `json:"status"`
	CommunityID     string             `json:"communityId"`
}

type HubPost struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	AuthorName   string    `json:"authorName"`
	CreatedAt    time.Time `json:"createdAt"`
	CommentCount int       `json:"commentCount"`
}

type Hub struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	CommunityID string    `json:"communityId"`
	MemberCount int       `json:"memberCount"`
	Posts       []HubPost `json:"posts,omitempty"`
}

type Memorial struct {
	ID             string     `json:"id"`
	Slug           string     `json:"slug"`
	Name           string     `json:"name"`
	BirthDate      *time.Time `json:"birthDate,omitempty"`
	DeathDate      time.Time  `json:"deathDate"`
	Obituary       string     `json:"obituary"`
	ImageURL       *string    `json:"imageUrl,omitempty"`
	CommunityID    string     `json:"communityId"`
	GuestbookCount int        `json:"guestbookCount"`
}

// Homepage is the composite payload of the community landing page.
type Homepage struct {
	FeaturedNews       *NewsArticle   `json:"featuredNews,omitempty"`
	LatestNews         []NewsArticle  `json:"latestNews"`
	TodaysEvents       []Event        `json:"todaysEvents"`
	Announcements      []Announcement `json:"announcements"`
	FeaturedBusinesses []Business     `json:"featuredBusinesses"`
}
