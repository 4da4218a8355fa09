// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Tables = struct {
	Announcement, Author, Business, BusinessHours, BusinessReview, Category,
	Classified, Deal, Event, EventHub, EventRSVP, Hub, HubMember, HubPost,
	HubPostComment, Memorial, MemorialGuestbookEntry, News, User struct {
		Name, Alias string
	}
}{
	Announcement:           struct{ Name, Alias string }{Name: "announcements", Alias: "t"},
	Author:                 struct{ Name, Alias string }{Name: "authors", Alias: "t"},
	Business:               struct{ Name, Alias string }{Name: "businesses", Alias: "t"},
	BusinessHours:          struct{ Name, Alias string }{Name: "business_hours", Alias: "hours"},
	BusinessReview:         struct{ Name, Alias string }{Name: "business_reviews", Alias: "t"},
	Category:               struct{ Name, Alias string }{Name: "categories", Alias: "t"},
	Classified:             struct{ Name, Alias string }{Name: "classifieds", Alias: "t"},
	Deal:                   struct{ Name, Alias string }{Name: "deals", Alias: "t"},
	Event:                  struct{ Name, Alias string }{Name: "events", Alias: "t"},
	EventHub:               struct{ Name, Alias string }{Name: "event_hubs", Alias: "t"},
	EventRSVP:              struct{ Name, Alias string }{Name: "event_rsvps", Alias: "t"},
	Hub:                    struct{ Name, Alias string }{Name: "hubs", Alias: "t"},
	HubMember:              struct{ Name, Alias string }{Name: "hub_members", Alias: "t"},
	HubPost:                struct{ Name, Alias string }{Name: "hub_posts", Alias: "post"},
	HubPostComment:         struct{ Name, Alias string }{Name: "hub_post_comments", Alias: "t"},
	Memorial:               struct{ Name, Alias string }{Name: "memorials", Alias: "t"},
	MemorialGuestbookEntry: struct{ Name, Alias string }{Name: "memorial_guestbook_entries", Alias: "t"},
	News:                   struct{ Name, Alias string }{Name: "news", Alias: "t"},
	User:                   struct{ Name, Alias string }{Name: "users", Alias: "t"},
}

// Author rows carry a community-scoped article_count computed per query.
type Author struct {
	tableName struct{} `pg:"authors,alias:t,discard_unknown_columns"`

	ID        string  `pg:"id,pk"`
	Name      string  `pg:"name,use_zero"`
	Bio       *string `pg:"bio"`
	AvatarURL *string `pg:"avatar_url"`

	ArticleCount int `pg:"article_count,use_zero"`
}

// NewsAuthor is the author projection joined into news rows.
type NewsAuthor struct {
	tableName struct{} `pg:"authors,alias:t,discard_unknown_columns"`

	ID        string  `pg:"id,pk"`
	Name      string  `pg:"name,use_zero"`
	Bio       *string `pg:"bio"`
	AvatarURL *string `pg:"avatar_url"`
}

type News struct {
	tableName struct{} `pg:"news,alias:t,discard_unknown_columns"`

	ID              string    `pg:"id,pk"`
	Slug            string    `pg:"slug,use_zero"`
	Title           string    `pg:"title,use_zero"`
	Excerpt         *string   `pg:"excerpt"`
	Body            string    `pg:"body,use_zero"`
	ImageURL        *string   `pg:"image_url"`
	PublicationDate time.Time `pg:"publication_date,use_zero"`
	ViewCount       int       `pg:"view_count,use_zero"`
	Status          string    `pg:"status,use_zero"`
	CommunityID     string    `pg:"community_id,use_zero"`
	AuthorID        *string   `pg:"author_id"`

	Author *NewsAuthor `pg:"fk:author_id,rel:has-one"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID   string `pg:"id,pk"`
	Name string `pg:"name,use_zero"`
	Slug string `pg:"slug,use_zero"`
}

// Event rows carry rsvp_count and hub_ids computed per query.
type Event struct {
	tableName struct{} `pg:"events,alias:t,discard_unknown_columns"`

	ID          string     `pg:"id,pk"`
	Slug        string     `pg:"slug,use_zero"`
	Title       string     `pg:"title,use_zero"`
	Description string     `pg:"description,use_zero"`
	StartDate   time.Time  `pg:"start_date,use_zero"`
	EndDate     *time.Time `pg:"end_date"`
	Location    string     `pg:"location,use_zero"`
	Organizer   string     `pg:"organizer,use_zero"`
	ImageURL    *string    `pg:"image_url"`
	CommunityID string     `pg:"community_id,use_zero"`
	CategoryID  *string    `pg:"category_id"`

	RSVPCount int      `pg:"rsvp_count,use_zero"`
	HubIDs    []string `pg:"hub_ids,array"`

	Category *Category `pg:"fk:category_id,rel:has-one"`
}

// Business rows carry the raw ratings array; the mean is derived in Go.
type Business struct {
	tableName struct{} `pg:"businesses,alias:t,discard_unknown_columns"`

	ID          string    `pg:"id,pk"`
	Slug        string    `pg:"slug,use_zero"`
	Name        string    `pg:"name,use_zero"`
	Description string    `pg:"description,use_zero"`
	CategoryID  string    `pg:"category_id,use_zero"`
	CommunityID string    `pg:"community_id,use_zero"`
	IsActive    bool      `pg:"is_active,use_zero"`
	ImageURL    *string   `pg:"image_url"`
	Address     string    `pg:"address,use_zero"`
	Phone       *string   `pg:"phone"`
	Website     *string   `pg:"website"`
	CreatedAt   time.Time `pg:"created_at,use_zero"`

	Ratings []int `pg:"ratings,array"`

	Hours []BusinessHours `pg:"rel:has-many,join_fk:business_id"`
}

type BusinessHours struct {
	tableName struct{} `pg:"business_hours,alias:hours,discard_unknown_columns"`

	ID         string  `pg:"id,pk"`
	BusinessID string  `pg:"business_id,use_zero"`
	DayOfWeek  int     `pg:"day_of_week,use_zero"`
	OpenTime   *string `pg:"open_time"`
	CloseTime  *string `pg:"close_time"`
	IsClosed   bool    `pg:"is_closed,use_zero"`
}

// DealBusiness is the partial business projection joined into deals.
type DealBusiness struct {
	tableName struct{} `pg:"businesses,alias:t,discard_unknown_columns"`

	ID       string  `pg:"id,pk"`
	Slug     string  `pg:"slug,use_zero"`
	Name     string  `pg:"name,use_zero"`
	ImageURL *string `pg:"image_url"`
}

type Deal struct {
	tableName struct{} `pg:"deals,alias:t,discard_unknown_columns"`

	ID          string    `pg:"id,pk"`
	BusinessID  string    `pg:"business_id,use_zero"`
	Title       string    `pg:"title,use_zero"`
	Description string    `pg:"description,use_zero"`
	Discount    string    `pg:"discount,use_zero"`
	ValidFrom   time.Time `pg:"valid_from,use_zero"`
	ValidUntil  time.Time `pg:"valid_until,use_zero"`
	IsActive    bool      `pg:"is_active,use_zero"`
	CommunityID string    `pg:"community_id,use_zero"`

	Business *DealBusiness `pg:"fk:business_id,rel:has-one"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID        string  `pg:"id,pk"`
	Name      string  `pg:"name,use_zero"`
	AvatarURL *string `pg:"avatar_url"`
}

type Classified struct {
	tableName struct{} `pg:"classifieds,alias:t,discard_unknown_columns"`

	ID          string    `pg:"id,pk"`
	Title       string    `pg:"title,use_zero"`
	Description string    `pg:"description,use_zero"`
	Category    string    `pg:"category,use_zero"`
	Price       *float64  `pg:"price"`
	Status      string    `pg:"status,use_zero"`
	CreatedAt   time.Time `pg:"created_at,use_zero"`
	CommunityID string    `pg:"community_id,use_zero"`
	UserID      *string   `pg:"user_id"`

	User *User `pg:"fk:user_id,rel:has-one"`
}

type Announcement struct {
	tableName struct{} `pg:"announcements,alias:t,discard_unknown_columns"`

	ID              string     `pg:"id,pk"`
	Title           string     `pg:"title,use_zero"`
	Body            string     `pg:"body,use_zero"`
	Type            string     `pg:"type,use_zero"`
	Priority        int        `pg:"priority,use_zero"`
	PublicationDate time.Time  `pg:"publication_date,use_zero"`
	ExpiresAt       *time.Time `pg:"expires_at"`
	Status          string     `pg:"status,use_zero"`
	CommunityID     string     `pg:"community_id,use_zero"`
}

// Hub rows carry member_count computed per query.
type Hub struct {
	tableName struct{} `pg:"hubs,alias:t,discard_unknown_columns"`

	ID          string    `pg:"id,pk"`
	Slug        string    `pg:"slug,use_zero"`
	Name        string    `pg:"name,use_zero"`
	Description string    `pg:"description,use_zero"`
	ImageURL    *string   `pg:"image_url"`
	CommunityID string    `pg:"community_id,use_zero"`
	CreatedAt   time.Time `pg:"created_at,use_zero"`

	MemberCount int `pg:"member_count,use_zero"`

	Posts []HubPost `pg:"rel:has-many,join_fk:hub_id"`
}

// HubPost rows carry comment_count computed per query.
type HubPost struct {
	tableName struct{} `pg:"hub_posts,alias:post,discard_unknown_columns"`

	ID         string    `pg:"id,pk"`
	HubID      string    `pg:"hub_id,use_zero"`
	Title      string    `pg:"title,use_zero"`
	Body       string    `pg:"body,use_zero"`
	AuthorName string    `pg:"author_name,use_zero"`
	CreatedAt  time.Time `pg:"created_at,use_zero"`

	CommentCount int `pg:"comment_count,use_zero"`
}

// Memorial rows carry guestbook_count computed per query.
type Memorial struct {
	tableName struct{} `pg:"memorials,alias:t,discard_unknown_columns"`

	ID          string     `pg:"id,pk"`
	Slug        string     `pg:"slug,use_zero"`
	Name        string     `pg:"name,use_zero"`
	BirthDate   *time.Time `pg:"birth_date"`
	DeathDate   time.Time  `pg:"death_date,use_zero"`
	Obituary    string     `pg:"obituary,use_zero"`
	ImageURL    *string    `pg:"image_url"`
	CommunityID string     `pg:"community_id,use_zero"`

	GuestbookCount int `pg:"guestbook_count,use_zero"`
}
