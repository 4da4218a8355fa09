package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/community-portal/internal/domain"
	"github.com/daniilsolovey/community-portal/internal/portal"
)

const (
	defaultListLimit    = 10
	maxListLimit        = 100
	defaultUpcomingDays = 14
	maxUpcomingDays     = 90
)

type CommunityRequest struct {
	CommunityID string `query:"communityId"`
}

type ListRequest struct {
	CommunityID string `query:"communityId"`
	Limit       int    `query:"limit"`
}

type UpcomingEventsRequest struct {
	CommunityID string `query:"communityId"`
	Days        int    `query:"days"`
}

type ClassifiedsRequest struct {
	CommunityID string `query:"communityId"`
	Category    string `query:"category"`
	Limit       int    `query:"limit"`
}

type SearchRequest struct {
	Query       string `query:"q"`
	Scope       string `query:"scope"`
	TimeFilter  string `query:"timeFilter"`
	SortBy      string `query:"sortBy"`
	Page        int    `query:"page"`
	Limit       int    `query:"limit"`
	CommunityID string `query:"communityId"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type PortalHandler struct {
	portal *portal.Manager
	log    *slog.Logger
}

func NewPortalHandler(m *portal.Manager, log *slog.Logger) *PortalHandler {
	return &PortalHandler{
		portal: m,
		log:    log,
	}
}

func (h *PortalHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message, "path", c.Path())
	return c.JSON(statusCode, ErrorResponse{Error: message})
}

// readError maps reader failures: missing items are 404, anything else means
// the store is temporarily unavailable.
func (h *PortalHandler) readError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return h.handleError(c, err, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrInvalidParams):
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	default:
		return h.handleError(c, err, http.StatusServiceUnavailable, "temporarily unavailable")
	}
}

// bind fills req from the query string and requires communityID to be set.
// When ok is false the error response has already been written.
func (h *PortalHandler) bind(c echo.Context, req any, communityID *string) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}
	if *communityID == "" {
		return false, h.handleError(c, nil, http.StatusBadRequest, "communityId is required")
	}
	return true, nil
}

func listLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	return min(limit, maxListLimit)
}

// Homepage handles GET /api/v1/homepage
// @Summary Get homepage
// @Description Featured and latest news, today's events, top announcements and featured businesses of a community
// @Tags homepage
// @Produce json
// @Param communityId query string true "Community ID"
// @Success 200 {object} domain.Homepage
// @Failure 400,503 {object} rest.ErrorResponse
// @Router /api/v1/homepage [get]
func (h *PortalHandler) Homepage(c echo.Context) error {
	var req CommunityRequest
	if ok, err := h.bind(c, &req, &req.CommunityID); !ok {
		return err
	}

	hp, err := h.portal.Homepage(c.Request().Context(), req.CommunityID)
	if err != nil {
		return h.readError(c, err)
	}

	return c.JSON(http.StatusOK, hp)
}

// LatestNews handles GET /api/v1/news
// @Summary Get latest news
// @Description Published articles of a community, newest first
// @Tags news
// @Produce json
// @Param communityId query string true "Community ID"
// @Param limit query int false "Max items (default: 10)"
// @Success 200 {array} domain.NewsArticle
// @Failure 400,503 {object} rest.ErrorResponse
// @Router /api/v1/news [get]
func (h *PortalHandler) LatestNews(c echo.Context) error {
	var req ListRequest
	if ok, err := h.bind(c, &req, &req.CommunityID); !ok {
		return err
	}

	news, err := h.portal.LatestNews(c.Request().Context(), req.CommunityID, listLimit(req.Limit))
	if err != nil {
		return h.readError(c, err)
	}

	return c.JSON(http.StatusOK, news)
}

// TrendingNews handles GET /api/v1/news/trending
// @Summary Get trending news
// @Description Published articles of a community, most viewed first
// @Tags news
// @Produce json
// @Param communityId query string true "Community ID"
// @Param limit query int false "Max items (default: 10)"
// @Success 200 {array} domain.NewsArticle
// @Failure 400,503 {object} rest.ErrorResponse
// @Router /api/v1/news/trending [get]
func (h *PortalHandler) TrendingNews(c echo.Context) error {
	var req ListRequest
	if ok, err := h.bind(c, &req, &req.CommunityID); !ok {
		return err
	}

	news, err := h.portal.TrendingNews(c.Request().Context(), req.CommunityID, listLimit(req.Limit))
	if err != nil {
		return h.readError(c, err)
	}

	return c.JSON(http.StatusOK, news)
}

// NewsBySlug handles GET /api/v1/news/:slug
// @Summary Get article
// @Description A single published article. Counts a view.
// @Tags news
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} domain.NewsArticle
// @Failure 404,503 {object} rest.ErrorResponse
// @Router /api/v1/news/{slug} [get]
func (h *PortalHandler) NewsBySlug(c echo.Context) error {
	article, err := h.portal.NewsBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.readError(c, err)
	}

	return c.JSON(http.StatusOK, article)
}

// UpcomingEvents handles GET /api/v1/events/upcoming
// @Summary Get upcoming events
// @Description Events starting within the next days, soonest first
// @Tags events
// @Produce json
// @Param communityId query string true "Community ID"
// @Param days query int false "Window in days (default: 14)"
// @Success 200 {array} domain.Event
// @Failure 400,503 {object} rest.ErrorResponse
// @Router /api/v1/events/upcoming [get]
func (h *PortalHandler) UpcomingEvents(c echo.Context) error {
	var req UpcomingEventsRequest
	if ok, err := h.bind(c, &req, &req.CommunityID); !ok {
		return err
	}

	days := req.Days
	if days <= 0 {
		days = defaultUpcomingDays
	}
	days = min(days, maxUpcomingDays)

	events, err := h.portal.UpcomingEvents(c.Request().Context(), req.CommunityID, days)
	if err != nil {
		return h.readError(c, err)
	}

	return c.JSON(http.StatusOK, events)
}

// TodayEvents handles GET /api/v1/events/today
// @Summary Get today's events
// @Tags events
// @Produce json
// @Param communityId query string true "Community ID"
// @Success 200 {array} domain.Event
// @Failure 400,503 {object} rest.ErrorResponse
// @Router /api/v1/events/today [get]
func (h *PortalHandler) TodayEvents(c echo.Context) error {
	var req CommunityRequest
	if ok, err := h.bind(c, &req, &req.CommunityID); !ok {
		return err
	}

	events, err := h.portal.TodayEvents(c.Request().Context(), req.CommunityID)
	if err != nil {
		return h.readError(c, err)
	}

	return c.JSON(http.StatusOK, events)
}

// EventBySlug handles GET /api/v1/events/:slug
// @Summary Get event
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} domain.Event
// @Failure 404,503 {object} rest.ErrorResponse
// @Router /api/v1/events/{slug} [get]
func (h *PortalHandler) EventBySlug(c echo.Context) error {
	event, err := h.portal.EventBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.readError(c, err)
	}

	return c.JSON(http.StatusOK, event)
}

// ActiveBusinesses handles GET /api/v1/businesses
// @Summary Get businesses
// @Description Active businesses with rating summary, by name
// @Tags businesses
// @Produce json
// @Param communityId query string true "Community ID"
// @Param limit query int false "Max items (default: 10)"
// @Success 200 {array} domain.Business
// @Failure 400,503 {object} rest.ErrorResponse
// @Router /api/v1/businesses [get]
func (h *PortalHandler) ActiveBusinesses(c echo.Context) error {
	var req ListRequest
	if ok, err := h.bind(c, &req, &req.CommunityID); !ok {
		return err
	}

	businesses, err := h.portal.ActiveBusinesses(c.Request().Context(), req.CommunityID, listLimit(req.Limit))
	if err != nil {
		return h.readError(c, err)
	}

	return c.JSON(http.StatusOK, businesses)
}

// BusinessBySlug handles GET /api/v1/businesses/:slug
// @Summary Get business
// @Description A single active business with opening hours by weekday
// @Tags businesses
// @Produce json
// @Param slug path string true "Business slug"
// @Success 200 {object} domain.Business
// @Failure 404,503 {object} rest.ErrorResponse
// @Router /api/v1/businesses/{slug} [get]
func (h *PortalHandler) BusinessBySlug(c echo.Context) error {
	business, err := h.portal.BusinessBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.readError(c, err)
	}

	return c.JSON(http.StatusOK, business)
}

// ActiveDeals handles GET /api/v1/deals
// @Summary Get deals
// @Tags deals
// @Produce json
// @Param communityId query string true "Community ID"
// @Param limit query int false "Max items (default: 10)"
// @Success 200 {array} domain.Deal
// @Failure 400,503 {object} rest.ErrorResponse
// @Router /api/v1/deals [get]
func (h *PortalHandler) ActiveDeals(c echo.Context) error {
	var req ListRequest
	if ok, err := h.bind(c, &req, &req.CommunityID); !ok {
		return err
	}

	deals, err := h.portal.ActiveDeals(c.Request().Context(), req.CommunityID, listLimit(req.Limit))
	if err != nil {
		return h.readError(c, err)
	}

	return c.JSON(http.StatusOK, deals)
}

// ActiveClassifieds handles GET /api/v1/classifieds
// @Summary Get classifieds
// @Tags classifieds
// @Produce json
// @Param communityId query string true "Community ID"
// @Param category query string false "Listing category"
// @Param limit query int false "Max items (default: 10)"
// @Success 200 {array} domain.ClassifiedListing
// @Failure 400,503 {object} rest.ErrorResponse
// @Router /api/v1/classifieds [get]
func (h *PortalHandler) ActiveClassifieds(c echo.Context) error {
	var req ClassifiedsRequest
	if ok, err := h.bind(c, &req, &req.CommunityID); !ok {
		return err
	}

	listings, err := h.portal.ActiveClassifieds(c.Request().Context(), req.CommunityID, req.Category, listLimit(req.Limit))
	if err != nil {
		return h.readError(c, err)
	}

	return c.JSON(http.StatusOK, listings)
}

// ActiveAnnouncements handles GET /api/v1/announcements
// @Summary Get announcements
// @Description Published, unexpired announcements by priority then recency
// @Tags announcements
// @Produce json
// @Param communityId query string true "Community ID"
// @Success 200 {array} domain.Announcement
// @Failure 400,503 {object} rest.ErrorResponse
// @Router /api/v1/announcements [get]
func (h *PortalHandler) ActiveAnnouncements(c echo.Context) error {
	var req CommunityRequest
	if ok, err := h.bind(c, &req, &req.CommunityID); !ok {
		return err
	}

	announcements, err := h.portal.ActiveAnnouncements(c.Request().Context(), req.CommunityID)
	if err != nil {
		return h.readError(c, err)
	}

	return c.JSON(http.StatusOK, announcements)
}

// Hubs handles GET /api/v1/hubs
// @Summary Get hubs
// @Tags hubs
// @Produce json
// @Param communityId query string true "Community ID"
// @Param limit query int false "Max items (default: 10)"
// @Success 200 {array} domain.Hub
// @Failure 400,503 {object} rest.ErrorResponse
// @Router /api/v1/hubs [get]
func (h *PortalHandler) Hubs(c echo.Context) error {
	var req ListRequest
	if ok, err := h.bind(c, &req, &req.CommunityID); !ok {
		return err
	}

	hubs, err := h.portal.Hubs(c.Request().Context(), req.CommunityID, listLimit(req.Limit))
	if err != nil {
		return h.readError(c, err)
	}

	return c.JSON(http.StatusOK, hubs)
}

// HubBySlug handles GET /api/v1/hubs/:slug
// @Summary Get hub
// @Description A single hub with its posts
// @Tags hubs
// @Produce json
// @Param slug path string true "Hub slug"
// @Success 200 {object} domain.Hub
// @Failure 404,503 {object} rest.ErrorResponse
// @Router /api/v1/hubs/{slug} [get]
func (h *PortalHandler) HubBySlug(c echo.Context) error {
	hub, err := h.portal.HubBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.readError(c, err)
	}

	return c.JSON(http.StatusOK, hub)
}

// RecentMemorials handles GET /api/v1/memorials
// @Summary Get memorials
// @Tags memorials
// @Produce json
// @Param communityId query string true "Community ID"
// @Param limit query int false "Max items (default: 10)"
// @Success 200 {array} domain.Memorial
// @Failure 400,503 {object} rest.ErrorResponse
// @Router /api/v1/memorials [get]
func (h *PortalHandler) RecentMemorials(c echo.Context) error {
	var req ListRequest
	if ok, err := h.bind(c, &req, &req.CommunityID); !ok {
		return err
	}

	memorials, err := h.portal.RecentMemorials(c.Request().Context(), req.CommunityID, listLimit(req.Limit))
	if err != nil {
		return h.readError(c, err)
	}

	return c.JSON(http.StatusOK, memorials)
}

// Authors handles GET /api/v1/authors
// @Summary Get authors
// @Description Authors with published articles in the community, most prolific first
// @Tags authors
// @Produce json
// @Param communityId query string true "Community ID"
// @Success 200 {array} domain.Author
// @Failure 400,503 {object} rest.ErrorResponse
// @Router /api/v1/authors [get]
func (h *PortalHandler) Authors(c echo.Context) error {
	var req CommunityRequest
	if ok, err := h.bind(c, &req, &req.CommunityID); !ok {
		return err
	}

	authors, err := h.portal.Authors(c.Request().Context(), req.CommunityID)
	if err != nil {
		return h.readError(c, err)
	}

	return c.JSON(http.StatusOK, authors)
}

// Search handles GET /api/v1/search
// @Summary Search
// @Description Federated search over news, events, businesses and announcements. A failing category is left out instead of failing the request.
// @Tags search
// @Produce json
// @Param q query string false "Text to match"
// @Param scope query string false "all, news, events, businesses or announcements"
// @Param timeFilter query string false "any, today, week, month or year"
// @Param sortBy query string false "relevance, recent or popular"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size per category (default: 20, max: 100)"
// @Param communityId query string false "Community ID"
// @Success 200 {object} domain.SearchResponse
// @Failure 400 {object} rest.ErrorResponse
// @Router /api/v1/search [get]
func (h *PortalHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	params := domain.SearchParams{
		Query:      req.Query,
		Scope:      domain.SearchScope(req.Scope),
		TimeFilter: domain.TimeFilter(req.TimeFilter),
		SortBy:     domain.SortBy(req.SortBy),
		Page:       req.Page,
		Limit:      req.Limit,
	}
	if req.CommunityID != "" {
		params.CommunityID = &req.CommunityID
	}

	resp, err := h.portal.Search(c.Request().Context(), params)
	if err != nil {
		return h.readError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}
