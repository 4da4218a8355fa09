package rest

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
)

const (
	// API paths
	apiV1Prefix = "/api/v1"

	homepagePath       = "/homepage"
	newsPath           = "/news"
	trendingNewsPath   = "/news/trending"
	newsBySlugPath     = "/news/:slug"
	upcomingEventsPath = "/events/upcoming"
	todayEventsPath    = "/events/today"
	eventBySlugPath    = "/events/:slug"
	businessesPath     = "/businesses"
	businessBySlugPath = "/businesses/:slug"
	dealsPath          = "/deals"
	classifiedsPath    = "/classifieds"
	announcementsPath  = "/announcements"
	hubsPath           = "/hubs"
	hubBySlugPath      = "/hubs/:slug"
	memorialsPath      = "/memorials"
	authorsPath        = "/authors"
	searchPath         = "/search"

	// Service paths
	healthPath  = "/health"
	metricsPath = "/metrics"
	swaggerPath = "/swagger/doc.json"
	rpcPath     = "/rpc"
)

// NewRouter builds the echo instance serving the REST API, the JSON-RPC
// endpoint, metrics and the OpenAPI document. rpcServer may be nil.
func NewRouter(h *PortalHandler, rpcServer http.Handler, gatherer prometheus.Gatherer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(h.loggingMiddleware())

	h.registerAPIRoutes(e.Group(apiV1Prefix))

	e.GET(healthPath, h.handleHealth)
	e.GET(metricsPath, echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET(swaggerPath, h.handleSwagger)

	if rpcServer != nil {
		e.Any(rpcPath, echo.WrapHandler(rpcServer))
	}

	return e
}

func (h *PortalHandler) registerAPIRoutes(g *echo.Group) {
	g.GET(homepagePath, h.Homepage)
	g.GET(newsPath, h.LatestNews)
	g.GET(trendingNewsPath, h.TrendingNews)
	g.GET(newsBySlugPath, h.NewsBySlug)
	g.GET(upcomingEventsPath, h.UpcomingEvents)
	g.GET(todayEventsPath, h.TodayEvents)
	g.GET(eventBySlugPath, h.EventBySlug)
	g.GET(businessesPath, h.ActiveBusinesses)
	g.GET(businessBySlugPath, h.BusinessBySlug)
	g.GET(dealsPath, h.ActiveDeals)
	g.GET(classifiedsPath, h.ActiveClassifieds)
	g.GET(announcementsPath, h.ActiveAnnouncements)
	g.GET(hubsPath, h.Hubs)
	g.GET(hubBySlugPath, h.HubBySlug)
	g.GET(memorialsPath, h.RecentMemorials)
	g.GET(authorsPath, h.Authors)
	g.GET(searchPath, h.Search)
}

func (h *PortalHandler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *PortalHandler) handleSwagger(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "swagger document is not available")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(doc))
}

func (h *PortalHandler) loggingMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURIPath:  true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			h.log.LogAttrs(c.Request().Context(), slog.LevelInfo, "HTTP request",
				slog.String("method", v.Method),
				slog.String("path", v.URIPath),
				slog.Int("status", v.Status),
				slog.Int64("duration_ms", v.Latency.Milliseconds()),
				slog.String("remote_addr", v.RemoteIP),
			)
			return nil
		},
	})
}
