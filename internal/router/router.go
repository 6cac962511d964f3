// Package router wires the HTTP routes of the query service onto an Echo
// instance. Route registration is split by concern so main can compose the
// pieces it has dependencies for.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/karev/london-stays/internal/handler"
)

// RegisterRoutes registers the routes that need no repositories: the health
// check used by load balancers and monitoring.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterListings registers the listing browse, search, map and review
// endpoints plus the neighbourhood dropdown feed. Only the neighbourhood
// list is cacheable; the paginated and filtered endpoints vary too much to
// be worth cache entries.
func RegisterListings(e *echo.Echo, h *handler.ListingHandler, cache echo.MiddlewareFunc) {
	e.GET("/listings", h.List)
	// /listings/search and /listings/map must be registered explicitly so
	// echo does not swallow them into the :id parameter.
	e.GET("/listings/search", h.Search)
	e.GET("/listings/map", h.Map)
	e.GET("/listings/:id", h.Get)
	e.GET("/listings/:id/reviews", h.Reviews)
	e.GET("/neighbourhoods", h.Neighbourhoods, cache)
}

// RegisterHosts registers the host table and host analytics endpoints. The
// two fixed aggregations take the cache; the paginated views do not.
func RegisterHosts(e *echo.Echo, h *handler.HostHandler, cache echo.MiddlewareFunc) {
	e.GET("/hosts", h.List)
	e.GET("/hosts/experienced", h.Experienced)
	e.GET("/hosts/types", h.Types, cache)
	e.GET("/hosts/interactions", h.Interactions)
	e.GET("/hosts/verified", h.Verified, cache)
	e.GET("/hosts/high-performers", h.HighPerformers)
}

// RegisterAnalytics registers the landing page counters and the fixed
// aggregation endpoints, all behind the response cache.
func RegisterAnalytics(e *echo.Echo, h *handler.AnalyticsHandler, cache echo.MiddlewareFunc) {
	e.GET("/home", h.Home, cache)
	g := e.Group("/analytics", cache)
	g.GET("/overview", h.Overview)
	g.GET("/room_types", h.RoomTypes)
	g.GET("/room_type_sentiment", h.RoomTypeSentiment)
	g.GET("/monthly_price", h.MonthlyPrice)
	g.GET("/hidden_gems", h.HiddenGems)
}

// RegisterAuth registers the demo auth endpoints under /auth. These
// responses are per-user and must never pass through the response cache.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/auth")
	g.POST("/signup", a.Signup)
	g.POST("/login", a.Login)
	g.GET("/user", a.User)
	g.GET("/logout", a.Logout)
}
