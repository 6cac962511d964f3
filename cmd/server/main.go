package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/karev/london-stays/internal/config"
	"github.com/karev/london-stays/internal/database"
	"github.com/karev/london-stays/internal/handler"
	"github.com/karev/london-stays/internal/middleware"
	"github.com/karev/london-stays/internal/repository"
	"github.com/karev/london-stays/internal/router"
)

func main() {
	// Load a local .env when present; in containers the variables come from
	// the environment directly and a missing file is not an error.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLMode)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: when it is unreachable the cache and rate limiter
	// middlewares degrade to pass-through instead of taking the API down.
	rdb := config.NewRedisClient()

	listings := repository.NewListingRepo(db)
	reviews := repository.NewReviewRepo(db)
	hosts := repository.NewHostRepo(db)
	analytics := repository.NewAnalyticsRepo(db)
	users := repository.NewUserRepo(db)
	sessions := repository.NewSessionRepo(db)

	listingHandler := handler.NewListingHandler(listings, reviews)
	hostHandler := handler.NewHostHandler(hosts)
	analyticsHandler := handler.NewAnalyticsHandler(analytics)
	authHandler := handler.NewAuthHandler(cfg, users, sessions)

	e := echo.New()
	e.HideBanner = true

	// The API is consumed from a browser frontend on another origin, so CORS
	// stays permissive. Credentials are allowed for the session cookie.
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowCredentials: true,
		// Demo deployment serves arbitrary frontends; echo requires the
		// explicit opt-in to reflect the origin when credentials are on.
		UnsafeWildcardOriginWithAllowCredentials: true,
	}))
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	// The response cache is applied per route, never globally: auth and the
	// paginated endpoints carry per-user or high-cardinality responses.
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterListings(e, listingHandler, cache)
	router.RegisterHosts(e, hostHandler, cache)
	router.RegisterAnalytics(e, analyticsHandler, cache)
	router.RegisterAuth(e, authHandler)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
