package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/facility-ops/internal/config"     // Internal config loader
	"github.com/iliyamo/facility-ops/internal/database"   // MySQL connection helper
	"github.com/iliyamo/facility-ops/internal/handler"    // HTTP handlers
	"github.com/iliyamo/facility-ops/internal/middleware" // cache and rate-limit middleware
	"github.com/iliyamo/facility-ops/internal/queue"      // reclamation event consumer
	"github.com/iliyamo/facility-ops/internal/repository" // data access layer
	"github.com/iliyamo/facility-ops/internal/router"     // route registration
	"github.com/iliyamo/facility-ops/internal/watch"      // live snapshot hub
)

func main() {
	// A local .env is a convenience for development; in production the
	// environment is injected by the platform and the file is absent.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis backs the response cache and the rate limiter. A nil
	// client disables both; the API still works without Redis.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}

	// Repositories.
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	spaces := repository.NewSpaceRepo(db)
	subSpaces := repository.NewSubSpaceRepo(db)
	categories := repository.NewCategoryRepo(db)
	assignments := repository.NewAssignmentRepo(db)
	employees := repository.NewEmployeeRepo(db)
	reclamations := repository.NewReclamationRepo(db)

	hub := watch.NewHub()

	// Handlers.
	authH := handler.NewAuthHandler(cfg, users, tokens)
	facilityH := handler.NewFacilityHandler(spaces, subSpaces, categories, assignments, employees, hub)
	reclamationH := handler.NewReclamationHandler(reclamations, cfg.AMQPURL)

	// Background consumer: writes the reclamation intake log from the
	// broker queue. Runs its own reconnect loop forever.
	go func() {
		if err := queue.StartReclamationConsumer(cfg.AMQPURL); err != nil {
			log.Printf("reclamation consumer stopped: %v", err)
		}
	}()

	e := echo.New() // Create Echo instance
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterFacility(e, facilityH, cfg.JWTSecret)
	router.RegisterReclamations(e, reclamationH, cfg.JWTSecret)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
