package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/ktanaka99/movie-reservation/internal/config"
	"github.com/ktanaka99/movie-reservation/internal/database"
	"github.com/ktanaka99/movie-reservation/internal/handler"
	"github.com/ktanaka99/movie-reservation/internal/queue"
	"github.com/ktanaka99/movie-reservation/internal/repository"
	"github.com/ktanaka99/movie-reservation/internal/router"
	"github.com/ktanaka99/movie-reservation/internal/seed"
	"github.com/ktanaka99/movie-reservation/internal/storage"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("timezone %q not found, falling back to UTC", cfg.Timezone)
		loc = time.UTC
	}

	// Repositories
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	movies := repository.NewMovieRepo(db)
	theaters := repository.NewTheaterRepo(db)
	showtimes := repository.NewShowtimeRepo(db)
	reservations := repository.NewReservationRepo(db)

	// Redis backs rate limiting and response caching; nil disables both.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, rate limiting and caching disabled")
	}

	// Consume reservation.confirmed events in the background.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	posters := storage.NewPosterStore(cfg.PosterDir, cfg.PosterBaseURL)

	e := echo.New()
	e.Static(cfg.PosterBaseURL, cfg.PosterDir)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens), cfg.JWTSecret)
	router.RegisterPublic(e, handler.NewPublicHandler(movies, theaters, showtimes, reservations), rdb)
	router.RegisterCustomer(e, handler.NewReservationHandler(reservations, showtimes, theaters, movies, loc), cfg.JWTSecret)
	router.RegisterAdmin(e,
		handler.NewAdminHandler(movies, posters),
		handler.NewSeedHandler(seed.NewSeeder(movies, theaters, showtimes)),
		cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
