// Package router registers the HTTP routes of the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/ktanaka99/movie-reservation/internal/config"
	"github.com/ktanaka99/movie-reservation/internal/handler"
	"github.com/ktanaka99/movie-reservation/internal/middleware"
	"github.com/ktanaka99/movie-reservation/internal/model"
)

// RegisterRoutes registers routes that need no authentication or
// dependencies: the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints. Unauthenticated
// operations live under /v1/auth; /v1/me requires a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)              // rotates the refresh token
	g.POST("/refresh-access", a.RefreshAccess) // new access token only
	g.POST("/logout", a.Logout)
	g.POST("/reset-password", a.RequestPasswordReset)
	g.POST("/reset-password/confirm", a.ConfirmPasswordReset)

	auth := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterPublic registers the unauthenticated browse endpoints. The
// read-heavy catalog and schedule routes sit behind the Redis response
// cache and the token-bucket rate limiter; the seat map is rate limited
// but never cached, since a stale seat map would show sold seats as free.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, rdb *redis.Client) {
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	cached := e.Group("/v1", limiter, cache)
	cached.GET("/movies", p.ListMovies)
	cached.GET("/movies/:id", p.GetMovie)
	cached.GET("/theaters", p.ListTheaters)
	cached.GET("/showtimes", p.ListShowtimes)
	cached.GET("/showtimes/:id", p.GetShowtime)

	live := e.Group("/v1", limiter)
	live.GET("/showtimes/:id/seats", p.GetShowtimeSeats)
}

// RegisterCustomer registers the reservation endpoints under /v1. All
// routes require a valid JWT; admins can reserve too.
func RegisterCustomer(e *echo.Echo, h *handler.ReservationHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleCustomer, model.RoleAdmin),
	)
	g.POST("/reservations", h.Create)
	g.GET("/reservations", h.List)
	g.GET("/reservations/:id", h.Get)
	g.PUT("/reservations/:id", h.Modify)
	g.DELETE("/reservations/:id", h.Cancel)
}

// RegisterAdmin registers catalog management and seeding under
// /v1/admin, restricted to the ADMIN role. Poster files are served from
// the static route configured in main.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, s *handler.SeedHandler, jwtSecret string) {
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	)
	g.POST("/movies", a.CreateMovie)
	g.PUT("/movies/:id", a.UpdateMovie)
	g.DELETE("/movies/:id", a.DeleteMovie)
	g.POST("/movies/:id/poster", a.UploadPoster)
	g.POST("/seed", s.Seed)
}
