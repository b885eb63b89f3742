package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ktanaka99/movie-reservation/internal/seed"
)

// SeedHandler exposes POST /v1/admin/seed, which regenerates the sample
// catalog and a week of showtimes.
type SeedHandler struct {
	Seeder *seed.Seeder
}

func NewSeedHandler(s *seed.Seeder) *SeedHandler {
	if s == nil {
		panic("nil seeder passed to NewSeedHandler")
	}
	return &SeedHandler{Seeder: s}
}

type seedReq struct {
	// Seed pins the schedule generator's randomness; 0 means random.
	Seed int64 `json:"seed"`
}

// Seed regenerates movies and showtimes. Existing reservations are kept;
// they carry their own copies of title and screening time.
func (h *SeedHandler) Seed(c echo.Context) error {
	var req seedReq
	_ = c.Bind(&req) // an empty body is fine

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	summary, err := h.Seeder.Run(ctx, req.Seed)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "seeding failed"})
	}
	return c.JSON(http.StatusCreated, summary)
}
