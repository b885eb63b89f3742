// Package handler exposes HTTP handlers for both authenticated and public
// endpoints. This file defines the public browsing API: movies, theaters,
// the showtime schedule and the per-showtime seat map. These routes are
// open so visitors can browse before registering.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ktanaka99/movie-reservation/internal/booking"
	"github.com/ktanaka99/movie-reservation/internal/repository"
)

// PublicHandler aggregates repositories needed for unauthenticated browsing.
type PublicHandler struct {
	MovieRepo       *repository.MovieRepo
	TheaterRepo     *repository.TheaterRepo
	ShowtimeRepo    *repository.ShowtimeRepo
	ReservationRepo *repository.ReservationRepo
}

func NewPublicHandler(m *repository.MovieRepo, t *repository.TheaterRepo, s *repository.ShowtimeRepo, r *repository.ReservationRepo) *PublicHandler {
	if m == nil || t == nil || s == nil || r == nil {
		panic("nil repository passed to NewPublicHandler")
	}
	return &PublicHandler{MovieRepo: m, TheaterRepo: t, ShowtimeRepo: s, ReservationRepo: r}
}

// ListMovies handles GET /v1/movies. Returns the full catalog in an
// "items" array.
func (h *PublicHandler) ListMovies(c echo.Context) error {
	movies, err := h.MovieRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": movies})
}

// GetMovie handles GET /v1/movies/:id.
func (h *PublicHandler) GetMovie(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	m, err := h.MovieRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, m)
}

// ListTheaters handles GET /v1/theaters. Exposes each theater's seating
// grid so clients can render the seat picker.
func (h *PublicHandler) ListTheaters(c echo.Context) error {
	theaters, err := h.TheaterRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": theaters})
}

// ListShowtimes handles GET /v1/showtimes?date=&movie=. Both filters are
// optional; results are ordered by date, theater and start time.
func (h *PublicHandler) ListShowtimes(c echo.Context) error {
	date := c.QueryParam("date")
	movie := c.QueryParam("movie")
	showtimes, err := h.ShowtimeRepo.List(c.Request().Context(), date, movie)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": showtimes})
}

// GetShowtime handles GET /v1/showtimes/:id.
func (h *PublicHandler) GetShowtime(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	s, err := h.ShowtimeRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrShowtimeNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "showtime not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, s)
}

// seatMapResp describes the seat availability for one showtime. Claimed
// seats come only from active reservations; a reservation being edited can
// be excluded so its own seats show as free to that user.
type seatMapResp struct {
	ShowtimeID uint64   `json:"showtime_id"`
	Theater    string   `json:"theater"`
	Rows       int      `json:"rows"`
	Cols       int      `json:"cols"`
	Claimed    []string `json:"claimed"`
}

// GetShowtimeSeats handles GET /v1/showtimes/:id/seats with an optional
// exclude_reservation query parameter. A failed claim query is a hard 500
// rather than an empty seat map so the client never sells a seat twice off
// stale data.
func (h *PublicHandler) GetShowtimeSeats(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()

	s, err := h.ShowtimeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrShowtimeNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "showtime not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	var exclude uint64
	if raw := c.QueryParam("exclude_reservation"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid exclude_reservation"})
		}
		exclude = n
	}

	claims, err := h.ReservationRepo.SeatClaims(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load seat availability"})
	}
	claimed := booking.ClaimedSeats(claims, exclude)

	resp := seatMapResp{ShowtimeID: s.ID, Theater: s.Theater, Claimed: claimed}
	if t, err := h.TheaterRepo.GetByName(ctx, s.Theater); err == nil {
		resp.Rows = t.Rows
		resp.Cols = t.Cols
	}
	return c.JSON(http.StatusOK, resp)
}
