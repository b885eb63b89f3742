package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ktanaka99/movie-reservation/internal/model"
	"github.com/ktanaka99/movie-reservation/internal/repository"
	"github.com/ktanaka99/movie-reservation/internal/storage"
)

// AdminHandler serves the catalog management endpoints. Routes are
// mounted behind JWT auth plus the ADMIN role check.
type AdminHandler struct {
	Movies  *repository.MovieRepo
	Posters *storage.PosterStore
}

func NewAdminHandler(m *repository.MovieRepo, p *storage.PosterStore) *AdminHandler {
	if m == nil || p == nil {
		panic("nil dependency passed to NewAdminHandler")
	}
	return &AdminHandler{Movies: m, Posters: p}
}

type movieReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Genre       string `json:"genre"`
	ReleaseYear int    `json:"release_year"`
	Director    string `json:"director"`
	ImageURL    string `json:"image_url"`
}

func (r *movieReq) validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return errors.New("title is required")
	}
	if r.Duration < 1 {
		return errors.New("duration must be positive minutes")
	}
	if r.ReleaseYear < 1900 {
		return errors.New("release_year is implausible")
	}
	return nil
}

// CreateMovie handles POST /v1/admin/movies.
func (h *AdminHandler) CreateMovie(c echo.Context) error {
	var req movieReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := req.validate(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m := model.Movie{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Genre:       req.Genre,
		ReleaseYear: req.ReleaseYear,
		Director:    req.Director,
		ImageURL:    req.ImageURL,
	}
	if err := h.Movies.Create(ctx, &m); err != nil {
		if errors.Is(err, repository.ErrTitleExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "movie title already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create movie failed"})
	}
	return c.JSON(http.StatusCreated, m)
}

// UpdateMovie handles PUT /v1/admin/movies/:id.
func (h *AdminHandler) UpdateMovie(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req movieReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := req.validate(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m := model.Movie{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Genre:       req.Genre,
		ReleaseYear: req.ReleaseYear,
		Director:    req.Director,
		ImageURL:    req.ImageURL,
	}
	if err := h.Movies.Update(ctx, &m); err != nil {
		switch {
		case errors.Is(err, repository.ErrMovieNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		case errors.Is(err, repository.ErrTitleExists):
			return c.JSON(http.StatusConflict, echo.Map{"error": "movie title already exists"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update movie failed"})
		}
	}
	updated, err := h.Movies.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteMovie handles DELETE /v1/admin/movies/:id. Deletion is refused
// while showtimes still reference the movie.
func (h *AdminHandler) DeleteMovie(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	err := h.Movies.Delete(ctx, id)
	switch {
	case err == nil:
		_ = h.Posters.Remove(id)
		return c.NoContent(http.StatusNoContent)
	case errors.Is(err, repository.ErrMovieNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
	case errors.Is(err, repository.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": "movie still has scheduled showtimes"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete movie failed"})
	}
}

// UploadPoster handles POST /v1/admin/movies/:id/poster with a multipart
// "poster" file field. The stored URL is written back to the movie row.
func (h *AdminHandler) UploadPoster(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	if _, err := h.Movies.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	fh, err := c.FormFile("poster")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "poster file is required"})
	}
	const maxPosterBytes = 5 << 20
	if fh.Size > maxPosterBytes {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "poster exceeds 5MB"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "read upload failed"})
	}
	defer src.Close()

	url, err := h.Posters.Save(id, fh.Filename, src)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := h.Movies.UpdateImageURL(ctx, id, url); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update movie failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"image_url": url})
}
