package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ktanaka99/movie-reservation/internal/booking"
	"github.com/ktanaka99/movie-reservation/internal/model"
	"github.com/ktanaka99/movie-reservation/internal/queue"
	"github.com/ktanaka99/movie-reservation/internal/repository"
	queue_publisher "github.com/ktanaka99/movie-reservation/internal/service"
)

// ReservationHandler serves the customer reservation endpoints: create,
// list, detail, modify and cancel. All methods assume JWT authentication
// and role validation happened in middleware. Seat-claim checks and
// writes share one transaction so two requests racing for the same seat
// cannot both commit unnoticed.
type ReservationHandler struct {
	Reservations *repository.ReservationRepo
	Showtimes    *repository.ShowtimeRepo
	Theaters     *repository.TheaterRepo
	Movies       *repository.MovieRepo
	Loc          *time.Location
}

func NewReservationHandler(res *repository.ReservationRepo, st *repository.ShowtimeRepo, th *repository.TheaterRepo, mv *repository.MovieRepo, loc *time.Location) *ReservationHandler {
	if res == nil || st == nil || th == nil || mv == nil {
		panic("nil repository passed to NewReservationHandler")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &ReservationHandler{Reservations: res, Showtimes: st, Theaters: th, Movies: mv, Loc: loc}
}

// ----- DTOs -----

type createReservationReq struct {
	ShowtimeID      uint64   `json:"showtime_id"`
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	TicketType      string   `json:"ticket_type"`
	NumberOfTickets int      `json:"number_of_tickets"`
	SelectedSeats   []string `json:"selected_seats"`
}

type modifyReservationReq struct {
	TicketType      string   `json:"ticket_type"`
	NumberOfTickets int      `json:"number_of_tickets"`
	SelectedSeats   []string `json:"selected_seats"`
}

// reservationView is a reservation with its display status derived at
// read time; "past" is never stored.
type reservationView struct {
	model.Reservation
	Status string `json:"status"`
}

func (h *ReservationHandler) view(r model.Reservation, now time.Time) reservationView {
	return reservationView{Reservation: r, Status: booking.DeriveStatus(r, now, h.Loc)}
}

// Create handles POST /v1/reservations. The purchaser details are
// validated, prices are computed server-side from the ticket category,
// and the requested seats are checked against every active claim on the
// showtime inside the insert transaction. 409 carries the contested seat
// labels so the client can refresh its seat map.
func (h *ReservationHandler) Create(c echo.Context) error {
	userID := getUserID(c)
	if userID == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	phone, err := booking.NormalizePhone(req.Phone)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "phone must be 10 or 11 digits"})
	}
	if req.NumberOfTickets < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "number_of_tickets must be positive"})
	}
	if len(req.SelectedSeats) != req.NumberOfTickets {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat count must match ticket count"})
	}
	unit, total, err := booking.TotalPrice(req.TicketType, req.NumberOfTickets)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown ticket type"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	st, err := h.Showtimes.GetByID(ctx, req.ShowtimeID)
	if err != nil {
		if errors.Is(err, repository.ErrShowtimeNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "showtime not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if moment, err := booking.ShowtimeMoment(st.Date, st.Time, h.Loc); err == nil && moment.Before(time.Now()) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "showtime has already passed"})
	}
	theater, err := h.Theaters.GetByName(ctx, st.Theater)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if err := booking.ValidateSeatLabels(req.SelectedSeats, theater.Rows, theater.Cols); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	var movieID uint64
	if m, err := h.Movies.GetByTitle(ctx, st.MovieTitle); err == nil {
		movieID = m.ID
	}

	tx, err := h.Reservations.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	claims, err := h.Reservations.SeatClaimsTx(ctx, tx, st.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to check seat availability"})
	}
	if taken := booking.Conflicting(req.SelectedSeats, booking.ClaimedSeats(claims, 0)); len(taken) > 0 {
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "some seats are already reserved",
			"seats": taken,
		})
	}

	res := model.Reservation{
		MovieID:         movieID,
		MovieTitle:      st.MovieTitle,
		ShowtimeID:      st.ID,
		Showtime:        st.Time,
		Date:            st.Date,
		Name:            req.Name,
		Phone:           phone,
		TicketType:      req.TicketType,
		NumberOfTickets: req.NumberOfTickets,
		SelectedSeats:   req.SelectedSeats,
		UnitPrice:       unit,
		TotalPrice:      total,
		UserID:          userID,
	}
	if err := h.Reservations.CreateTx(ctx, tx, &res); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create reservation"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	// Best effort: a broker outage must not fail the booking.
	_ = queue_publisher.PublishReservationConfirmed(ctx, queue.ReservationConfirmedEvent{
		ReservationID:   res.ID,
		UserID:          userID,
		ShowtimeID:      st.ID,
		MovieTitle:      st.MovieTitle,
		Theater:         st.Theater,
		ShowDate:        st.Date,
		ShowTime:        st.Time,
		TicketType:      res.TicketType,
		NumberOfTickets: res.NumberOfTickets,
		SeatLabels:      res.SelectedSeats,
		TotalPriceYen:   res.TotalPrice,
		ConfirmedAt:     time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, h.view(res, time.Now()))
}

// List handles GET /v1/reservations. Returns the current user's
// reservations newest first, each with its derived status.
func (h *ReservationHandler) List(c echo.Context) error {
	userID := getUserID(c)
	if userID == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.Reservations.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservations"})
	}
	now := time.Now()
	out := make([]reservationView, 0, len(items))
	for _, r := range items {
		out = append(out, h.view(r, now))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// Get handles GET /v1/reservations/:id.
func (h *ReservationHandler) Get(c echo.Context) error {
	userID := getUserID(c)
	if userID == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	resID, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	r, err := h.Reservations.GetByIDForUser(c.Request().Context(), resID, userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrReservationNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch reservation"})
		}
	}
	return c.JSON(http.StatusOK, h.view(*r, time.Now()))
}

// Modify handles PUT /v1/reservations/:id. Ticket type, count and seats
// can change; everything else is fixed at creation. When the count
// changes and the client resubmits the old seat selection it is rejected
// so seats get re-picked for the new party size. Prices are always
// recomputed server-side.
func (h *ReservationHandler) Modify(c echo.Context) error {
	userID := getUserID(c)
	if userID == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	resID, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	var req modifyReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	orig, err := h.Reservations.GetByIDForUser(ctx, resID, userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrReservationNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch reservation"})
		}
	}

	updated, err := booking.ApplyModification(*orig, booking.Modification{
		TicketType:      req.TicketType,
		NumberOfTickets: req.NumberOfTickets,
		SelectedSeats:   req.SelectedSeats,
	}, time.Now(), h.Loc)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrCancelled):
			return c.JSON(http.StatusConflict, echo.Map{"error": "reservation is cancelled"})
		case errors.Is(err, booking.ErrPastShowtime):
			return c.JSON(http.StatusConflict, echo.Map{"error": "showtime has already passed"})
		default:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
	}

	st, err := h.Showtimes.GetByID(ctx, orig.ShowtimeID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	theater, err := h.Theaters.GetByName(ctx, st.Theater)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if err := booking.ValidateSeatLabels(updated.SelectedSeats, theater.Rows, theater.Cols); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	tx, err := h.Reservations.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	claims, err := h.Reservations.SeatClaimsTx(ctx, tx, orig.ShowtimeID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to check seat availability"})
	}
	// Own seats are excluded: keeping a seat across the edit is fine.
	if taken := booking.Conflicting(updated.SelectedSeats, booking.ClaimedSeats(claims, orig.ID)); len(taken) > 0 {
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "some seats are already reserved",
			"seats": taken,
		})
	}

	if err := h.Reservations.UpdateTx(ctx, tx, &updated); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "reservation is cancelled"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update reservation"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	return c.JSON(http.StatusOK, h.view(updated, time.Now()))
}

// Cancel handles DELETE /v1/reservations/:id. Cancellation is a soft
// delete: only status and cancelled_at change, and the operation cannot
// be undone through the API.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	userID := getUserID(c)
	if userID == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	resID, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	err := h.Reservations.CancelByIDForUser(c.Request().Context(), resID, userID)
	switch {
	case err == nil:
		return c.NoContent(http.StatusNoContent)
	case errors.Is(err, repository.ErrReservationNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	case errors.Is(err, repository.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	case errors.Is(err, repository.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": "reservation already cancelled"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to cancel reservation"})
	}
}
