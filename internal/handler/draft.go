// Package handler implements the HTTP handlers for the booking flow.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/screenseat/movie-booking/internal/catalog"
	"github.com/screenseat/movie-booking/internal/draft"
	"github.com/screenseat/movie-booking/internal/middleware"
	"github.com/screenseat/movie-booking/internal/model"
)

// DraftHandler exposes the state machine transitions over HTTP.  Each
// request loads the caller's draft from the session registry, applies
// one action through the machine and stores the result back.  The
// registry write only happens when the transition succeeded, so a
// rejected action can never leave a session half-updated.
type DraftHandler struct {
	Sessions *draft.SessionStore
	Machine  *draft.Machine
	Schedule *catalog.Schedule
	Holds    *draft.HoldTimer // nil when seat holds are disabled
}

// NewDraftHandler constructs a DraftHandler.  Holds may be nil.
func NewDraftHandler(sessions *draft.SessionStore, machine *draft.Machine, schedule *catalog.Schedule, holds *draft.HoldTimer) *DraftHandler {
	if sessions == nil || machine == nil || schedule == nil {
		panic("nil dependency passed to NewDraftHandler")
	}
	return &DraftHandler{Sessions: sessions, Machine: machine, Schedule: schedule, Holds: holds}
}

// draftView is the read-only snapshot handed to the UI layer.
type draftView struct {
	Stage    draft.Stage         `json:"stage"`
	MovieID  uint64              `json:"movie_id,omitempty"`
	Date     string              `json:"date,omitempty"`
	Showtime string              `json:"showtime,omitempty"`
	Seats    []string            `json:"seats"`
	Customer *model.CustomerInfo `json:"customer,omitempty"`
}

func viewOf(d draft.Draft) draftView {
	return draftView{
		Stage:    d.Stage,
		MovieID:  d.MovieID,
		Date:     d.Date,
		Showtime: d.Showtime,
		Seats:    d.SeatIDs(),
		Customer: d.Customer,
	}
}

// apply runs one action against the caller's draft and writes the
// result back on success.
func (h *DraftHandler) apply(c echo.Context, a draft.Action) error {
	sid := middleware.SessionID(c)
	cur := h.Sessions.Get(sid)
	next, err := h.Machine.Apply(cur, a)
	if err != nil {
		return draftError(c, err)
	}
	h.Sessions.Put(sid, next)
	return c.JSON(http.StatusOK, echo.Map{"draft": viewOf(next)})
}

// GetDraft handles GET /v1/draft and returns the current snapshot.
func (h *DraftHandler) GetDraft(c echo.Context) error {
	d := h.Sessions.Get(middleware.SessionID(c))
	return c.JSON(http.StatusOK, echo.Map{"draft": viewOf(d)})
}

// SelectMovie handles POST /v1/draft/movie.
func (h *DraftHandler) SelectMovie(c echo.Context) error {
	var body struct {
		MovieID uint64 `json:"movie_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	return h.apply(c, draft.SelectMovie{MovieID: body.MovieID})
}

// SelectShowtime handles POST /v1/draft/showtime.  The slot must be
// inside the schedule window; the machine then prunes any previously
// selected seats that are occupied under the new slot.
func (h *DraftHandler) SelectShowtime(c echo.Context) error {
	var body struct {
		Date     string `json:"date"`
		Showtime string `json:"showtime"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Date != "" && body.Showtime != "" && !h.Schedule.ValidSlot(body.Date, body.Showtime) {
		return draftError(c, draft.FieldErrors{"showtime": "no such screening"})
	}
	return h.apply(c, draft.SelectShowtime{Date: body.Date, Showtime: body.Showtime})
}

// ToggleSeat handles POST /v1/draft/seats/toggle.  Selecting a seat
// starts its hold countdown; deselecting stops it.
func (h *DraftHandler) ToggleSeat(c echo.Context) error {
	var body struct {
		SeatID string `json:"seat_id"`
	}
	if err := c.Bind(&body); err != nil || body.SeatID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat_id is required"})
	}
	sid := middleware.SessionID(c)
	cur := h.Sessions.Get(sid)
	next, err := h.Machine.Apply(cur, draft.ToggleSeat{SeatID: body.SeatID})
	if err != nil {
		return draftError(c, err)
	}
	h.Sessions.Put(sid, next)
	if _, was := cur.Seats[body.SeatID]; was {
		h.Holds.Release(sid, body.SeatID)
	} else {
		h.Holds.Track(sid, body.SeatID)
	}
	return c.JSON(http.StatusOK, echo.Map{"draft": viewOf(next)})
}

// SetCustomerInfo handles POST /v1/draft/customer.
func (h *DraftHandler) SetCustomerInfo(c echo.Context) error {
	var body model.CustomerInfo
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	return h.apply(c, draft.SetCustomerInfo{Info: body})
}

// Reset handles POST /v1/draft/reset and returns the draft to the
// movie stage.
func (h *DraftHandler) Reset(c echo.Context) error {
	sid := middleware.SessionID(c)
	h.Holds.ReleaseSession(sid)
	return h.apply(c, draft.Reset{})
}

// draftError maps state machine errors onto HTTP responses.  Field
// validation yields 422 with per-field messages; sequencing and
// availability problems yield 409.
func draftError(c echo.Context, err error) error {
	var fe draft.FieldErrors
	if errors.As(err, &fe) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error":  "validation failed",
			"fields": fe,
		})
	}
	switch {
	case errors.Is(err, draft.ErrSeatTaken),
		errors.Is(err, draft.ErrNoMovie),
		errors.Is(err, draft.ErrNoShowtime),
		errors.Is(err, draft.ErrNoSeats):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}
