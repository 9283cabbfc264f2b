package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/screenseat/movie-booking/internal/catalog"
	"github.com/screenseat/movie-booking/internal/draft"
	"github.com/screenseat/movie-booking/internal/middleware"
	"github.com/screenseat/movie-booking/internal/seatmap"
)

// ShowHandler serves the browse side of the flow: the schedule, the
// per-showtime seat map and movie details from the external catalog.
type ShowHandler struct {
	Generator *seatmap.Generator
	Sessions  *draft.SessionStore
	Schedule  *catalog.Schedule
	Catalog   *catalog.Client
}

// NewShowHandler constructs a ShowHandler with all dependencies.
func NewShowHandler(gen *seatmap.Generator, sessions *draft.SessionStore, schedule *catalog.Schedule, cat *catalog.Client) *ShowHandler {
	if gen == nil || sessions == nil || schedule == nil || cat == nil {
		panic("nil dependency passed to NewShowHandler")
	}
	return &ShowHandler{Generator: gen, Sessions: sessions, Schedule: schedule, Catalog: cat}
}

// GetSchedule handles GET /v1/schedule and lists the selectable
// dates together with the fixed showtime slots.
func (h *ShowHandler) GetSchedule(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"dates":     h.Schedule.Dates(),
		"showtimes": catalog.Showtimes,
	})
}

// GetSeats handles GET /v1/showtimes/:date/:time/seats.  The grid
// marks generator occupancy as OCCUPIED and, when the caller's draft
// targets this same slot, its selections as SELECTED.
func (h *ShowHandler) GetSeats(c echo.Context) error {
	// Showtime labels contain spaces, so the path segment arrives
	// percent-encoded.
	date := unescaped(c.Param("date"))
	showtime := unescaped(c.Param("time"))
	if !h.Schedule.ValidSlot(date, showtime) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no such screening"})
	}
	var selected map[string]struct{}
	d := h.Sessions.Get(middleware.SessionID(c))
	if d.Date == date && d.Showtime == showtime {
		selected = d.Seats
	}
	seats := h.Generator.Grid(date, showtime, selected)
	return c.JSON(http.StatusOK, echo.Map{
		"date":     date,
		"showtime": showtime,
		"seats":    seats,
	})
}

// GetMovie handles GET /v1/movies/:id and proxies the catalog
// lookup.  Responses sit behind the Redis cache middleware so the
// external API is not hit on every view.
func (h *ShowHandler) GetMovie(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	m, err := h.Catalog.GetMovie(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "movie catalog unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{"movie": m})
}

// unescaped decodes a percent-encoded path parameter, falling back to
// the raw value when it is not valid encoding.
func unescaped(raw string) string {
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
