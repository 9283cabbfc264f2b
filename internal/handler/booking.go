package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/screenseat/movie-booking/internal/draft"
	"github.com/screenseat/movie-booking/internal/middleware"
	"github.com/screenseat/movie-booking/internal/repository"
	"github.com/screenseat/movie-booking/internal/service"
)

// BookingHandler drives the finalization operations: submitting the
// session's draft, paying, fetching and cancelling bookings.
type BookingHandler struct {
	Svc      *service.BookingService
	Sessions *draft.SessionStore
	Holds    *draft.HoldTimer // nil when seat holds are disabled
}

// NewBookingHandler constructs a BookingHandler.  Holds may be nil.
func NewBookingHandler(svc *service.BookingService, sessions *draft.SessionStore, holds *draft.HoldTimer) *BookingHandler {
	if svc == nil || sessions == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{Svc: svc, Sessions: sessions, Holds: holds}
}

// CreateBooking handles POST /v1/bookings.  It submits the caller's
// draft through the mock confirmation service.  On success the draft
// is discarded and a 201 with the PENDING booking is returned; on a
// simulated rejection the draft survives so the caller can retry.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	sid := middleware.SessionID(c)
	d := h.Sessions.Get(sid)
	b, err := h.Svc.CreateBooking(c.Request().Context(), d)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDraftIncomplete):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, service.ErrSeatUnavailable):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create booking"})
	}
	h.Holds.ReleaseSession(sid)
	h.Sessions.Drop(sid)
	return c.JSON(http.StatusCreated, echo.Map{"booking": b})
}

// ConfirmPayment handles POST /v1/bookings/:id/pay.  Payment failures
// return 402 and leave the booking retryable under the same id;
// paying an already-confirmed booking succeeds without side effects.
func (h *BookingHandler) ConfirmPayment(c echo.Context) error {
	id := c.Param("id")
	b, err := h.Svc.ConfirmPayment(c.Request().Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		case errors.Is(err, repository.ErrBookingCancelled):
			return c.JSON(http.StatusConflict, echo.Map{"error": "booking is cancelled"})
		case errors.Is(err, service.ErrPaymentFailed):
			return c.JSON(http.StatusPaymentRequired, echo.Map{"error": "payment failed, retry with the same booking id"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to confirm payment"})
	}
	return c.JSON(http.StatusOK, echo.Map{"booking": b})
}

// GetBooking handles GET /v1/bookings/:id for the confirmation view.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	b, err := h.Svc.GetBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch booking"})
	}
	return c.JSON(http.StatusOK, echo.Map{"booking": b})
}

// CancelBooking handles DELETE /v1/bookings/:id.  The record is
// marked CANCELLED and kept, so the response carries its final state.
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	b, err := h.Svc.CancelBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to cancel booking"})
	}
	return c.JSON(http.StatusOK, echo.Map{"booking": b})
}
