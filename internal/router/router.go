// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/screenseat/movie-booking/internal/config"
	"github.com/screenseat/movie-booking/internal/handler"
	"github.com/screenseat/movie-booking/internal/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Draft   *handler.DraftHandler
	Booking *handler.BookingHandler
	Show    *handler.ShowHandler
}

// Register mounts all application routes on the Echo instance.  The
// session middleware wraps the whole /v1 group so every caller has a
// stable session id; the Redis cache only fronts the read-only browse
// endpoints and the rate limiter guards the mutating ones.
func Register(e *echo.Echo, h Handlers, sessionSecret string, rdb *redis.Client) {
	// Health check for load balancers; no session, no limits.
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1")
	v1.Use(middleware.Session(sessionSecret))
	v1.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	// Browse endpoints.  Cached: the schedule and catalog data are the
	// same for everyone, and seat maps change rarely enough for a
	// short TTL.
	cached := v1.Group("", middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	cached.GET("/schedule", h.Show.GetSchedule)
	cached.GET("/movies/:id", h.Show.GetMovie)

	// The seat map merges in the caller's own selection, so it must
	// not be shared across sessions; no cache here.
	v1.GET("/showtimes/:date/:time/seats", h.Show.GetSeats)

	// Draft state machine transitions.
	v1.GET("/draft", h.Draft.GetDraft)
	v1.POST("/draft/movie", h.Draft.SelectMovie)
	v1.POST("/draft/showtime", h.Draft.SelectShowtime)
	v1.POST("/draft/seats/toggle", h.Draft.ToggleSeat)
	v1.POST("/draft/customer", h.Draft.SetCustomerInfo)
	v1.POST("/draft/reset", h.Draft.Reset)

	// Finalized bookings.
	v1.POST("/bookings", h.Booking.CreateBooking)
	v1.GET("/bookings/:id", h.Booking.GetBooking)
	v1.POST("/bookings/:id/pay", h.Booking.ConfirmPayment)
	v1.DELETE("/bookings/:id", h.Booking.CancelBooking)
}
