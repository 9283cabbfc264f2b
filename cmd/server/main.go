package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/screenseat/movie-booking/internal/catalog"
	"github.com/screenseat/movie-booking/internal/config"
	"github.com/screenseat/movie-booking/internal/database"
	"github.com/screenseat/movie-booking/internal/draft"
	"github.com/screenseat/movie-booking/internal/handler"
	"github.com/screenseat/movie-booking/internal/queue"
	"github.com/screenseat/movie-booking/internal/repository"
	"github.com/screenseat/movie-booking/internal/router"
	"github.com/screenseat/movie-booking/internal/seatmap"
	"github.com/screenseat/movie-booking/internal/service"
)

func main() {
	_ = godotenv.Load() // pick up .env in development; ignored when absent
	cfg := config.Load()

	// Seat availability and the draft state machine.
	gen := seatmap.NewGenerator(cfg.TakenMin, cfg.TakenMax)
	machine := draft.NewMachine(gen, seatmap.IsValidSeat, cfg.MaxSeatsPerBooking)
	sessions := draft.NewSessionStore()

	// Optional timed seat holds: expiry feeds a deselect back through
	// the machine for the owning session.
	var holds *draft.HoldTimer
	if cfg.SeatHoldTTL > 0 {
		holds = draft.NewHoldTimer(cfg.SeatHoldTTL, func(sessionID, seatID string) {
			d := sessions.Get(sessionID)
			if _, selected := d.Seats[seatID]; !selected {
				return
			}
			if next, err := machine.Apply(d, draft.ToggleSeat{SeatID: seatID}); err == nil {
				sessions.Put(sessionID, next)
				log.Printf("seat hold expired: session=%s seat=%s", sessionID, seatID)
			}
		})
	}

	// Redis is optional; a nil client turns caching, rate limiting and
	// the redis store backend off.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache, rate limiting and redis store disabled")
	}

	// Booking record store backend.
	var store repository.BookingStore
	switch cfg.StoreBackend {
	case "redis":
		if rdb == nil {
			log.Println("BOOKING_STORE=redis but redis is unavailable; using memory store")
			store = repository.NewMemoryStore()
		} else {
			store = repository.NewRedisStore(rdb)
		}
	case "mysql":
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("mysql connect: %v", err)
		}
		store = repository.NewMySQLStore(db)
	default:
		store = repository.NewMemoryStore()
	}

	// Mock confirmation service with independent failure legs.
	createNet := service.NewSimulatedNetwork(cfg.NetworkDelay, cfg.SeatFailureRate)
	payNet := service.NewSimulatedNetwork(cfg.NetworkDelay, cfg.PaymentFailureRate)
	svc := service.NewBookingService(store, gen, createNet, payNet, seatmap.PriceForSeat)

	// External movie catalog and the screening schedule.
	cat := catalog.NewClient(cfg.CatalogBaseURL, cfg.CatalogAPIKey)
	schedule := catalog.NewSchedule(cfg.ScheduleDays)

	// Background consumer appending confirmed bookings to the log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.Register(e, router.Handlers{
		Draft:   handler.NewDraftHandler(sessions, machine, schedule, holds),
		Booking: handler.NewBookingHandler(svc, sessions, holds),
		Show:    handler.NewShowHandler(gen, sessions, schedule, cat),
	}, cfg.SessionSecret, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, store=%s)", addr, cfg.Env, cfg.StoreBackend)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
