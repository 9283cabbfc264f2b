// Package repository defines the booking record store contract and
// its implementations.  Sentinel errors let handlers and the service
// layer distinguish failure scenarios without string matching.
package repository

import "errors"

// ErrBookingNotFound is returned when no booking exists under the
// requested id.  Handlers translate this into an HTTP 404 response.
var ErrBookingNotFound = errors.New("booking not found")

// ErrBookingCancelled is returned when an operation requires a live
// booking but the record has been cancelled.  Handlers translate
// this into an HTTP 409 response.
var ErrBookingCancelled = errors.New("booking is cancelled")
