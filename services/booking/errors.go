// File: services/booking/errors.go
package booking

import "errors"

// Business-rule rejections. Handlers map these to client errors; anything
// else coming out of the service is a persistence failure and maps to a
// generic server error.
var (
	ErrMissingFields   = errors.New("doctorId and slotDateTime are required")
	ErrSlotUnavailable = errors.New("time slot is not available")
	ErrSlotTaken       = errors.New("time slot already booked")
	ErrNotFound        = errors.New("appointment not found")
	ErrInvalidStatus   = errors.New("status must be confirmed or cancelled")
)
