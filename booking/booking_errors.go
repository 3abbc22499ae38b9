package booking

import "errors"

var ErrBookingNotFound = errors.New("booking not found")

var ErrInvalidTransition = errors.New("invalid booking status transition")

var ErrCapacityExceeded = errors.New("day pass capacity exceeded")

var ErrDuplicateBooking = errors.New("user already has a booking for this property and date")

var ErrDayNotAvailable = errors.New("day pass not available on this day")

var ErrInvalidGuestCount = errors.New("number of guests must be at least 1")
