package booking

import "errors"

var ErrBookingNotFound = errors.New("booking not found")

var ErrInvalidDateRange = errors.New("check-out must be after check-in")

var ErrInvalidGuestCount = errors.New("guest count must be between 1 and room capacity")

var ErrDuplicateBooking = errors.New("user already has a booking for this room and dates")

var ErrRoomUnavailable = errors.New("room is not available for the requested dates")

var ErrForbidden = errors.New("not allowed to perform this operation")

var ErrAlreadyFinalized = errors.New("booking is already finalized")

var ErrNotRefundable = errors.New("booking is not refundable")
