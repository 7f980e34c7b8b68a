package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	bk "github.com/marbeya/quickstay-backend/booking"
	"github.com/marbeya/quickstay-backend/hotel"
	"github.com/marbeya/quickstay-backend/room"
)

// Stable machine-readable error codes. Clients branch on these, not on the
// human-readable message.
const (
	CodeBadRequest        = "BAD_REQUEST"
	CodeInvalidDateRange  = "INVALID_DATE_RANGE"
	CodeInvalidGuestCount = "INVALID_GUEST_COUNT"
	CodeDuplicateBooking  = "DUPLICATE_BOOKING"
	CodeRoomUnavailable   = "ROOM_UNAVAILABLE"
	CodeForbidden         = "FORBIDDEN"
	CodeAlreadyFinalized  = "ALREADY_FINALIZED"
	CodeNotRefundable     = "NOT_REFUNDABLE"
	CodeNotFound          = "NOT_FOUND"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeStoreUnavailable  = "STORE_UNAVAILABLE"
)

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": message, "code": code})
}

// respondDomainError maps domain sentinels to HTTP statuses and codes.
// Anything unmapped is an infrastructure failure.
func respondDomainError(c *gin.Context, err error) {
	c.Error(err)

	switch {
	case errors.Is(err, bk.ErrInvalidDateRange):
		respondError(c, http.StatusBadRequest, CodeInvalidDateRange, "check-out date must be after check-in date")
	case errors.Is(err, bk.ErrInvalidGuestCount):
		respondError(c, http.StatusBadRequest, CodeInvalidGuestCount, "guest count must be between 1 and room capacity")
	case errors.Is(err, bk.ErrDuplicateBooking):
		respondError(c, http.StatusConflict, CodeDuplicateBooking, "you already have a booking for this room and dates")
	case errors.Is(err, bk.ErrRoomUnavailable):
		respondError(c, http.StatusConflict, CodeRoomUnavailable, "room is not available for the requested dates")
	case errors.Is(err, bk.ErrForbidden), errors.Is(err, room.ErrNotAllowed), errors.Is(err, hotel.ErrNotAllowed):
		respondError(c, http.StatusForbidden, CodeForbidden, "not allowed to perform this operation")
	case errors.Is(err, bk.ErrAlreadyFinalized):
		respondError(c, http.StatusConflict, CodeAlreadyFinalized, "booking is already finalized")
	case errors.Is(err, bk.ErrNotRefundable):
		respondError(c, http.StatusConflict, CodeNotRefundable, "booking is not refundable")
	case errors.Is(err, bk.ErrBookingNotFound):
		respondError(c, http.StatusNotFound, CodeNotFound, "booking not found")
	case errors.Is(err, room.ErrRoomNotFound):
		respondError(c, http.StatusNotFound, CodeNotFound, "room not found")
	case errors.Is(err, hotel.ErrHotelNotFound):
		respondError(c, http.StatusNotFound, CodeNotFound, "hotel not found")
	case errors.Is(err, room.ErrInvalidRoom), errors.Is(err, hotel.ErrInvalidHotel):
		respondError(c, http.StatusBadRequest, CodeBadRequest, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, CodeStoreUnavailable, "internal error")
	}
}
