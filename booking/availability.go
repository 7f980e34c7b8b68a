package booking

import (
	"context"
	"time"
)

// NormalizeDay truncates t to calendar-day granularity in UTC. All
// availability math works on normalized days; time-of-day never matters.
func NormalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RangesOverlap reports whether two inclusive day ranges intersect.
// A check-out on day N conflicts with a check-in on the same day N:
// the room is treated as occupied through the whole check-out day.
func RangesOverlap(aIn, aOut, bIn, bOut time.Time) bool {
	return !aIn.After(bOut) && !aOut.Before(bIn)
}

// IsRangeAvailable reports whether the room is free for [checkIn, checkOut].
// Only pending and confirmed bookings occupy the calendar; cancelled and
// refunded ones do not block.
//
// This is an advisory pre-check: the booking table's exclusion constraint
// is what actually serializes concurrent inserts (see InsertBooking).
func (s *Service) IsRangeAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error) {
	checkIn = NormalizeDay(checkIn)
	checkOut = NormalizeDay(checkOut)

	existing, err := s.repo.GetActiveBookingsForRoom(ctx, roomID)

	if err != nil {
		return false, err
	}

	for _, b := range existing {
		if RangesOverlap(checkIn, checkOut, NormalizeDay(b.CheckIn), NormalizeDay(b.CheckOut)) {
			return false, nil
		}
	}

	return true, nil
}
