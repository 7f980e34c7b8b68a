package hotel

import "errors"

var ErrHotelNotFound = errors.New("hotel not found")

var ErrNotAllowed = errors.New("not allowed to perform this operation")

var ErrInvalidHotel = errors.New("invalid hotel definition")
