package room

import "errors"

var ErrRoomNotFound = errors.New("room not found")

var ErrNotAllowed = errors.New("not allowed to perform this operation")

var ErrInvalidRoom = errors.New("invalid room definition")
