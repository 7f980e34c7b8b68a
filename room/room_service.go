package room

import (
	"context"

	"github.com/marbeya/quickstay-backend/auth"
	"github.com/marbeya/quickstay-backend/hotel"
)

type RoomRepository interface {
	GetRoomByID(ctx context.Context, id string) (Room, error)
	ListRooms(ctx context.Context) ([]Room, error)
	ListRoomsPerHotel(ctx context.Context, hotelID string) ([]Room, error)
	InsertRoom(ctx context.Context, room Room) (Room, error)
	SetRoomAvailability(ctx context.Context, id string, available bool) error
}

type HotelStore interface {
	GetHotelByID(ctx context.Context, id string) (hotel.Hotel, error)
}

type Service struct {
	repo   RoomRepository
	hotels HotelStore
}

func NewService(repo RoomRepository, hotels HotelStore) *Service {
	return &Service{repo: repo, hotels: hotels}
}

func (s *Service) FindRoomByID(ctx context.Context, id string) (Room, error) {
	return s.repo.GetRoomByID(ctx, id)
}

func (s *Service) ListRooms(ctx context.Context) ([]Room, error) {
	return s.repo.ListRooms(ctx)
}

func (s *Service) ListRoomsPerHotel(ctx context.Context, hotelID string) ([]Room, error) {
	return s.repo.ListRoomsPerHotel(ctx, hotelID)
}

// CreateRoom adds a room to a hotel. Only the hotel's owner or an admin may
// do so.
func (s *Service) CreateRoom(ctx context.Context, toInsert Room, actor auth.User) (Room, error) {
	if len(toInsert.RoomType) == 0 || toInsert.Capacity < 1 || !toInsert.PricePerNight.IsPositive() {
		return Room{}, ErrInvalidRoom
	}

	if toInsert.DiscountPct < 0 || toInsert.DiscountPct > 100 {
		return Room{}, ErrInvalidRoom
	}

	h, err := s.hotels.GetHotelByID(ctx, toInsert.HotelID)

	if err != nil {
		return Room{}, err
	}

	if !actor.CanManage(h.OwnerID) {
		return Room{}, ErrNotAllowed
	}

	return s.repo.InsertRoom(ctx, toInsert)
}

// SetAvailability flips the owner-controlled availability toggle. The flag
// is independent of bookings: it hides the room from new reservations
// without touching existing ones.
func (s *Service) SetAvailability(ctx context.Context, id string, available bool, actor auth.User) error {
	rm, err := s.repo.GetRoomByID(ctx, id)

	if err != nil {
		return err
	}

	h, err := s.hotels.GetHotelByID(ctx, rm.HotelID)

	if err != nil {
		return err
	}

	if !actor.CanManage(h.OwnerID) {
		return ErrNotAllowed
	}

	return s.repo.SetRoomAvailability(ctx, id, available)
}
