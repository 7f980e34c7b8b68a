package hotel

import (
	"context"

	"github.com/marbeya/quickstay-backend/auth"
)

type HotelRepository interface {
	GetHotelByID(ctx context.Context, id string) (Hotel, error)
	ListHotels(ctx context.Context) ([]Hotel, error)
	InsertHotel(ctx context.Context, hotel Hotel) (Hotel, error)
}

type Service struct {
	repo HotelRepository
}

func NewService(repo HotelRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) FindHotelByID(ctx context.Context, id string) (Hotel, error) {
	return s.repo.GetHotelByID(ctx, id)
}

func (s *Service) ListHotels(ctx context.Context) ([]Hotel, error) {
	return s.repo.ListHotels(ctx)
}

// RegisterHotel creates a hotel owned by the actor. Guests cannot hold
// inventory; the identity provider promotes them to owner first.
func (s *Service) RegisterHotel(ctx context.Context, toInsert Hotel, actor auth.User) (Hotel, error) {
	if len(toInsert.Name) == 0 || len(toInsert.City) == 0 {
		return Hotel{}, ErrInvalidHotel
	}

	switch actor.Role {
	case auth.RoleOwner, auth.RoleAdmin:
	case auth.RoleUser:
		return Hotel{}, ErrNotAllowed
	default:
		return Hotel{}, ErrNotAllowed
	}

	toInsert.OwnerID = actor.ID

	return s.repo.InsertHotel(ctx, toInsert)
}
