package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/marbeya/quickstay-backend/auth"
	"github.com/marbeya/quickstay-backend/hotel"
	"github.com/marbeya/quickstay-backend/mail"
	"github.com/marbeya/quickstay-backend/payment"
	"github.com/marbeya/quickstay-backend/room"
)

type BookingRepository interface {
	GetActiveBookingsForRoom(ctx context.Context, roomID string) ([]Booking, error)
	GetBookingByID(ctx context.Context, id string) (Booking, error)
	GetBookingsPerUser(ctx context.Context, userID string) ([]Booking, error)
	GetUserBookingsForRoom(ctx context.Context, userID, roomID string) ([]Booking, error)
	InsertBooking(ctx context.Context, toInsert Booking) (Booking, error)
	SetBookingState(ctx context.Context, id string, status Status, paymentStatus PaymentStatus, refundStatus RefundStatus) error
}

type RoomStore interface {
	GetRoomByID(ctx context.Context, id string) (room.Room, error)
}

type HotelStore interface {
	GetHotelByID(ctx context.Context, id string) (hotel.Hotel, error)
}

type Service struct {
	repo     BookingRepository
	rooms    RoomStore
	hotels   HotelStore
	payments payment.Client
	mailer   mail.Mailer
	currency string
	logger   *slog.Logger
}

func NewService(repo BookingRepository, rooms RoomStore, hotels HotelStore, payments payment.Client, mailer mail.Mailer, currency string) *Service {
	return &Service{
		repo:     repo,
		rooms:    rooms,
		hotels:   hotels,
		payments: payments,
		mailer:   mailer,
		currency: currency,
		logger:   slog.Default().With("component", "booking"),
	}
}

func (s *Service) FindBookingByID(ctx context.Context, id string) (Booking, error) {
	return s.repo.GetBookingByID(ctx, id)
}

func (s *Service) FindBookingsPerUser(ctx context.Context, userID string) ([]Booking, error) {
	return s.repo.GetBookingsPerUser(ctx, userID)
}

// FindBookingsForRoom returns the non-terminal bookings of a room. The
// frontend derives its disabled-dates calendar from these ranges.
func (s *Service) FindBookingsForRoom(ctx context.Context, roomID string) ([]Booking, error) {
	return s.repo.GetActiveBookingsForRoom(ctx, roomID)
}

// CreateBooking validates and persists a new booking for the actor.
// Validation order: date range, guest count, duplicate by the same user,
// room availability. The availability pre-check can race with a concurrent
// create; the table's exclusion constraint decides the loser, which
// surfaces here as ErrRoomUnavailable from InsertBooking.
func (s *Service) CreateBooking(ctx context.Context, actor auth.User, roomID string, checkIn, checkOut time.Time, guests int) (Booking, error) {
	checkIn = NormalizeDay(checkIn)
	checkOut = NormalizeDay(checkOut)

	if !checkOut.After(checkIn) {
		return Booking{}, ErrInvalidDateRange
	}

	rm, err := s.rooms.GetRoomByID(ctx, roomID)

	if err != nil {
		return Booking{}, err
	}

	if guests < 1 || guests > rm.Capacity {
		return Booking{}, ErrInvalidGuestCount
	}

	own, err := s.repo.GetUserBookingsForRoom(ctx, actor.ID, roomID)

	if err != nil {
		return Booking{}, err
	}

	for _, b := range own {
		if b.Status.Terminal() {
			continue
		}
		if RangesOverlap(checkIn, checkOut, NormalizeDay(b.CheckIn), NormalizeDay(b.CheckOut)) {
			return Booking{}, ErrDuplicateBooking
		}
	}

	if !rm.IsAvailable {
		return Booking{}, ErrRoomUnavailable
	}

	available, err := s.IsRangeAvailable(ctx, roomID, checkIn, checkOut)

	if err != nil {
		return Booking{}, err
	}

	if !available {
		return Booking{}, ErrRoomUnavailable
	}

	booking := Booking{
		Reference:     uuid.NewString(),
		UserID:        actor.ID,
		RoomID:        rm.ID,
		HotelID:       rm.HotelID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        guests,
		TotalPrice:    PriceForStay(rm.PricePerNight, rm.DiscountPct, Nights(checkIn, checkOut)),
		Status:        StatusPending,
		PaymentStatus: PaymentAwaiting,
		RefundStatus:  RefundNone,
	}

	inserted, err := s.repo.InsertBooking(ctx, booking)

	if err != nil {
		return Booking{}, err
	}

	s.sendConfirmation(ctx, actor, inserted)

	return inserted, nil
}

// BeginCheckout opens a payment session for a pending booking. Only the
// booking owner can pay for it.
func (s *Service) BeginCheckout(ctx context.Context, id string, actor auth.User) (payment.CheckoutSession, error) {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return payment.CheckoutSession{}, err
	}

	if booking.UserID != actor.ID {
		return payment.CheckoutSession{}, ErrForbidden
	}

	if booking.Status != StatusPending || booking.PaymentStatus == PaymentPaid {
		return payment.CheckoutSession{}, ErrAlreadyFinalized
	}

	return s.payments.CreateCheckoutSession(ctx, booking.ID, booking.Reference, booking.TotalPrice, s.currency)
}

// Release cancels a booking on behalf of its owner. Paid bookings go
// through Refund instead.
func (s *Service) Release(ctx context.Context, id string, actor auth.User) error {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return err
	}

	if !actor.CanManage(booking.UserID) {
		return ErrForbidden
	}

	if booking.Status.Terminal() || booking.PaymentStatus == PaymentPaid {
		return ErrAlreadyFinalized
	}

	err = s.repo.SetBookingState(ctx, id, StatusCancelled, booking.PaymentStatus, booking.RefundStatus)

	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	return nil
}

// Refund returns a paid booking's money. The refund request is recorded
// before the provider call so an interrupted refund stays visible.
func (s *Service) Refund(ctx context.Context, id string) error {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return err
	}

	if booking.PaymentStatus != PaymentPaid || booking.Status.Terminal() {
		return ErrNotRefundable
	}

	err = s.repo.SetBookingState(ctx, id, booking.Status, booking.PaymentStatus, RefundRequested)

	if err != nil {
		return fmt.Errorf("failed to record refund request: %w", err)
	}

	err = s.payments.CreateRefund(ctx, booking.Reference, booking.TotalPrice)

	if err != nil {
		return fmt.Errorf("refund rejected by payment provider: %w", err)
	}

	err = s.repo.SetBookingState(ctx, id, StatusRefunded, PaymentPaid, RefundRefunded)

	if err != nil {
		return fmt.Errorf("failed to finalize refund: %w", err)
	}

	return nil
}

// MarkPaid confirms a booking after payment capture. Repeated webhook
// deliveries are no-ops; a capture for a terminal booking is ignored so
// the provider stops retrying.
func (s *Service) MarkPaid(ctx context.Context, id string) error {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return err
	}

	if booking.PaymentStatus == PaymentPaid && booking.Status == StatusConfirmed {
		return nil
	}

	if booking.Status.Terminal() {
		s.logger.Warn("payment captured for terminal booking", "bookingId", id, "status", booking.Status)
		return nil
	}

	return s.repo.SetBookingState(ctx, id, StatusConfirmed, PaymentPaid, booking.RefundStatus)
}

// MarkPaymentFailed records a failed capture. The booking stays pending so
// the guest can retry checkout.
func (s *Service) MarkPaymentFailed(ctx context.Context, id string) error {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return err
	}

	if booking.PaymentStatus == PaymentPaid || booking.Status.Terminal() {
		return nil
	}

	return s.repo.SetBookingState(ctx, id, booking.Status, PaymentFailed, booking.RefundStatus)
}

func (s *Service) sendConfirmation(ctx context.Context, actor auth.User, booking Booking) {
	hotelName := booking.HotelID

	if h, err := s.hotels.GetHotelByID(ctx, booking.HotelID); err == nil {
		hotelName = h.Name
	}

	err := s.mailer.SendBookingConfirmation(ctx, mail.BookingConfirmation{
		To:        actor.Email,
		Reference: booking.Reference,
		HotelName: hotelName,
		CheckIn:   booking.CheckIn,
		CheckOut:  booking.CheckOut,
		Total:     booking.TotalPrice,
	})

	if err != nil {
		s.logger.Error("failed to send booking confirmation", "bookingId", booking.ID, "err", err)
	}
}
