package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusRefunded  Status = "refunded"
)

// Terminal reports whether the booking no longer occupies the room calendar.
func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusRefunded
}

type PaymentStatus string

const (
	PaymentAwaiting PaymentStatus = "awaiting"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
)

type RefundStatus string

const (
	RefundNone      RefundStatus = "none"
	RefundRequested RefundStatus = "requested"
	RefundRefunded  RefundStatus = "refunded"
)

type Booking struct {
	ID            string          `json:"id"`
	Reference     string          `json:"reference"`
	UserID        string          `json:"userId"`
	RoomID        string          `json:"roomId"`
	HotelID       string          `json:"hotelId"`
	CheckIn       time.Time       `json:"checkInDate"`
	CheckOut      time.Time       `json:"checkOutDate"`
	Guests        int             `json:"guests"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	Status        Status          `json:"status"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	RefundStatus  RefundStatus    `json:"refundStatus"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
