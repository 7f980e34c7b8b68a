package room

import (
	"time"

	"github.com/shopspring/decimal"
)

type Room struct {
	ID            string          `json:"id"`
	HotelID       string          `json:"hotelId"`
	RoomType      string          `json:"roomType"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	DiscountPct   int             `json:"discountPct"`
	Capacity      int             `json:"capacity"`
	Amenities     []string        `json:"amenities"`
	ImageURLs     []string        `json:"images"`
	IsAvailable   bool            `json:"isAvailable"`
	CreatedAt     time.Time       `json:"createdAt"`
}
