package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marbeya/quickstay-backend/auth"
	bk "github.com/marbeya/quickstay-backend/booking"
	"github.com/marbeya/quickstay-backend/payment"
)

type BookingService interface {
	CreateBooking(ctx context.Context, actor auth.User, roomID string, checkIn, checkOut time.Time, guests int) (bk.Booking, error)
	FindBookingByID(ctx context.Context, id string) (bk.Booking, error)
	FindBookingsPerUser(ctx context.Context, userID string) ([]bk.Booking, error)
	FindBookingsForRoom(ctx context.Context, roomID string) ([]bk.Booking, error)
	BeginCheckout(ctx context.Context, id string, actor auth.User) (payment.CheckoutSession, error)
	Release(ctx context.Context, id string, actor auth.User) error
	Refund(ctx context.Context, id string) error
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Register wires the authenticated booking routes.
func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.ListMine)
	rg.POST("", h.Create)
	rg.GET("/:id", h.GetByID)
	rg.POST("/:id/checkout", h.Checkout)
	rg.PUT("/:id/release", h.Release)
	rg.PUT("/:id/refund", AdminOnly(), h.Refund)
}

// RegisterPublic wires the routes the browsing frontend hits without a
// session, such as the disabled-dates source per room.
func (h *BookingHandler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("/room/:roomId", h.ListForRoom)
}

type createBookingRequest struct {
	Room         string `json:"room" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	Guests       int    `json:"guests" binding:"required"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		respondError(c, http.StatusBadRequest, CodeBadRequest, "failed to parse JSON body")
		return
	}

	checkIn, err := time.Parse(time.DateOnly, req.CheckInDate)

	if err != nil {
		c.Error(err)
		respondError(c, http.StatusBadRequest, CodeBadRequest, "failed to parse checkInDate")
		return
	}

	checkOut, err := time.Parse(time.DateOnly, req.CheckOutDate)

	if err != nil {
		c.Error(err)
		respondError(c, http.StatusBadRequest, CodeBadRequest, "failed to parse checkOutDate")
		return
	}

	user := CurrentUser(c)

	inserted, err := h.service.CreateBooking(c.Request.Context(), user, req.Room, checkIn, checkOut, req.Guests)

	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, inserted)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	user := CurrentUser(c)

	bookings, err := h.service.FindBookingsPerUser(c.Request.Context(), user.ID)

	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	user := CurrentUser(c)

	booking, err := h.service.FindBookingByID(c.Request.Context(), id)

	if err != nil {
		respondDomainError(c, err)
		return
	}

	if !user.CanManage(booking.UserID) {
		respondError(c, http.StatusForbidden, CodeForbidden, "not allowed to view this booking")
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) ListForRoom(c *gin.Context) {
	roomID := c.Param("roomId")

	bookings, err := h.service.FindBookingsForRoom(c.Request.Context(), roomID)

	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) Checkout(c *gin.Context) {
	id := c.Param("id")
	user := CurrentUser(c)

	session, err := h.service.BeginCheckout(c.Request.Context(), id, user)

	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *BookingHandler) Release(c *gin.Context) {
	id := c.Param("id")
	user := CurrentUser(c)

	err := h.service.Release(c.Request.Context(), id, user)

	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking released"})
}

func (h *BookingHandler) Refund(c *gin.Context) {
	id := c.Param("id")

	err := h.service.Refund(c.Request.Context(), id)

	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking refunded"})
}
