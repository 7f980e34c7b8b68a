package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marbeya/quickstay-backend/auth"
	"github.com/marbeya/quickstay-backend/room"
)

type RoomService interface {
	FindRoomByID(ctx context.Context, id string) (room.Room, error)
	ListRooms(ctx context.Context) ([]room.Room, error)
	ListRoomsPerHotel(ctx context.Context, hotelID string) ([]room.Room, error)
	CreateRoom(ctx context.Context, toInsert room.Room, actor auth.User) (room.Room, error)
	SetAvailability(ctx context.Context, id string, available bool, actor auth.User) error
}

type RoomHandler struct {
	service RoomService
}

func NewRoomHandler(service RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

func (h *RoomHandler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.PUT("/:id/availability", h.SetAvailability)
}

func (h *RoomHandler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
}

func (h *RoomHandler) List(c *gin.Context) {
	if hotelID := c.Query("hotel"); len(hotelID) != 0 {
		rooms, err := h.service.ListRoomsPerHotel(c.Request.Context(), hotelID)

		if err != nil {
			respondDomainError(c, err)
			return
		}

		c.IndentedJSON(http.StatusOK, rooms)
		return
	}

	rooms, err := h.service.ListRooms(c.Request.Context())

	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, rooms)
}

func (h *RoomHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	found, err := h.service.FindRoomByID(c.Request.Context(), id)

	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, found)
}

func (h *RoomHandler) Create(c *gin.Context) {
	var toInsert room.Room

	if err := c.BindJSON(&toInsert); err != nil {
		c.Error(err)
		respondError(c, http.StatusBadRequest, CodeBadRequest, "failed to parse JSON body")
		return
	}

	user := CurrentUser(c)

	inserted, err := h.service.CreateRoom(c.Request.Context(), toInsert, user)

	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, inserted)
}

type availabilityRequest struct {
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}

func (h *RoomHandler) SetAvailability(c *gin.Context) {
	id := c.Param("id")

	var req availabilityRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		respondError(c, http.StatusBadRequest, CodeBadRequest, "failed to parse JSON body")
		return
	}

	user := CurrentUser(c)

	err := h.service.SetAvailability(c.Request.Context(), id, *req.IsAvailable, user)

	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "room availability updated"})
}
