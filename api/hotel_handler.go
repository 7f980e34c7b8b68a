package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marbeya/quickstay-backend/auth"
	"github.com/marbeya/quickstay-backend/hotel"
)

type HotelService interface {
	FindHotelByID(ctx context.Context, id string) (hotel.Hotel, error)
	ListHotels(ctx context.Context) ([]hotel.Hotel, error)
	RegisterHotel(ctx context.Context, toInsert hotel.Hotel, actor auth.User) (hotel.Hotel, error)
}

type HotelHandler struct {
	service HotelService
}

func NewHotelHandler(service HotelService) *HotelHandler {
	return &HotelHandler{service: service}
}

func (h *HotelHandler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
}

func (h *HotelHandler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
}

func (h *HotelHandler) List(c *gin.Context) {
	hotels, err := h.service.ListHotels(c.Request.Context())

	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, hotels)
}

func (h *HotelHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	found, err := h.service.FindHotelByID(c.Request.Context(), id)

	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, found)
}

func (h *HotelHandler) Create(c *gin.Context) {
	var toInsert hotel.Hotel

	if err := c.BindJSON(&toInsert); err != nil {
		c.Error(err)
		respondError(c, http.StatusBadRequest, CodeBadRequest, "failed to parse JSON body")
		return
	}

	user := CurrentUser(c)

	inserted, err := h.service.RegisterHotel(c.Request.Context(), toInsert, user)

	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, inserted)
}
