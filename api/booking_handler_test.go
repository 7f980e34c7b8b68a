package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/marbeya/quickstay-backend/api"
	mock_api "github.com/marbeya/quickstay-backend/api/mocks"
	"github.com/marbeya/quickstay-backend/auth"
	bk "github.com/marbeya/quickstay-backend/booking"
	"github.com/marbeya/quickstay-backend/payment"
)

var testGuest = auth.User{ID: "user1", Name: "user one", Email: "user1@example.com", Role: auth.RoleUser}

func setUserInContext(user auth.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", user)
		c.Next()
	}
}

func setupRouterWithUser(t *testing.T, user auth.User) (*gin.Engine, *gomock.Controller, *mock_api.MockBookingService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockBookingService(ctrl)
	handler := api.NewBookingHandler(mockService)
	rg := router.Group("/api/v1/bookings")
	rg.Use(setUserInContext(user))
	handler.Register(rg)

	return router, ctrl, mockService
}

func setupPublicRouter(t *testing.T) (*gin.Engine, *gomock.Controller, *mock_api.MockBookingService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockBookingService(ctrl)
	handler := api.NewBookingHandler(mockService)
	handler.RegisterPublic(router.Group("/api/v1/bookings"))

	return router, ctrl, mockService
}

func TestCreate(t *testing.T) {
	validBody := `{"room": "room1", "checkInDate": "2026-06-10", "checkOutDate": "2026-06-12", "guests": 2}`

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, testGuest)
		defer ctrl.Finish()

		inserted := bk.Booking{
			ID:         "123",
			Reference:  "ref-123",
			UserID:     "user1",
			RoomID:     "room1",
			CheckIn:    time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC),
			CheckOut:   time.Date(2026, time.June, 12, 0, 0, 0, 0, time.UTC),
			Guests:     2,
			TotalPrice: decimal.NewFromInt(200),
			Status:     bk.StatusPending,
		}
		insertedJson, _ := json.Marshal(inserted)

		mockService.EXPECT().
			CreateBooking(gomock.Any(), testGuest, "room1",
				time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC),
				time.Date(2026, time.June, 12, 0, 0, 0, 0, time.UTC), 2).
			Return(inserted, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 201, w.Code)
		assert.JSONEq(t, string(insertedJson), w.Body.String())
	})

	t.Run("bad json", func(t *testing.T) {
		router, ctrl, _ := setupRouterWithUser(t, testGuest)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse JSON body","code":"BAD_REQUEST"}`, w.Body.String())
	})

	t.Run("unparseable date", func(t *testing.T) {
		router, ctrl, _ := setupRouterWithUser(t, testGuest)
		defer ctrl.Finish()

		body := `{"room": "room1", "checkInDate": "10/06/2026", "checkOutDate": "2026-06-12", "guests": 2}`

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse checkInDate","code":"BAD_REQUEST"}`, w.Body.String())
	})

	t.Run("invalid date range", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, testGuest)
		defer ctrl.Finish()

		mockService.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bk.Booking{}, bk.ErrInvalidDateRange).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_DATE_RANGE")
	})

	t.Run("room unavailable", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, testGuest)
		defer ctrl.Finish()

		mockService.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bk.Booking{}, bk.ErrRoomUnavailable).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
		assert.Contains(t, w.Body.String(), "ROOM_UNAVAILABLE")
	})

	t.Run("duplicate booking", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, testGuest)
		defer ctrl.Finish()

		mockService.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bk.Booking{}, bk.ErrDuplicateBooking).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
		assert.Contains(t, w.Body.String(), "DUPLICATE_BOOKING")
	})

	t.Run("repo error", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, testGuest)
		defer ctrl.Finish()

		mockService.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bk.Booking{}, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.Contains(t, w.Body.String(), "STORE_UNAVAILABLE")
	})
}

func TestGetByID(t *testing.T) {
	t.Run("owner sees own booking", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, testGuest)
		defer ctrl.Finish()

		b := bk.Booking{ID: "123", UserID: "user1"}
		mockService.EXPECT().FindBookingByID(gomock.Any(), "123").Return(b, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/123", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, testGuest)
		defer ctrl.Finish()

		b := bk.Booking{ID: "123", UserID: "user2"}
		mockService.EXPECT().FindBookingByID(gomock.Any(), "123").Return(b, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/123", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
		assert.Contains(t, w.Body.String(), "FORBIDDEN")
	})

	t.Run("admin sees any booking", func(t *testing.T) {
		admin := auth.User{ID: "admin1", Role: auth.RoleAdmin}
		router, ctrl, mockService := setupRouterWithUser(t, admin)
		defer ctrl.Finish()

		b := bk.Booking{ID: "123", UserID: "user2"}
		mockService.EXPECT().FindBookingByID(gomock.Any(), "123").Return(b, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/123", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, testGuest)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingByID(gomock.Any(), "123").Return(bk.Booking{}, bk.ErrBookingNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/123", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})
}

func TestListForRoom(t *testing.T) {
	t.Run("success without session", func(t *testing.T) {
		router, ctrl, mockService := setupPublicRouter(t)
		defer ctrl.Finish()

		bookings := []bk.Booking{{ID: "1", RoomID: "room1"}, {ID: "2", RoomID: "room1"}}
		bookingsJson, _ := json.MarshalIndent(bookings, "", "    ")
		mockService.EXPECT().FindBookingsForRoom(gomock.Any(), "room1").Return(bookings, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/room/room1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(bookingsJson), w.Body.String())
	})

	t.Run("repo error", func(t *testing.T) {
		router, ctrl, mockService := setupPublicRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingsForRoom(gomock.Any(), "room1").Return(nil, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/room/room1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
	})
}

func TestCheckout(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, testGuest)
		defer ctrl.Finish()

		session := payment.CheckoutSession{ID: "cs_1", URL: "https://pay.example.com/cs_1"}
		mockService.EXPECT().BeginCheckout(gomock.Any(), "123", testGuest).Return(session, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings/123/checkout", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"id":"cs_1","url":"https://pay.example.com/cs_1"}`, w.Body.String())
	})

	t.Run("already finalized", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, testGuest)
		defer ctrl.Finish()

		mockService.EXPECT().BeginCheckout(gomock.Any(), "123", testGuest).
			Return(payment.CheckoutSession{}, bk.ErrAlreadyFinalized).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings/123/checkout", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
		assert.Contains(t, w.Body.String(), "ALREADY_FINALIZED")
	})
}

func TestRelease(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, testGuest)
		defer ctrl.Finish()

		mockService.EXPECT().Release(gomock.Any(), "123", testGuest).Return(nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/123/release", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"message":"booking released"}`, w.Body.String())
	})

	t.Run("forbidden", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, testGuest)
		defer ctrl.Finish()

		mockService.EXPECT().Release(gomock.Any(), "123", testGuest).Return(bk.ErrForbidden).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/123/release", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
		assert.Contains(t, w.Body.String(), "FORBIDDEN")
	})

	t.Run("already finalized", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, testGuest)
		defer ctrl.Finish()

		mockService.EXPECT().Release(gomock.Any(), "123", testGuest).Return(bk.ErrAlreadyFinalized).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/123/release", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
		assert.Contains(t, w.Body.String(), "ALREADY_FINALIZED")
	})
}

func TestRefund(t *testing.T) {
	t.Run("admin refunds", func(t *testing.T) {
		admin := auth.User{ID: "admin1", Role: auth.RoleAdmin}
		router, ctrl, mockService := setupRouterWithUser(t, admin)
		defer ctrl.Finish()

		mockService.EXPECT().Refund(gomock.Any(), "123").Return(nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/123/refund", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"message":"booking refunded"}`, w.Body.String())
	})

	t.Run("regular user is blocked before the service", func(t *testing.T) {
		router, ctrl, mockService := setupRouterWithUser(t, testGuest)
		defer ctrl.Finish()

		mockService.EXPECT().Refund(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/123/refund", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
	})

	t.Run("not refundable", func(t *testing.T) {
		admin := auth.User{ID: "admin1", Role: auth.RoleAdmin}
		router, ctrl, mockService := setupRouterWithUser(t, admin)
		defer ctrl.Finish()

		mockService.EXPECT().Refund(gomock.Any(), "123").Return(bk.ErrNotRefundable).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/123/refund", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_REFUNDABLE")
	})
}
