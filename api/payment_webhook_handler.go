package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	bk "github.com/marbeya/quickstay-backend/booking"
	"github.com/marbeya/quickstay-backend/payment"
)

// PaymentRecorder is the slice of the booking service the webhook drives.
type PaymentRecorder interface {
	MarkPaid(ctx context.Context, id string) error
	MarkPaymentFailed(ctx context.Context, id string) error
}

type WebhookVerifier interface {
	ParseEvent(payload []byte, signatureHeader string) (payment.Event, error)
}

type PaymentWebhookHandler struct {
	verifier WebhookVerifier
	recorder PaymentRecorder
	seen     *cache.Cache
	logger   *slog.Logger
}

func NewPaymentWebhookHandler(verifier WebhookVerifier, recorder PaymentRecorder) *PaymentWebhookHandler {
	return &PaymentWebhookHandler{
		verifier: verifier,
		recorder: recorder,
		seen:     cache.New(24*time.Hour, 1*time.Hour),
		logger:   slog.Default().With("component", "payment-webhook"),
	}
}

func (h *PaymentWebhookHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/webhook", h.Handle)
}

// Handle processes payment events. Replayed deliveries of the same event ID
// are acknowledged without reprocessing; MarkPaid is idempotent anyway, so
// the cache only spares store round-trips.
func (h *PaymentWebhookHandler) Handle(c *gin.Context) {
	payload, err := c.GetRawData()

	if err != nil {
		c.Error(err)
		respondError(c, http.StatusBadRequest, CodeBadRequest, "failed to read body")
		return
	}

	event, err := h.verifier.ParseEvent(payload, c.GetHeader("Payment-Signature"))

	if err != nil {
		c.Error(err)
		respondError(c, http.StatusBadRequest, CodeBadRequest, "invalid webhook payload")
		return
	}

	if _, duplicate := h.seen.Get(event.ID); duplicate {
		c.JSON(http.StatusOK, gin.H{"message": "event already processed"})
		return
	}

	switch event.Type {
	case payment.EventPaymentSucceeded:
		err = h.recorder.MarkPaid(c.Request.Context(), event.BookingID)
	case payment.EventPaymentFailed:
		err = h.recorder.MarkPaymentFailed(c.Request.Context(), event.BookingID)
	default:
		h.logger.Info("ignoring unhandled payment event", "type", event.Type, "eventId", event.ID)
		c.JSON(http.StatusOK, gin.H{"message": "event ignored"})
		return
	}

	if errors.Is(err, bk.ErrBookingNotFound) {
		// acknowledge so the provider stops retrying a booking we will
		// never know about
		h.logger.Warn("payment event for unknown booking", "bookingId", event.BookingID, "eventId", event.ID)
		c.JSON(http.StatusOK, gin.H{"message": "booking unknown"})
		return
	}

	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, CodeStoreUnavailable, "failed to process event")
		return
	}

	h.seen.Set(event.ID, struct{}{}, cache.DefaultExpiration)

	c.JSON(http.StatusOK, gin.H{"message": "event processed"})
}
