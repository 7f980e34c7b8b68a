package payment_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/marbeya/quickstay-backend/payment"
)

const webhookSecret = "whsec_test"

func signedHeader(secret string, timestamp int64, payload []byte) string {
	return fmt.Sprintf("t=%d,v1=%s", timestamp, payment.SignPayload(secret, timestamp, payload))
}

func TestParseEvent(t *testing.T) {
	client := payment.NewClient("https://pay.example.com", "sk_test", webhookSecret)
	payload := []byte(`{"id": "evt_1", "type": "payment.succeeded", "bookingId": "123", "reference": "ref-123"}`)

	t.Run("valid signature", func(t *testing.T) {
		header := signedHeader(webhookSecret, time.Now().Unix(), payload)

		event, err := client.ParseEvent(payload, header)

		require.Nil(t, err)
		require.Equal(t, "evt_1", event.ID)
		require.Equal(t, payment.EventPaymentSucceeded, event.Type)
		require.Equal(t, "123", event.BookingID)
		require.Equal(t, "ref-123", event.Reference)
	})

	t.Run("wrong secret", func(t *testing.T) {
		header := signedHeader("whsec_other", time.Now().Unix(), payload)

		_, err := client.ParseEvent(payload, header)

		require.ErrorIs(t, err, payment.ErrInvalidSignature)
	})

	t.Run("tampered payload", func(t *testing.T) {
		header := signedHeader(webhookSecret, time.Now().Unix(), payload)
		tampered := []byte(`{"id": "evt_1", "type": "payment.succeeded", "bookingId": "456", "reference": "ref-123"}`)

		_, err := client.ParseEvent(tampered, header)

		require.ErrorIs(t, err, payment.ErrInvalidSignature)
	})

	t.Run("stale timestamp", func(t *testing.T) {
		stale := time.Now().Add(-10 * time.Minute).Unix()
		header := signedHeader(webhookSecret, stale, payload)

		_, err := client.ParseEvent(payload, header)

		require.ErrorIs(t, err, payment.ErrInvalidSignature)
	})

	t.Run("malformed header", func(t *testing.T) {
		for _, header := range []string{"", "t=abc,v1=deadbeef", "v1=deadbeef", fmt.Sprintf("t=%d", time.Now().Unix())} {
			_, err := client.ParseEvent(payload, header)

			require.ErrorIs(t, err, payment.ErrInvalidSignature, "header %q", header)
		}
	})

	t.Run("invalid event json", func(t *testing.T) {
		bad := []byte(`not json`)
		header := signedHeader(webhookSecret, time.Now().Unix(), bad)

		_, err := client.ParseEvent(bad, header)

		require.Error(t, err)
		require.NotErrorIs(t, err, payment.ErrInvalidSignature)
	})
}
