package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidSignature = errors.New("webhook signature verification failed")

const signatureTolerance = 5 * time.Minute

// Event is a webhook notification from the payment provider.
type Event struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	BookingID string `json:"bookingId"`
	Reference string `json:"reference"`
}

const (
	EventPaymentSucceeded = "payment.succeeded"
	EventPaymentFailed    = "payment.failed"
)

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Client captures and refunds payments for bookings. Bookings are keyed by
// their reference so the provider never sees internal IDs.
type Client interface {
	CreateCheckoutSession(ctx context.Context, bookingID, reference string, amount decimal.Decimal, currency string) (CheckoutSession, error)
	CreateRefund(ctx context.Context, reference string, amount decimal.Decimal) error
	ParseEvent(payload []byte, signatureHeader string) (Event, error)
}

type HTTPClient struct {
	baseURL       string
	secretKey     string
	webhookSecret string
	client        *http.Client
	now           func() time.Time
}

func NewClient(baseURL, secretKey, webhookSecret string) *HTTPClient {
	return &HTTPClient{
		baseURL:       baseURL,
		secretKey:     secretKey,
		webhookSecret: webhookSecret,
		client:        &http.Client{Timeout: 10 * time.Second},
		now:           time.Now,
	}
}

type checkoutRequest struct {
	BookingID string `json:"bookingId"`
	Reference string `json:"reference"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
}

func (c *HTTPClient) CreateCheckoutSession(ctx context.Context, bookingID, reference string, amount decimal.Decimal, currency string) (CheckoutSession, error) {
	sessionURL, err := c.getURL("v1", "checkout", "sessions")

	if err != nil {
		return CheckoutSession{}, err
	}

	body, err := json.Marshal(checkoutRequest{
		BookingID: bookingID,
		Reference: reference,
		Amount:    amount.StringFixed(2),
		Currency:  currency,
	})

	if err != nil {
		return CheckoutSession{}, fmt.Errorf("failed to marshal body: %w", err)
	}

	bodyBytes, err := c.post(ctx, sessionURL, body)

	if err != nil {
		return CheckoutSession{}, err
	}

	var session CheckoutSession
	err = json.Unmarshal(bodyBytes, &session)

	if err != nil {
		return CheckoutSession{}, fmt.Errorf("failed reading body: %w", err)
	}

	return session, nil
}

type refundRequest struct {
	Reference string `json:"reference"`
	Amount    string `json:"amount"`
}

func (c *HTTPClient) CreateRefund(ctx context.Context, reference string, amount decimal.Decimal) error {
	refundURL, err := c.getURL("v1", "refunds")

	if err != nil {
		return err
	}

	body, err := json.Marshal(refundRequest{
		Reference: reference,
		Amount:    amount.StringFixed(2),
	})

	if err != nil {
		return fmt.Errorf("failed to marshal body: %w", err)
	}

	_, err = c.post(ctx, refundURL, body)

	return err
}

// ParseEvent verifies the provider signature and decodes the event. The
// header carries a timestamp and an HMAC-SHA256 of "<timestamp>.<payload>";
// stale timestamps are rejected to stop replayed captures.
func (c *HTTPClient) ParseEvent(payload []byte, signatureHeader string) (Event, error) {
	timestamp, signature, err := splitSignatureHeader(signatureHeader)

	if err != nil {
		return Event{}, err
	}

	if c.now().Sub(time.Unix(timestamp, 0)).Abs() > signatureTolerance {
		return Event{}, ErrInvalidSignature
	}

	expected := SignPayload(c.webhookSecret, timestamp, payload)

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return Event{}, ErrInvalidSignature
	}

	var event Event
	err = json.Unmarshal(payload, &event)

	if err != nil {
		return Event{}, fmt.Errorf("failed to decode event: %w", err)
	}

	return event, nil
}

// SignPayload computes the hex HMAC the provider puts in the v1 field.
func SignPayload(secret string, timestamp int64, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", timestamp)
	mac.Write(payload)

	return hex.EncodeToString(mac.Sum(nil))
}

func splitSignatureHeader(header string) (int64, string, error) {
	var timestamp int64
	var signature string

	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")

		if !found {
			continue
		}

		switch key {
		case "t":
			parsed, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return 0, "", ErrInvalidSignature
			}
			timestamp = parsed
		case "v1":
			signature = value
		}
	}

	if timestamp == 0 || len(signature) == 0 {
		return 0, "", ErrInvalidSignature
	}

	return timestamp, signature, nil
}

func (c *HTTPClient) post(ctx context.Context, postURL string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", postURL, bytes.NewReader(body))

	if err != nil {
		return nil, fmt.Errorf("failed create new request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	res, err := c.client.Do(req)

	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer res.Body.Close()

	bodyBytes, readErr := io.ReadAll(res.Body)

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		if readErr != nil {
			return nil, fmt.Errorf("request failed with status %d; also failed reading body: %w", res.StatusCode, readErr)
		}
		return nil, fmt.Errorf("request failed with status '%v' and body:\n%v", res.StatusCode, string(bodyBytes))
	}

	if readErr != nil {
		return nil, fmt.Errorf("failed to read body: %w", readErr)
	}

	return bodyBytes, nil
}

func (c *HTTPClient) getURL(elem ...string) (string, error) {
	clientURL, err := url.JoinPath(c.baseURL, elem...)
	if err != nil {
		return "", fmt.Errorf("failed to create URL: %w", err)
	}

	return clientURL, nil
}
