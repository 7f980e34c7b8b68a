package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// BookingConfirmation is the payload for the confirmation email sent after
// a booking is created. No templating happens here; the mail provider owns
// the layout.
type BookingConfirmation struct {
	To        string
	Reference string
	HotelName string
	CheckIn   time.Time
	CheckOut  time.Time
	Total     decimal.Decimal
}

type Mailer interface {
	SendBookingConfirmation(ctx context.Context, confirmation BookingConfirmation) error
}

type Client struct {
	baseURL   string
	apiKey    string
	fromEmail string
	client    *http.Client
}

func NewClient(baseURL, apiKey, fromEmail string) *Client {
	return &Client{
		baseURL:   baseURL,
		apiKey:    apiKey,
		fromEmail: fromEmail,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

type sendRequest struct {
	From         string            `json:"from"`
	To           string            `json:"to"`
	TemplateID   string            `json:"templateId"`
	TemplateData map[string]string `json:"templateData"`
}

func (c *Client) SendBookingConfirmation(ctx context.Context, confirmation BookingConfirmation) error {
	sendURL, err := url.JoinPath(c.baseURL, "v3", "mail", "send")

	if err != nil {
		return fmt.Errorf("failed to create URL: %w", err)
	}

	body, err := json.Marshal(sendRequest{
		From:       c.fromEmail,
		To:         confirmation.To,
		TemplateID: "booking-confirmation",
		TemplateData: map[string]string{
			"reference": confirmation.Reference,
			"hotel":     confirmation.HotelName,
			"checkIn":   confirmation.CheckIn.Format(time.DateOnly),
			"checkOut":  confirmation.CheckOut.Format(time.DateOnly),
			"total":     confirmation.Total.StringFixed(2),
		},
	})

	if err != nil {
		return fmt.Errorf("failed to marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", sendURL, bytes.NewReader(body))

	if err != nil {
		return fmt.Errorf("failed create new request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.client.Do(req)

	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		bodyBytes, readErr := io.ReadAll(res.Body)
		if readErr != nil {
			return fmt.Errorf("request failed with status %d; also failed reading body: %w", res.StatusCode, readErr)
		}
		return fmt.Errorf("request failed with status '%v' and body:\n%v", res.StatusCode, string(bodyBytes))
	}

	return nil
}
