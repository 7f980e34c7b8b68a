package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/patrickmn/go-cache"
)

var ErrInvalidSession = errors.New("invalid or expired session token")

// Verifier resolves a bearer session token to an authenticated user.
type Verifier interface {
	VerifyToken(ctx context.Context, token string) (User, error)
}

// Client talks to the identity provider's REST API. Verified sessions are
// cached briefly so each request does not round-trip to the provider.
type Client struct {
	baseURL   string
	secretKey string
	client    *http.Client
	cache     *cache.Cache
}

func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		baseURL:   baseURL,
		secretKey: secretKey,
		client:    &http.Client{Timeout: 10 * time.Second},
		cache:     cache.New(1*time.Minute, 5*time.Minute),
	}
}

type sessionResponse struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func (c *Client) VerifyToken(ctx context.Context, token string) (User, error) {
	cachedUser, found := c.cache.Get(token)

	if found {
		return cachedUser.(User), nil
	}

	verifyURL, err := c.getURL("v1", "sessions", "verify")

	if err != nil {
		return User{}, err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", verifyURL, http.NoBody)

	if err != nil {
		return User{}, fmt.Errorf("failed create new request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("X-Session-Token", token)

	res, err := c.client.Do(req)

	if err != nil {
		return User{}, fmt.Errorf("failed to send request: %w", err)
	}

	defer res.Body.Close()

	bodyBytes, readErr := io.ReadAll(res.Body)

	if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusNotFound {
		return User{}, ErrInvalidSession
	}

	if res.StatusCode != http.StatusOK {
		if readErr != nil {
			return User{}, fmt.Errorf("request failed with status %d; also failed reading body: %w", res.StatusCode, readErr)
		}
		return User{}, fmt.Errorf("request failed with status '%v' and body:\n%v", res.StatusCode, string(bodyBytes))
	}

	if readErr != nil {
		return User{}, fmt.Errorf("failed to read body: %w", readErr)
	}

	var session sessionResponse
	err = json.Unmarshal(bodyBytes, &session)

	if err != nil {
		return User{}, fmt.Errorf("failed reading body: %w", err)
	}

	role, err := ParseRole(session.Role)

	if err != nil {
		return User{}, fmt.Errorf("provider returned unusable session: %w", err)
	}

	user := User{
		ID:    session.UserID,
		Name:  session.Name,
		Email: session.Email,
		Role:  role,
	}

	c.cache.Set(token, user, cache.DefaultExpiration)

	return user, nil
}

func (c *Client) getURL(elem ...string) (string, error) {
	clientURL, err := url.JoinPath(c.baseURL, elem...)
	if err != nil {
		return "", fmt.Errorf("failed to create URL: %w", err)
	}

	return clientURL, nil
}
