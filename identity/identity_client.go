package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// Session is the identity the auth service vouches for. The booking core
// trusts it as-is and performs no authentication of its own.
type Session struct {
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

var ErrInvalidSession = errors.New("invalid or expired session token")

type Provider interface {
	VerifySession(ctx context.Context, token string) (*Session, error)
}

type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	cache   *cache.Cache
}

func NewClient(baseURL, apiKey string) *Client {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
		cache:   cache.New(1*time.Minute, 5*time.Minute),
	}
}

func (c *Client) VerifySession(ctx context.Context, token string) (*Session, error) {
	token = strings.TrimSpace(token)

	if len(token) == 0 {
		return nil, ErrInvalidSession
	}

	cachedSession, found := c.cache.Get(token)

	if found {
		return cachedSession.(*Session), nil
	}

	sessionURL, err := c.getURL("v1", "sessions", "verify")

	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", sessionURL, http.NoBody)

	if err != nil {
		return nil, fmt.Errorf("failed create new request: %w", err)
	}

	c.setHeaders(req)
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := c.client.Do(req)

	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden {
		return nil, ErrInvalidSession
	}

	bodyBytes, readErr := io.ReadAll(res.Body)

	if res.StatusCode != http.StatusOK {
		if readErr != nil {
			return nil, fmt.Errorf("request failed with status %d; also failed reading body: %w", res.StatusCode, readErr)
		}
		return nil, fmt.Errorf("request failed with status '%v' and body:\n%v", res.StatusCode, string(bodyBytes))
	}

	if readErr != nil {
		return nil, fmt.Errorf("failed to read body: %w", readErr)
	}

	var session = Session{}
	err = json.Unmarshal(bodyBytes, &session)

	if err != nil {
		return nil, fmt.Errorf("failed reading body: %w", err)
	}

	c.cache.Set(token, &session, cache.DefaultExpiration)

	return &session, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)
}

func (c *Client) getURL(elem ...string) (string, error) {
	clientURL, err := url.JoinPath(c.baseURL, elem...)
	if err != nil {
		return "", fmt.Errorf("failed to create URL: %w", err)
	}

	return clientURL, nil
}
