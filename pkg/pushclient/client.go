package pushclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"upkeep/internal/domain/entity"
	"upkeep/internal/errors"
	"upkeep/pkg/offlinequeue"
)

const (
	pathRegistrations = "/api/v1/registrations"
	pathRevoke        = "/api/v1/registrations/revoke"
	pathVAPIDKey      = "/api/v1/push/web/vapid-key"

	codeWebPushDisabled = "WEB_PUSH_DISABLED"
)

// TokenSource returns the bearer token for the signed-in user.
type TokenSource func(ctx context.Context) (string, error)

// APIError is a non-2xx response decoded from the API error envelope.
type APIError struct {
	Status    int
	Code      string
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upkeep api: %d %s: %s", e.Status, e.Code, e.Message)
}

// Client calls the registration endpoints of the upkeep API.
type Client struct {
	baseURL    string
	token      TokenSource
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithOfflineQueue routes mutations through an offline queue so that
// registrations made without connectivity are replayed later. Apply it after
// WithHTTPClient.
func WithOfflineQueue(q *offlinequeue.Queue) ClientOption {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Transport = &offlinequeue.Transport{Base: c.httpClient.Transport, Queue: q}
		c.httpClient = &hc
	}
}

// NewClient creates a Client for the API at baseURL.
func NewClient(baseURL string, token TokenSource, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Register upserts reg for the signed-in user.
func (c *Client) Register(ctx context.Context, reg *Registration) (*entity.DeviceRegistration, error) {
	var out entity.DeviceRegistration
	if err := c.doJSON(ctx, http.MethodPost, pathRegistrations, reg, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Revoke deactivates the registration identified by channel and externalID.
func (c *Client) Revoke(ctx context.Context, channel entity.Channel, externalID string) error {
	body := map[string]string{"channel": string(channel), "external_id": externalID}

	return c.doJSON(ctx, http.MethodPost, pathRevoke, body, nil)
}

// VAPIDKey implements VAPIDKeySource. A server without web push reports ErrUnsupported.
func (c *Client) VAPIDKey(ctx context.Context) (string, error) {
	var out struct {
		PublicKey string `json:"public_key"`
	}
	err := c.doJSON(ctx, http.MethodGet, pathVAPIDKey, nil, &out)

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Code == codeWebPushDisabled {
		return "", errors.Wrap(ErrUnsupported, apiErr.Message)
	}
	if err != nil {
		return "", err
	}

	return out.PublicKey, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		token, err := c.token(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to obtain access token")
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Keep offlinequeue.ErrQueued reachable through the url.Error wrapper
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp)
	}
	if result == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return errors.Wrap(err, "failed to decode response envelope")
	}
	if err := json.Unmarshal(envelope.Data, result); err != nil {
		return errors.Wrap(err, "failed to decode response data")
	}

	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Code: "HTTP_ERROR", Message: http.StatusText(resp.StatusCode)}

	var envelope struct {
		Error *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
		Meta *struct {
			RequestID string `json:"request_id"`
		} `json:"meta"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
		if envelope.Error != nil {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		}
		if envelope.Meta != nil {
			apiErr.RequestID = envelope.Meta.RequestID
		}
	}

	return apiErr
}
