// Package api is the HTTP client for the external Travel Journal API. It
// attaches the static API key and, when a session holds a token, a bearer
// header to every request; decodes the `{ data: ... }` response envelope;
// and enforces the one global cross-cutting error policy: a 401 from any
// endpoint clears the stored session.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"travel-storefront/internal/session"
)

// Config carries the connection settings for the upstream API.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client calls the Travel Journal API. The auth token is not a field: it is
// read per request from the session attached to the context, so one shared
// client serves every user of the storefront.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// envelope is the upstream response convention. Login additionally returns
// the token at the top level, next to data.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Token   string          `json:"token"`
	Data    json.RawMessage `json:"data"`
}

// do performs one API call. body is JSON-encoded when non-nil; the decoded
// envelope is returned for callers that need more than data (login's token).
func (c *Client) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("apiKey", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	sess := session.FromContext(ctx)
	if token, ok := session.Token(sess); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &Error{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Session invalid, globally: drop the cached token and profile so
		// the next navigation re-triggers the guard's "no session" path.
		session.ClearAuth(sess)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{Status: resp.StatusCode, Message: upstreamMessage(bodyBytes)}
	}

	var env envelope
	if len(bodyBytes) > 0 {
		if err := json.Unmarshal(bodyBytes, &env); err != nil {
			return nil, fmt.Errorf("failed to decode response envelope: %w", err)
		}
	}
	return &env, nil
}

// get performs a GET and unmarshals the envelope's data field into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	env, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decodeData(env, out)
}

// post performs a POST; out may be nil when the response data is not needed.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	env, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodeData(env, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}

func decodeData(env *envelope, out any) error {
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// upstreamMessage pulls the human-readable message out of an error body.
// Validation errors arrive as an array next to the top-level message.
func upstreamMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Errors  []struct {
			Msg     string `json:"msg"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if len(payload.Errors) > 0 {
		if payload.Errors[0].Msg != "" {
			return payload.Errors[0].Msg
		}
		if payload.Errors[0].Message != "" {
			return payload.Errors[0].Message
		}
	}
	return payload.Message
}
