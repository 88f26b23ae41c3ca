// File: /client/client.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"teamsync-api/utils"
)

// GenericErrorDetail is shown when the server gives no usable detail.
const GenericErrorDetail = "Ocorreu um erro. Tente novamente."

const (
	defaultTimeout      = 30 * time.Second
	defaultPollInterval = 2 * time.Second
	maxErrorBody        = 64 << 10
)

// APIError is a non-2xx answer from the TeamSync API.
type APIError struct {
	Status int
	Code   string
	Detail string
	Fields []utils.FieldError
}

func (e *APIError) Error() string {
	return fmt.Sprintf("teamsync: %d %s", e.Status, e.Detail)
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// Client talks to the TeamSync API on behalf of one session.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Session *Session

	// PollInterval is the wait between payment confirmations.
	PollInterval time.Duration

	mu       sync.Mutex
	inflight map[string]struct{}
}

func New(baseURL string, session *Session) *Client {
	return &Client{
		BaseURL:      strings.TrimRight(baseURL, "/"),
		HTTP:         &http.Client{Timeout: defaultTimeout},
		Session:      session,
		PollInterval: defaultPollInterval,
	}
}

// Do sends body as JSON and decodes the answer into out. Either may be nil.
func (c *Client) Do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Session != nil {
		if token := c.Session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeError(resp)
		if apiErr.Status == http.StatusUnauthorized && c.Session != nil && c.Session.Token() != "" {
			// The token expired or was revoked; keep nothing stale around.
			_ = c.Session.Logout()
		}
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

func decodeError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode, Detail: GenericErrorDetail}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var body struct {
		Detail json.RawMessage    `json:"detail"`
		Code   string             `json:"code"`
		Errors []utils.FieldError `json:"errors"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return apiErr
	}
	apiErr.Code = body.Code
	apiErr.Fields = body.Errors

	var detail string
	if err := json.Unmarshal(body.Detail, &detail); err == nil && strings.TrimSpace(detail) != "" {
		apiErr.Detail = detail
	} else if len(body.Errors) > 0 {
		apiErr.Detail = body.Errors[0].Message
	}
	return apiErr
}
