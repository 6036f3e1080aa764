package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"hospitaldesk/pkg/response"
)

// ErrRequestFailed is the generic failure every GET error collapses into.
// POST failures prefer the server-supplied message and fall back to this.
var ErrRequestFailed = errors.New("request failed")

const requestTimeout = 10 * time.Second

// Client issues JSON requests against the desk API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewClient(baseURL string, log *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		log: log,
	}
}

// GetJSON fetches path and decodes the body into out. Every failure mode,
// transport, status or malformed body, collapses into ErrRequestFailed; the
// detail only goes to the log.
func (c *Client) GetJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		c.log.Warnf("Failed to build GET %s: %+v", path, err)
		return ErrRequestFailed
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warnf("GET %s failed: %+v", path, err)
		return ErrRequestFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log.Warnf("GET %s returned status %d", path, resp.StatusCode)
		return ErrRequestFailed
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Warnf("Failed to decode GET %s response: %+v", path, err)
		return ErrRequestFailed
	}

	return nil
}

// PostJSON posts payload to path. On a non-success status it returns the
// server-supplied error message when one is present, otherwise
// ErrRequestFailed. On success the body is decoded into out when out is
// non-nil.
func (c *Client) PostJSON(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		c.log.Warnf("Failed to encode POST %s payload: %+v", path, err)
		return ErrRequestFailed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		c.log.Warnf("Failed to build POST %s: %+v", path, err)
		return ErrRequestFailed
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warnf("POST %s failed: %+v", path, err)
		return ErrRequestFailed
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warnf("Failed to read POST %s response: %+v", path, err)
		return ErrRequestFailed
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errBody response.ErrorBody
		if err := json.Unmarshal(data, &errBody); err == nil && strings.TrimSpace(errBody.Error) != "" {
			return errors.New(errBody.Error)
		}
		c.log.Warnf("POST %s returned status %d without an error message", path, resp.StatusCode)
		return ErrRequestFailed
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		c.log.Warnf("Failed to decode POST %s response: %+v", path, err)
		return ErrRequestFailed
	}

	return nil
}
