// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/danielhkuo/pollwidget/models"
)

// ErrStatus is returned (wrapped, with status code and body) when an
// endpoint answers with a non-2xx status.
var ErrStatus = errors.New("endpoint returned non-success status")

// Client talks to a poll backend: GET on the read endpoint, PATCH on the
// write endpoint. Both calls return the full poll payload.
type Client struct {
	c        *http.Client
	readURL  string
	writeURL string
}

// New creates a Client for the given read and write endpoint URLs.
func New(readURL, writeURL string) *Client {
	tr := &http.Transport{
		IdleConnTimeout:    10 * time.Second,
		DisableCompression: false,
	}
	return &Client{
		c:        &http.Client{Transport: tr, Timeout: 8 * time.Second},
		readURL:  readURL,
		writeURL: writeURL,
	}
}

// SetHTTPClient overrides the underlying HTTP client. Useful for custom
// timeouts or transports.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.c = hc
}

// Fetch retrieves the current poll state from the read endpoint.
func (c *Client) Fetch(ctx context.Context) (models.PollState, error) {
	return c.request(ctx, http.MethodGet, c.readURL, nil)
}

// Vote submits the chosen option id to the write endpoint and returns the
// updated poll state the server answers with.
func (c *Client) Vote(ctx context.Context, id models.OptionID) (models.PollState, error) {
	return c.request(ctx, http.MethodPatch, c.writeURL, models.VoteRequest{ID: id})
}

func (c *Client) request(ctx context.Context, method, url string, body any) (models.PollState, error) {
	var state models.PollState

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return state, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return state, fmt.Errorf("failed to build %s request: %w", method, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.c.Do(req)
	if err != nil {
		return state, fmt.Errorf("%s %s failed: %w", method, url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return state, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return state, fmt.Errorf("%w: %d (%s)", ErrStatus, resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, &state); err != nil {
		return state, fmt.Errorf("failed to decode poll payload: %w", err)
	}
	return state, nil
}
