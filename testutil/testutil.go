// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/danielhkuo/pollwidget/models"
)

// SamplePoll builds a two-option poll with the given vote counts.
func SamplePoll(votesA, votesB int) models.PollState {
	return models.PollState{
		Question: "Q",
		Options: []models.Option{
			{ID: "1", Text: "A", Votes: votesA},
			{ID: "2", Text: "B", Votes: votesB},
		},
	}
}

// PollBackend is a canned poll server for client and widget tests. It
// implements the wire protocol (GET and PATCH on /) over an in-memory
// state, counting requests so tests can assert on traffic.
type PollBackend struct {
	*httptest.Server

	mu      sync.Mutex
	state   models.PollState
	Fetches int
	Votes   int
}

// NewPollBackend starts a backend seeded with the given state. Closed via
// t.Cleanup.
func NewPollBackend(t *testing.T, initial models.PollState) *PollBackend {
	t.Helper()

	b := &PollBackend{state: initial.Clone()}
	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.Server.Close)
	return b
}

// SetState replaces the served state, like a second voter changing counts
// between refreshes.
func (b *PollBackend) SetState(state models.PollState) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = state.Clone()
}

func (b *PollBackend) serve(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		b.Fetches++
	case http.MethodPatch:
		b.Votes++
		var req models.VoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		found := false
		for i := range b.state.Options {
			if b.state.Options[i].ID == req.ID {
				b.state.Options[i].Votes++
				found = true
			}
		}
		if !found {
			w.WriteHeader(http.StatusNotFound)
			return
		}
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(b.state); err != nil {
		panic(err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
