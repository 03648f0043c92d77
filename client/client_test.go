package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/pollwidget/models"
	"github.com/danielhkuo/pollwidget/testutil"
)

func TestFetch_MirrorsPayload(t *testing.T) {
	backend := testutil.NewPollBackend(t, testutil.SamplePoll(2, 8))

	c := New(backend.URL, backend.URL)
	state, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if state.Question != "Q" {
		t.Errorf("expected question Q, got %q", state.Question)
	}
	if len(state.Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(state.Options))
	}
	if state.Options[0].Votes != 2 || state.Options[1].Votes != 8 {
		t.Errorf("state must mirror the payload exactly, got %+v", state.Options)
	}
}

func TestVote_SendsPatchWithJSONBody(t *testing.T) {
	var gotMethod, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")

		var req models.VoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode vote body: %v", err)
		}
		if req.ID != "2" {
			t.Errorf("expected vote for id 2, got %q", req.ID)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"question":"Q","options":[{"id":1,"text":"A","votes":2},{"id":2,"text":"B","votes":9}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.URL)
	state, err := c.Vote(context.Background(), "2")
	if err != nil {
		t.Fatal(err)
	}

	if gotMethod != http.MethodPatch {
		t.Errorf("expected PATCH, got %s", gotMethod)
	}
	if gotContentType != "application/json" {
		t.Errorf("expected application/json, got %q", gotContentType)
	}
	if state.Options[1].Votes != 9 {
		t.Errorf("expected updated state from response, got %+v", state.Options)
	}
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, srv.URL)
	_, err := c.Fetch(context.Background())
	if !errors.Is(err, ErrStatus) {
		t.Errorf("expected ErrStatus, got %v", err)
	}
}

func TestFetch_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"question":`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.URL)
	_, err := c.Fetch(context.Background())
	if err == nil {
		t.Error("expected a decode error for malformed JSON")
	}
}

func TestFetch_UnreachableHost(t *testing.T) {
	c := New("http://127.0.0.1:1", "http://127.0.0.1:1")
	_, err := c.Fetch(context.Background())
	if err == nil {
		t.Error("expected an error for an unreachable host")
	}
}
