// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pollwidget/middleware"
	"github.com/danielhkuo/pollwidget/models"
	"github.com/danielhkuo/pollwidget/store"
)

type PostsHandler struct {
	store store.Store
}

func NewPostsHandler(s store.Store) *PostsHandler {
	return &PostsHandler{store: s}
}

// GetPosts handles GET /posts
// Returns the current poll state.
func (h *PostsHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	state, err := h.store.Get(r.Context())
	if err != nil {
		slog.Error("failed to read poll state", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, state)
}

// Vote handles PATCH /posts
// Increments the vote count for the given option id and returns the
// updated full poll state.
func (h *PostsHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	state, err := h.store.Vote(r.Context(), req.ID)
	if errors.Is(err, store.ErrUnknownOption) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Option not found")
		return
	}
	if err != nil {
		slog.Error("failed to record vote", "error", err, "option_id", req.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}

	slog.Info("vote recorded", "option_id", req.ID)

	middleware.JSONResponse(w, http.StatusOK, state)
}
