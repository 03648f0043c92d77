// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/danielhkuo/pollwidget/handlers"
	"github.com/danielhkuo/pollwidget/middleware"
	"github.com/danielhkuo/pollwidget/store"
)

func NewRouter(s store.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)

	// The widget is embedded on arbitrary origins; PATCH must be allowed
	// cross-origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	postsHandler := handlers.NewPostsHandler(s)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Poll state
	r.Get("/posts", postsHandler.GetPosts)
	r.Patch("/posts", postsHandler.Vote)

	// Root endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pollwidget demo backend"))
	})

	return r
}
