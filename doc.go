// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the pollwidget demo backend.

pollwidget is an embeddable poll widget: a host application mounts a
widget.Widget, which fetches a poll (question + weighted options) from a
read endpoint, lets the user cast exactly one vote against a write
endpoint, and keeps the displayed counts fresh on a timer. This binary is
the trivial companion backend that serves such a poll.

# Starting the Server

	go run main.go

That serves the default poll from process memory. With persistence:

	go run main.go -d poll.db -t sqlite
	DATABASE_URL=postgres://... go run main.go -t postgres

# Configuration

Optional settings (flags fall back to env, see cliparse):

  - PORT (-p): server port (default: 3880)
  - DATABASE_URL (-d): empty selects the in-memory store
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - POLL_QUESTION / POLL_OPTIONS (-question / -options): the seed poll

# Architecture

Library packages consumed by hosts embedding the widget:

  - widget: state store, refresh loop, vote action, lifecycle
  - render: pure state → view mapping, bar math, HTML snippet
  - reltime: self-updating "updated N ago" label
  - client: GET/PATCH protocol client
  - models: wire types

Backend packages behind this binary:

  - handlers: GET /posts and PATCH /posts
  - router: route definitions, logging, CORS
  - middleware: logging and JSON helpers
  - store: in-memory or SQL-backed vote storage
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
