// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires the demo backend's routes.

# Routes

	GET   /health → liveness probe
	GET   /posts  → current poll state
	PATCH /posts  → record a vote
	GET   /       → banner

Every route runs behind request logging and a permissive CORS policy
(go-chi/cors), since the widget fetches and votes from whatever origin it
is embedded on.
*/
package router
