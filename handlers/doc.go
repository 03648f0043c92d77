// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the demo backend.

One handler struct with a storage dependency:

	h := handlers.NewPostsHandler(store)

# Endpoints

	GET   /posts → GetPosts (current poll state)
	PATCH /posts → Vote (body {"id": ...}, answers with updated state)

Vote answers 400 on a missing or unparseable id, 404 when the id names no
option in the poll, and 200 with the full updated payload otherwise — the
widget applies that payload exactly like a refresh response.
*/
package handlers
