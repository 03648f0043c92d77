// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client implements the HTTP client side of the poll protocol.

# Endpoints

Two configured URLs, two operations:

	c := client.New(readURL, writeURL)
	state, err := c.Fetch(ctx)        // GET readURL
	state, err := c.Vote(ctx, "2")    // PATCH writeURL, body {"id": 2}

Vote sends Content-Type: application/json and expects the server to answer
with the updated full poll payload, the same shape Fetch returns.

# Errors

Unlike the original widget, failures are explicit rather than silently
swallowed: unreachable hosts and malformed JSON come back wrapped, and
non-2xx statuses wrap ErrStatus with the status code and response body.
Callers decide whether to surface or ignore them; the widget keeps its
previous state either way.
*/
package client
