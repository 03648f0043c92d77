// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package widget implements the embeddable poll widget: state store, refresh
loop, vote action, and the Voting→Revealed state machine.

# Usage

A host instantiates the widget explicitly and owns its lifecycle:

	w := widget.New(widget.Config{
		RequestAPI:       "https://example.com/posts",
		VoteAPI:          "https://example.com/posts",
		UpdateFrequency:  15 * time.Minute,
		ShowRelativeTime: true,
	}, nil)
	w.OnView(func(v render.View) { host.Paint(v) })
	w.OnError(func(err error) { host.Toast(err) })

	w.Start(ctx)
	defer w.Stop()

	// on user click:
	w.Vote(ctx, optionID)

# Lifecycle

Start issues an immediate refresh and arms the recurring timer; every
successful response replaces the whole state (last write wins) and emits one
view. Stop frees the timer and the relative-time label unconditionally and
flips the mounted flag, so a response that arrives after Stop is discarded
rather than mutating a detached widget.

# Voting

The first accepted Vote flips the visibility flag synchronously — the UI
reveals before the network round trip — then submits {"id": ...} and merges
the response exactly like a refresh. Every later Vote call in the same mount
is a no-op, which is the only double-vote protection; the server is not
assumed idempotent.

If a vote and a refresh are in flight at once, whichever response resolves
last wins. There is no ordering or version check.
*/
package widget
