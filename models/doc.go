// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the wire types shared by the widget and the demo
backend.

# Poll Payload

Both the read endpoint (GET) and the write endpoint (PATCH) exchange the same
shape:

	{
	  "question": "Tabs or spaces?",
	  "options": [
	    {"id": 1, "text": "Tabs", "votes": 4},
	    {"id": 2, "text": "Spaces", "votes": 7}
	  ]
	}

# Option IDs

Option ids may be JSON strings or JSON numbers depending on the backend.
OptionID accepts both on decode and re-encodes numeric ids as numbers, so a
payload survives a decode/encode round trip unchanged. Ids must be unique
within a poll and stable across refreshes; the renderer keys its
reconciliation on them.

# Votes

A vote submission is the minimal body

	{"id": 2}

and the server answers with the updated full poll payload.
*/
package models
