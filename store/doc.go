// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store holds the demo backend's poll state.

Two implementations of the same two-method Store interface:

  - MemoryStore: mutex-guarded in-process state, gone when the process
    exits. The default.
  - SQLStore: the same poll persisted via database/sql (sqlite or
    postgres), seeded on first run so votes survive restarts.

Vote increments the named option's count and returns the updated full
state, matching what the PATCH endpoint must answer with. Voting for an id
the poll does not contain returns ErrUnknownOption.
*/
package store
