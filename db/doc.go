// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles schema creation for the demo backend.

# Schema

Two tables: poll (id, question) and option (id, poll_id, position, text,
votes). The votes column carries a CHECK (votes >= 0) so counts can never go
negative at the storage layer.

The DDL sticks to the subset both sqlite and postgres accept, matching the
-t sqlite|postgres switch in cliparse.

# Usage

	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
	}

CreateSchema is idempotent (IF NOT EXISTS throughout).
*/
package db
