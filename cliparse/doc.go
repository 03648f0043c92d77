// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration
for the demo backend.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first (godotenv); real
environment variables take precedence over it, and CLI flags take
precedence over both.

# Config Fields

  - Port: server listen port (default: 3880)
  - DatabaseURL: connection string; empty selects the in-memory store
  - DatabaseType: sqlite or postgres (default: sqlite)
  - Question, Options: the seed poll (default: "Tabs or spaces?")

# CLI Flags

	-p         Server port
	-d         Database URL
	-t         Database type
	-question  Poll question
	-options   Comma-separated option texts

# Environment Variables

	PORT, DATABASE_URL, DATABASE_TYPE, POLL_QUESTION, POLL_OPTIONS
*/
package cliparse
