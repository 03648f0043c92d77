// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/danielhkuo/pollwidget/models"
)

// SQLStore persists the poll through database/sql. Works against both
// sqlite and postgres; see the db package for the schema.
type SQLStore struct {
	db     *sql.DB
	pollID string
}

// NewSQL returns a store bound to the single demo poll, seeding it with the
// given question and options if the database is empty. An existing poll is
// left untouched so votes survive restarts.
func NewSQL(db *sql.DB, question string, optionTexts []string) (*SQLStore, error) {
	var pollID string
	err := db.QueryRow(`SELECT id FROM poll LIMIT 1`).Scan(&pollID)
	if err == sql.ErrNoRows {
		pollID = uuid.NewString()
		if _, err := db.Exec(`
			INSERT INTO poll (id, question)
			VALUES ($1, $2)
		`, pollID, question); err != nil {
			return nil, fmt.Errorf("failed to seed poll: %w", err)
		}
		for i, text := range optionTexts {
			if _, err := db.Exec(`
				INSERT INTO option (id, poll_id, position, text, votes)
				VALUES ($1, $2, $3, $4, 0)
			`, uuid.NewString(), pollID, i, text); err != nil {
				return nil, fmt.Errorf("failed to seed option: %w", err)
			}
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to look up poll: %w", err)
	}

	return &SQLStore{db: db, pollID: pollID}, nil
}

func (s *SQLStore) Get(ctx context.Context) (models.PollState, error) {
	var state models.PollState

	err := s.db.QueryRowContext(ctx, `
		SELECT question FROM poll WHERE id = $1
	`, s.pollID).Scan(&state.Question)
	if err != nil {
		return state, fmt.Errorf("failed to query poll: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, text, votes
		FROM option
		WHERE poll_id = $1
		ORDER BY position
	`, s.pollID)
	if err != nil {
		return state, fmt.Errorf("failed to query options: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var opt models.Option
		if err := rows.Scan(&opt.ID, &opt.Text, &opt.Votes); err != nil {
			return state, fmt.Errorf("failed to scan option: %w", err)
		}
		state.Options = append(state.Options, opt)
	}
	return state, rows.Err()
}

func (s *SQLStore) Vote(ctx context.Context, id models.OptionID) (models.PollState, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE option SET votes = votes + 1
		WHERE id = $1 AND poll_id = $2
	`, string(id), s.pollID)
	if err != nil {
		return models.PollState{}, fmt.Errorf("failed to record vote: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.PollState{}, fmt.Errorf("failed to check vote result: %w", err)
	}
	if n == 0 {
		return models.PollState{}, ErrUnknownOption
	}
	return s.Get(ctx)
}
