// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/danielhkuo/pollwidget/models"
)

// ErrUnknownOption is returned when a vote names an option id the poll does
// not contain.
var ErrUnknownOption = errors.New("unknown option id")

// Store is the demo backend's poll storage: read the current state, or
// record one vote and read the result.
type Store interface {
	Get(ctx context.Context) (models.PollState, error)
	Vote(ctx context.Context, id models.OptionID) (models.PollState, error)
}

// MemoryStore holds the poll in process memory. State lives exactly as long
// as the process; this is the demo backend's default.
type MemoryStore struct {
	mu    sync.Mutex
	state models.PollState
}

// NewMemory seeds an in-memory store with a question and option texts,
// assigning each option a fresh uuid and zero votes.
func NewMemory(question string, optionTexts []string) *MemoryStore {
	state := models.PollState{Question: question}
	for _, text := range optionTexts {
		state.Options = append(state.Options, models.Option{
			ID:   models.OptionID(uuid.NewString()),
			Text: text,
		})
	}
	return &MemoryStore{state: state}
}

// NewMemoryFromState seeds an in-memory store with an exact poll state.
func NewMemoryFromState(state models.PollState) *MemoryStore {
	return &MemoryStore{state: state.Clone()}
}

func (s *MemoryStore) Get(_ context.Context) (models.PollState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone(), nil
}

func (s *MemoryStore) Vote(_ context.Context, id models.OptionID) (models.PollState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Options {
		if s.state.Options[i].ID == id {
			s.state.Options[i].Votes++
			return s.state.Clone(), nil
		}
	}
	return models.PollState{}, ErrUnknownOption
}
