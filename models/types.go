package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// OptionID identifies an option within a poll. Backends may use either JSON
// strings or JSON numbers for ids; both decode into an OptionID, and numeric
// ids re-encode as numbers so a round trip preserves the wire shape.
type OptionID string

func (id *OptionID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = OptionID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("option id must be a string or number: %w", err)
	}
	*id = OptionID(n.String())
	return nil
}

func (id OptionID) MarshalJSON() ([]byte, error) {
	// Only canonical integers go out as numbers; ids like "007" or "+7"
	// would be invalid JSON if emitted raw, so they stay strings.
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Domain types

// Option is one votable answer within a poll.
type Option struct {
	ID    OptionID `json:"id"`
	Text  string   `json:"text"`
	Votes int      `json:"votes"`
}

// PollState is the full poll payload exchanged with the read and write
// endpoints: the question plus its ordered option list.
type PollState struct {
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

// Clone returns a deep copy so callers can hold a snapshot without racing
// later wholesale state replacements.
func (s PollState) Clone() PollState {
	out := PollState{Question: s.Question}
	if s.Options != nil {
		out.Options = make([]Option, len(s.Options))
		copy(out.Options, s.Options)
	}
	return out
}

// Request types

type VoteRequest struct {
	ID OptionID `json:"id"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
