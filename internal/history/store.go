// Package history keeps the bounded per-session conversation log and the
// read-only analytics derived from it. The in-memory store is deliberately
// not persisted; durability is the optional archive's job.
package history

import (
	"sync"
	"time"

	"github.com/accrahealth/carebot/internal/entity"
	"github.com/accrahealth/carebot/internal/intent"
)

// DefaultLimit caps a session's history; the oldest turn is evicted first.
const DefaultLimit = 50

// Turn records one completed exchange.
type Turn struct {
	Timestamp        time.Time       `json:"timestamp"`
	UserText         string          `json:"userText"`
	Intent           intent.Intent   `json:"intent"`
	Entities         []entity.Entity `json:"entities,omitempty"`
	BotResponse      string          `json:"botResponse"`
	ResponseType     string          `json:"responseType"`
	Locale           string          `json:"locale"`
	Model            string          `json:"model,omitempty"`
	LatencyMS        int64           `json:"latencyMs"`
	HadSearchResults bool            `json:"hadSearchResults"`
}

// Analytics summarizes a session's history.
type Analytics struct {
	TurnCount       int     `json:"turnCount"`
	DistinctIntents int     `json:"distinctIntents"`
	AvgLatencyMS    float64 `json:"avgLatencyMs"`
	TurnsWithSearch int     `json:"turnsWithSearch"`
}

// Store is an append-only bounded log for one session. Safe for concurrent
// use, though a single session is processed sequentially by design.
type Store struct {
	mu    sync.RWMutex
	limit int
	turns []Turn
}

// NewStore builds a store; limit <= 0 falls back to DefaultLimit.
func NewStore(limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{limit: limit}
}

// Append records a turn, evicting the oldest once the cap is reached.
func (s *Store) Append(t Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, t)
	if len(s.turns) > s.limit {
		s.turns = s.turns[len(s.turns)-s.limit:]
	}
}

// Turns returns a copy of the log, oldest first.
func (s *Store) Turns() []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Last returns the most recent turn, if any.
func (s *Store) Last() (Turn, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.turns) == 0 {
		return Turn{}, false
	}
	return s.turns[len(s.turns)-1], true
}

// Len reports the current number of stored turns.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.turns)
}

// Reset clears the log.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = nil
}

// Analytics computes the session summary from the retained turns.
func (s *Store) Analytics() Analytics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a := Analytics{TurnCount: len(s.turns)}
	if len(s.turns) == 0 {
		return a
	}

	intents := make(map[intent.Intent]struct{})
	var totalLatency int64
	for _, t := range s.turns {
		intents[t.Intent] = struct{}{}
		totalLatency += t.LatencyMS
		if t.HadSearchResults {
			a.TurnsWithSearch++
		}
	}
	a.DistinctIntents = len(intents)
	a.AvgLatencyMS = float64(totalLatency) / float64(len(s.turns))
	return a
}
