package liveness

import "sync"

// Scope is an explicit liveness token for asynchronous completions.
// A scope is created when an interactive context (a booking screen, a
// profile view) becomes active and marked dead when it is torn down.
// Completion handlers check Alive before applying any state update, so
// a write that finishes after teardown is dropped instead of mutating
// an unmounted context.
type Scope struct {
	mu   sync.Mutex
	dead bool
}

// NewScope returns a live scope.
func NewScope() *Scope {
	return &Scope{}
}

// Alive reports whether the scope has not been torn down yet.
func (s *Scope) Alive() bool {
	if s == nil {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.dead
}

// Kill marks the scope dead. Idempotent.
func (s *Scope) Kill() {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.dead = true
	s.mu.Unlock()
}
