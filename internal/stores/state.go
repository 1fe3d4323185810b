// Package stores holds the orchestration layer between the CLI and the
// query modules. Each store owns a slice of observable state (data,
// loading, error) that it mutates only through its operations.
package stores

import "sync"

// state is the bookkeeping shared by every store: the last error, the
// number of operations in flight, and one generation counter per data
// track. An operation may only write its result if no newer operation
// on the same track started after it.
type state struct {
	mu       sync.Mutex
	err      string
	inflight int
	gens     map[string]uint64

	*broadcaster
}

func newState(name string) *state {
	return &state{gens: make(map[string]uint64), broadcaster: newBroadcaster(name)}
}

// begin starts an operation on track: it clears the error, marks the
// store loading, and returns the operation's generation.
func (s *state) begin(track string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gens[track]++
	s.inflight++
	s.err = ""
	s.publish(FieldLoading, FieldError)
	return s.gens[track]
}

// end clears this operation's share of the loading flag.
func (s *state) end() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inflight > 0 {
		s.inflight--
	}
	s.publish(FieldLoading)
}

// currentLocked reports whether gen is still the newest on track.
// Callers must hold s.mu.
func (s *state) currentLocked(track string, gen uint64) bool {
	return s.gens[track] == gen
}

// fail records err if gen is still current and returns err unchanged.
func (s *state) fail(track string, gen uint64, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentLocked(track, gen) {
		s.err = err.Error()
		s.publish(FieldError)
	}
	return err
}

// reject records a validation failure that never reached the backend.
func (s *state) reject(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.err = err.Error()
	s.publish(FieldError)
	return err
}

// IsLoading reports whether any operation is in flight.
func (s *state) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight > 0
}

// LastError returns the message of the most recent failure, or "".
func (s *state) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
