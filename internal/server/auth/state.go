package auth

import (
	"context"
	"sync"
)

// State gates identity answers until startup restoration has finished. Until
// MarkReady is called, WhenInitialized blocks and IsReady reports false, so
// callers never act on a half-restored session.
type State struct {
	once  sync.Once
	ready chan struct{}
}

func NewState() *State {
	return &State{ready: make(chan struct{})}
}

// MarkReady transitions the gate to ready. Safe to call more than once.
func (s *State) MarkReady() {
	s.once.Do(func() { close(s.ready) })
}

func (s *State) IsReady() bool {
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

// WhenInitialized blocks until the gate is ready or ctx is done.
func (s *State) WhenInitialized(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
