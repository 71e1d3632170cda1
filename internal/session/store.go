// Package session implements the conversation session state machine:
// an append-only store of conversation snapshots, and the controller
// that turns a draft into a dispatched exchange and reconciles the
// outcome into visible state.
package session

import (
	"sync"

	"github.com/diogo/agentchat/internal/models"
)

// Store is the authoritative holder of the current visible
// Conversation. Mutations replace the whole snapshot; earlier
// snapshots stay valid and unaffected, so a controller can keep a
// reference to the pre-reply state while an exchange is in flight.
type Store struct {
	mu      sync.RWMutex
	current models.Conversation
}

// NewStore creates an empty store. The conversation lives only as long
// as the store; there is no persistence.
func NewStore() *Store {
	return &Store{}
}

// Append derives a new snapshot from the current one plus msg, installs
// it as the visible conversation, and returns it.
func (s *Store) Append(msg models.Message) models.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = s.current.Append(msg)
	return s.current
}

// Current returns the latest visible snapshot.
func (s *Store) Current() models.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Replace installs conv as the visible snapshot.
func (s *Store) Replace(conv models.Conversation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = conv
}

// Len returns the number of messages in the visible snapshot.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.current)
}
