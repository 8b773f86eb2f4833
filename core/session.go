package core

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is the conversation state for one user: an ordered, append-only
// sequence of role-tagged messages. It is safe for concurrent access, though
// the coach processes one turn per session at a time.
//
// Contract:
//   - Messages only grow; nothing is removed or reordered
//   - The first message is the system prompt, inserted once at session start
//   - Messages returns a defensive copy so callers cannot mutate history
//   - Clone yields an independent copy safe for speculative turn work
type Session struct {
	ID      string    `json:"id"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`

	mu       sync.RWMutex
	messages []Content
}

// NewSession creates an empty session with the given ID.
func NewSession(id string) *Session {
	now := time.Now()
	return &Session{ID: id, Created: now, Updated: now}
}

// NewID generates a unique identifier for sessions and messages.
func NewID() string { return uuid.NewString() }

// Append adds messages to the end of the history.
func (s *Session) Append(msgs ...Content) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msgs...)
	s.Updated = time.Now()
}

// Messages returns a copy of the full ordered history.
func (s *Session) Messages() []Content {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msgs := make([]Content, len(s.messages))
	copy(msgs, s.messages)
	return msgs
}

// Len returns the number of messages in the history.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// Last returns the most recent message and true, or false for an empty session.
func (s *Session) Last() (Content, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.messages) == 0 {
		return Content{}, false
	}
	return s.messages[len(s.messages)-1], true
}

// Clone returns a deep enough copy for independent mutation. Parts are
// immutable values, so copying the message slice suffices.
func (s *Session) Clone() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clone := &Session{ID: s.ID, Created: s.Created, Updated: s.Updated}
	clone.messages = make([]Content, len(s.messages))
	copy(clone.messages, s.messages)
	return clone
}

// SessionStore persists sessions. Get must return an independent snapshot;
// Save replaces the stored session wholesale. The coach relies on this
// snapshot-then-commit contract to keep failed turns out of persisted state.
type SessionStore interface {
	Create(id string) (*Session, error)
	Get(id string) (*Session, error)
	Save(session *Session) error
}
