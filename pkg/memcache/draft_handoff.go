package mem

import (
	"sync"
	"time"

	"surveyforge/internal/builder"
)

// DraftHandoffStore parks an AI-generated survey draft between the
// generation endpoint and the builder. A token is read exactly once: the
// first Consume removes it.
type DraftHandoffStore interface {
	Put(token string, draft builder.Draft, ttl time.Duration)

	// Consume returns the draft for token if not expired, and removes the
	// token (single-use).
	Consume(token string) (builder.Draft, bool)
}

type handoffEntry struct {
	draft     builder.Draft
	expiresAt time.Time
}

type DraftHandoff struct {
	mu   sync.RWMutex
	data map[string]handoffEntry
}

func NewDraftHandoff() *DraftHandoff {
	return &DraftHandoff{
		data: make(map[string]handoffEntry),
	}
}

func (s *DraftHandoff) Put(token string, draft builder.Draft, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = handoffEntry{
		draft:     draft,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *DraftHandoff) Consume(token string) (builder.Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[token]
	if !ok {
		return builder.Draft{}, false
	}
	delete(s.data, token) // single-use, expired or not
	if time.Now().After(e.expiresAt) {
		return builder.Draft{}, false
	}
	return e.draft, true
}
