package draft

import "sync"

// SessionStore keeps one draft per session id.  The UI layer drives a
// single linear flow per session, but the HTTP server itself is
// concurrent, so access is guarded by a mutex.
type SessionStore struct {
	mu     sync.RWMutex
	drafts map[string]Draft
}

// NewSessionStore returns an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{drafts: make(map[string]Draft)}
}

// Get returns the draft for a session, creating a fresh one at the
// movie stage when the session is new.
func (s *SessionStore) Get(sessionID string) Draft {
	s.mu.RLock()
	d, ok := s.drafts[sessionID]
	s.mu.RUnlock()
	if !ok {
		return New()
	}
	return d.clone()
}

// Put stores the draft for a session, replacing any previous value.
func (s *SessionStore) Put(sessionID string, d Draft) {
	s.mu.Lock()
	s.drafts[sessionID] = d.clone()
	s.mu.Unlock()
}

// Drop removes a session's draft.  Used after a successful
// finalization and on reset.
func (s *SessionStore) Drop(sessionID string) {
	s.mu.Lock()
	delete(s.drafts, sessionID)
	s.mu.Unlock()
}
