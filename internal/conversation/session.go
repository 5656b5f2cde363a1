package conversation

import (
	"sync"

	"github.com/m3rciful/collegebot/internal/domain"
)

// Session holds per-user conversational state across turns. Entity references
// are structured fields, never encoded into the state tag.
type Session struct {
	State StateTag

	// Page is the zero-based FAQ page index while browsing.
	Page int

	// Intent remembers which submission flow the registration gate should
	// return to after name/email capture.
	Intent domain.SubmissionKind

	// ReviewKind selects which submission table the admin is reviewing.
	ReviewKind domain.SubmissionKind
	// ViewUserID is the filer whose submissions are listed.
	ViewUserID int64
	// ViewID is the submission opened in the detail view.
	ViewID int64

	// FAQDraft carries the question of an in-progress FAQ entry.
	FAQDraft string
}

// Sessions is an in-memory session store keyed by Telegram user id.
// Lifetime is process memory; sessions reset on restart.
type Sessions struct {
	mu       sync.RWMutex
	sessions map[int64]Session
}

// NewSessions constructs an empty session store.
func NewSessions() *Sessions {
	return &Sessions{sessions: make(map[int64]Session)}
}

// Get returns the user's session, or a fresh idle session if none exists.
func (m *Sessions) Get(userID int64) Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[userID]; ok {
		return s
	}
	return Session{State: StateIdle}
}

// Set stores the user's session.
func (m *Sessions) Set(userID int64, s Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = s
}

// Reset drops the user's session entirely.
func (m *Sessions) Reset(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
