package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nida1khurram/school-fee-app/app/models"
)

const sessionDuration = 24 * time.Hour

// SessionManager tracks authenticated logins in memory. The presentation
// layer holds a session ID per signed-in user; delete-protection of the
// caller's own account keys off the session's username.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*models.Session)}
}

// Create starts a session for an authenticated user and returns it.
func (m *SessionManager) Create(username string, isAdmin bool) *models.Session {
	now := time.Now()
	session := &models.Session{
		ID:        uuid.New().String(),
		Username:  username,
		IsAdmin:   isAdmin,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionDuration),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = session
	return session
}

// Get looks up a live session by ID. Expired sessions are dropped on
// lookup.
func (m *SessionManager) Get(id string) (*models.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	if session.Expired() {
		delete(m.sessions, id)
		return nil, false
	}
	return session, true
}

// Delete ends a session (logout). Unknown IDs are ignored.
func (m *SessionManager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}
