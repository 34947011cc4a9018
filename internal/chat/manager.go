package chat

import (
	"sync"

	"github.com/google/uuid"
)

// Manager keeps per-session chat history in memory. Sessions live for as
// long as the process does; nothing is persisted across restarts.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// NewSession creates an empty session under a fresh uuid and returns its id.
func (m *Manager) NewSession() string {
	id := uuid.NewString()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = &Session{ID: id}
	return id
}

// Ensure creates an empty session for id if none exists yet. Existing
// sessions are left untouched.
func (m *Manager) Ensure(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		m.sessions[id] = &Session{ID: id}
	}
}

// Has reports whether a session with the given id exists.
func (m *Manager) Has(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.sessions[id]
	return ok
}

func (m *Manager) AppendUser(id, content string) {
	m.append(id, Message{Role: "user", Content: content})
}

func (m *Manager) AppendAssistant(id, content string) {
	m.append(id, Message{Role: "assistant", Content: content})
}

func (m *Manager) append(id string, msg Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		s = &Session{ID: id}
		m.sessions[id] = s
	}
	s.Messages = append(s.Messages, msg)
}

// History returns a copy of the session's messages in append order.
func (m *Manager) History(id string) []Message {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil
	}
	out := make([]Message, len(s.Messages))
	copy(out, s.Messages)
	return out
}
