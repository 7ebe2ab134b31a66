// Package toast is the transient UI feedback queue: toasts appear per
// session, live for a fixed duration and vanish on their own unless
// dismissed earlier. Nothing here is persisted.
package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

type Toast struct {
	ID       string   `json:"id"`
	Message  string   `json:"message"`
	Severity Severity `json:"type"`
}

type Manager struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string][]Toast
	timers   map[string]*time.Timer
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		ttl:      ttl,
		sessions: make(map[string][]Toast),
		timers:   make(map[string]*time.Timer),
	}
}

// Show enqueues a toast and arms its expiry timer.
func (m *Manager) Show(sessionID, message string, severity Severity) Toast {
	if severity == "" {
		severity = SeveritySuccess
	}

	t := Toast{
		ID:       uuid.NewString(),
		Message:  message,
		Severity: severity,
	}

	m.mu.Lock()
	m.sessions[sessionID] = append(m.sessions[sessionID], t)
	m.timers[t.ID] = time.AfterFunc(m.ttl, func() {
		m.Dismiss(sessionID, t.ID)
	})
	m.mu.Unlock()

	return t
}

// Dismiss removes a toast immediately. Dismissing a toast that already
// expired is a no-op.
func (m *Manager) Dismiss(sessionID, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if timer, ok := m.timers[id]; ok {
		timer.Stop()
		delete(m.timers, id)
	}

	toasts := m.sessions[sessionID]
	for i, t := range toasts {
		if t.ID == id {
			m.sessions[sessionID] = append(toasts[:i], toasts[i+1:]...)
			break
		}
	}
	if len(m.sessions[sessionID]) == 0 {
		delete(m.sessions, sessionID)
	}
}

// List returns the session's live toasts in display (FIFO) order.
func (m *Manager) List(sessionID string) []Toast {
	m.mu.Lock()
	defer m.mu.Unlock()

	toasts := m.sessions[sessionID]
	out := make([]Toast, len(toasts))
	copy(out, toasts)
	return out
}
