// file: internals/helpers/session/session.go
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store adalah kontrak key-value per-session (gaya Laravel session()).
// Semua state penyesuaian standar hidup di sini, bukan di DB.
type Store interface {
	ID() string
	Get(key string, def any) any
	Put(key string, val any)
	Forget(key string)
	Has(key string) bool
}

/* ===============================
   Session keys
=================================*/

const (
	ToleranceKey               = "individual_report.tolerance"
	FilterEventCodeKey         = "filter.event_code"
	FilterPositionFormationKey = "filter.position_formation_id"

	DefaultTolerancePercentage = 10
)

// AdjustmentKey: standard_adjustment.<templateId>
func AdjustmentKey(templateID uuid.UUID) string {
	return "standard_adjustment." + templateID.String()
}

// SelectedStandardKey: selected_standard.<templateId>
func SelectedStandardKey(templateID uuid.UUID) string {
	return "selected_standard." + templateID.String()
}

// Tolerance membaca toleransi (%) dari session, fallback ke default 10.
func Tolerance(s Store) int {
	switch v := s.Get(ToleranceKey, DefaultTolerancePercentage).(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return DefaultTolerancePercentage
	}
}

/* ===============================
   In-memory manager
=================================*/

type memoryStore struct {
	id       string
	mu       sync.RWMutex
	values   map[string]any
	lastSeen time.Time
}

func (m *memoryStore) ID() string { return m.id }

func (m *memoryStore) Get(key string, def any) any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.values[key]; ok {
		return v
	}
	return def
}

func (m *memoryStore) Put(key string, val any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = val
	m.lastSeen = time.Now()
}

func (m *memoryStore) Forget(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	m.lastSeen = time.Now()
}

func (m *memoryStore) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.values[key]
	return ok
}

// Manager memegang semua session aktif, di-scope per session id.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*memoryStore
}

func NewManager() *Manager {
	return &Manager{sessions: map[string]*memoryStore{}}
}

// Scope mengambil (atau membuat) store untuk satu session id.
func (m *Manager) Scope(sessionID string) Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		s = &memoryStore{
			id:       sessionID,
			values:   map[string]any{},
			lastSeen: time.Now(),
		}
		m.sessions[sessionID] = s
	} else {
		s.lastSeen = time.Now()
	}
	return s
}

// Sweep membuang session yang idle lebih lama dari maxIdle.
func (m *Manager) Sweep(maxIdle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	cutoff := time.Now().Add(-maxIdle)
	for id, s := range m.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}
