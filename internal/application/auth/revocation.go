package auth

import (
	"sync"
	"time"
)

// RevocationList ids de sesión cerradas antes de que su token expire.
// Vive en memoria: un reinicio olvida las revocaciones.
type RevocationList struct {
	mu      sync.Mutex
	entries map[string]time.Time // session_id -> expiración del token
	now     func() time.Time
}

// NewRevocationList construye una lista vacía.
func NewRevocationList() *RevocationList {
	return &RevocationList{entries: make(map[string]time.Time), now: time.Now}
}

// Revoke marca la sesión hasta que su token expire.
// Sin expiración conocida se guarda por 24 h.
func (r *RevocationList) Revoke(sessionID string, until time.Time) {
	if until.IsZero() {
		until = r.now().Add(24 * time.Hour)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pruneLocked()
	r.entries[sessionID] = until
}

// IsRevoked informa si la sesión fue cerrada y su token sigue vigente.
func (r *RevocationList) IsRevoked(sessionID string) bool {
	if sessionID == "" {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	until, ok := r.entries[sessionID]
	if !ok {
		return false
	}
	if !r.now().Before(until) {
		delete(r.entries, sessionID)
		return false
	}
	return true
}

// Len número de revocaciones vigentes.
func (r *RevocationList) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pruneLocked()
	return len(r.entries)
}

func (r *RevocationList) pruneLocked() {
	now := r.now()
	for id, until := range r.entries {
		if !now.Before(until) {
			delete(r.entries, id)
		}
	}
}
