package booking

import "sync"

// ConflictGuard serializes slot reservation per artist: the overlap re-check
// and the insert run under one artist-scoped mutex, so two concurrent
// requests for overlapping intervals cannot both pass the check. The partial
// unique index on (artist_id, date, start_minute) backstops deployments with
// more than one process.
type ConflictGuard struct {
	mu      sync.Mutex
	artists map[int64]*sync.Mutex
}

func NewConflictGuard() *ConflictGuard {
	return &ConflictGuard{artists: make(map[int64]*sync.Mutex)}
}

// Lock acquires the artist's reservation mutex and returns its unlock.
func (g *ConflictGuard) Lock(artistID int64) func() {
	g.mu.Lock()
	m, ok := g.artists[artistID]
	if !ok {
		m = &sync.Mutex{}
		g.artists[artistID] = m
	}
	g.mu.Unlock()

	m.Lock()
	return m.Unlock
}
