package handlers

import (
	"sync"

	"github.com/BandBurro/data-analytics-uber/internal/analytics"
)

var (
	storeMu sync.RWMutex
	store   analytics.Store
)

// SetStore wires the active backend (csv snapshot or relational repository)
// before the router starts serving.
func SetStore(s analytics.Store) {
	storeMu.Lock()
	defer storeMu.Unlock()
	store = s
}

func activeStore() analytics.Store {
	storeMu.RLock()
	defer storeMu.RUnlock()
	return store
}
