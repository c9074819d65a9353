// Package selection keeps per-user UI selection state, such as the warehouse
// the operator is currently working in. It is independent of documents and
// of the query cache.
package selection

import (
	"sync"

	"backoffice/internal/core/id"
)

// Scope identifies whose selection is stored.
type Scope struct {
	TenantID string
	UserID   string
}

// Store is a thread-safe in-memory selection store.
type Store struct {
	mu         sync.RWMutex
	warehouses map[Scope]id.ID
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{warehouses: make(map[Scope]id.ID)}
}

// Warehouse returns the selected warehouse for scope.
func (s *Store) Warehouse(scope Scope) (id.ID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.warehouses[scope]
	return w, ok
}

// SelectWarehouse stores warehouseID for scope. An empty id clears the selection.
func (s *Store) SelectWarehouse(scope Scope, warehouseID id.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id.IsEmpty(warehouseID) {
		delete(s.warehouses, scope)
		return
	}
	s.warehouses[scope] = warehouseID
}
