package session

import (
	"sync"

	"github.com/jhoicas/foodhub-web/internal/application/ports"
)

var _ ports.TokenStore = (*MemoryStore)(nil)

// MemoryStore TokenStore en memoria, seguro para uso concurrente.
// Se usa fuera de una petición HTTP (tareas, tests).
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryStore construye un store vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Set(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

func (s *MemoryStore) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
}
