// Package memory contiene estado compartido en memoria del proceso.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultSubmissionTTL vida de un token de formulario.
const DefaultSubmissionTTL = 10 * time.Minute

// SubmissionGuard emite tokens de un solo uso para formularios de creación.
// El primer Consume de un token lo acepta; los siguientes (o uno vencido) lo rechazan.
type SubmissionGuard struct {
	mu      sync.Mutex
	pending map[string]time.Time // token -> vencimiento
	ttl     time.Duration
	now     func() time.Time
}

// NewSubmissionGuard crea el guard. ttl <= 0 usa DefaultSubmissionTTL.
func NewSubmissionGuard(ttl time.Duration) *SubmissionGuard {
	if ttl <= 0 {
		ttl = DefaultSubmissionTTL
	}
	return &SubmissionGuard{
		pending: make(map[string]time.Time),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Issue genera un token nuevo para incrustar en un formulario.
func (g *SubmissionGuard) Issue() string {
	tok := uuid.NewString()

	g.mu.Lock()
	defer g.mu.Unlock()

	g.sweepLocked()
	g.pending[tok] = g.now().Add(g.ttl)
	return tok
}

// Consume acepta el token una única vez dentro de su vigencia.
func (g *SubmissionGuard) Consume(tok string) bool {
	if _, err := uuid.Parse(tok); err != nil {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	exp, ok := g.pending[tok]
	if !ok {
		return false
	}
	delete(g.pending, tok)
	return g.now().Before(exp)
}

// Len tokens pendientes (incluye vencidos aún no barridos).
func (g *SubmissionGuard) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.pending)
}

func (g *SubmissionGuard) sweepLocked() {
	now := g.now()
	for tok, exp := range g.pending {
		if !now.Before(exp) {
			delete(g.pending, tok)
		}
	}
}
