package access

import (
	"context"

	"github.com/jhoicas/foodhub-web/internal/domain/entity"
)

// State estado del guard de layout.
type State string

const (
	StateChecking    State = "checking"
	StateAuthorized  State = "authorized"
	StateRedirecting State = "redirecting"
)

// UserResolver resuelve el usuario de la sesión actual.
type UserResolver interface {
	CurrentUser(ctx context.Context) (*entity.User, error)
}

// Decision resultado de evaluar una ruta.
type Decision struct {
	State      State
	RedirectTo string       // solo en StateRedirecting
	User       *entity.User // solo si se resolvió
	Err        error        // fallo del resolver, si lo hubo
}

// LayoutGuard máquina checking → authorized | redirecting.
// Se evalúa una vez por petición de página.
type LayoutGuard struct {
	policy   *Policy
	resolver UserResolver
}

// NewLayoutGuard construye el guard.
func NewLayoutGuard(policy *Policy, resolver UserResolver) *LayoutGuard {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &LayoutGuard{policy: policy, resolver: resolver}
}

// Evaluate decide para path. Sin regla: autorizado sin resolver.
// Fallo del resolver: login. Rol distinto: home del rol propio.
func (g *LayoutGuard) Evaluate(ctx context.Context, path string) Decision {
	rule, ok := g.policy.RuleFor(path)
	if !ok {
		return Decision{State: StateAuthorized}
	}

	user, err := g.resolver.CurrentUser(ctx)
	if err != nil || user == nil {
		return Decision{State: StateRedirecting, RedirectTo: LoginPath, Err: err}
	}

	if user.Role != rule.Role {
		return Decision{State: StateRedirecting, RedirectTo: g.policy.HomeFor(user.Role), User: user}
	}
	return Decision{State: StateAuthorized, User: user}
}
