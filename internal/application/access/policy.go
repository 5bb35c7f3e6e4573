// Package access decide quién puede ver cada árbol de rutas.
//
// Dos niveles: EdgeGuard (perimetral, solo presencia de cookie) y LayoutGuard
// (por layout, resuelve el usuario contra el backend y compara el rol).
package access

import (
	"sort"
	"strings"

	"github.com/jhoicas/foodhub-web/internal/domain/entity"
)

// Rutas fijas.
const (
	LoginPath    = "/auth/login"
	RegisterPath = "/auth/register"
	AdminHome    = "/admin/dashboard"
	UserHome     = "/user/menu"
)

// Rule un prefijo protegido, el rol que exige y la home de ese rol.
type Rule struct {
	Prefix string
	Role   entity.Role
	Home   string
}

// Policy tabla declarativa de reglas.
type Policy struct {
	rules []Rule // ordenadas por prefijo más largo primero
}

// NewPolicy construye la política.
func NewPolicy(rules ...Rule) *Policy {
	cp := make([]Rule, len(rules))
	copy(cp, rules)
	for i := range cp {
		cp[i].Prefix = "/" + strings.Trim(cp[i].Prefix, "/")
	}
	sort.SliceStable(cp, func(i, j int) bool { return len(cp[i].Prefix) > len(cp[j].Prefix) })
	return &Policy{rules: cp}
}

// DefaultPolicy /admin exige ADMIN, /user exige USER.
func DefaultPolicy() *Policy {
	return NewPolicy(
		Rule{Prefix: "/admin", Role: entity.RoleAdmin, Home: AdminHome},
		Rule{Prefix: "/user", Role: entity.RoleUser, Home: UserHome},
	)
}

// RuleFor devuelve la regla del prefijo más largo que cubre path.
func (p *Policy) RuleFor(path string) (Rule, bool) {
	for _, r := range p.rules {
		if matchPrefix(path, r.Prefix) {
			return r, true
		}
	}
	return Rule{}, false
}

// Prefixes prefijos protegidos.
func (p *Policy) Prefixes() []string {
	out := make([]string, 0, len(p.rules))
	for _, r := range p.rules {
		out = append(out, r.Prefix)
	}
	return out
}

// HomeFor home del rol; un rol sin regla va a la home de cliente.
func (p *Policy) HomeFor(role entity.Role) string {
	for _, r := range p.rules {
		if r.Role == role {
			return r.Home
		}
	}
	return UserHome
}

// matchPrefix prefijo en frontera de segmento: /admin cubre /admin y /admin/x, no /administrator.
// Sin distinguir mayúsculas: el router de Fiber tampoco las distingue.
func matchPrefix(path, prefix string) bool {
	path, prefix = strings.ToLower(path), strings.ToLower(prefix)
	if prefix == "/" {
		return true
	}
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}
