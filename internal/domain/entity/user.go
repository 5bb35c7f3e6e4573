package entity

import "strings"

// Role rol de sesión; decide qué árbol de rutas puede ver.
type Role string

// Roles válidos emitidos por el backend.
const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ParseRole normaliza el rol (el backend y las pantallas no coinciden en mayúsculas).
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleUser:
		return RoleUser, true
	default:
		return "", false
	}
}

// User identidad resuelta por GET /api/v1/auth/me.
type User struct {
	ID    string
	Email string
	Name  string // opcional
	Role  Role
}

// IsAdmin indica si el usuario ve la consola de administración.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// DisplayName nombre para la cabecera: Name o, si falta, Email.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
