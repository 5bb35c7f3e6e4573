package dto

import "github.com/jhoicas/foodhub-web/internal/domain/entity"

// UserResponse usuario tal como lo devuelve /api/v1/auth/me.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role"`
}

// LoginRequest credenciales para POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// RegisterRequest alta para POST /api/v1/auth/register.
type RegisterRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Name     string `json:"name" form:"name"`
	Role     string `json:"role" form:"role"` // USER | ADMIN
}

// AuthResponse token + usuario devueltos por login y registro.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// SetTokenRequest cuerpo de POST /api/auth/set-token.
type SetTokenRequest struct {
	Token string `json:"token"`
}

// Entity convierte la respuesta en entidad. Un rol desconocido se trata como
// cliente: nunca concede la consola.
func (r UserResponse) Entity() *entity.User {
	role, ok := entity.ParseRole(r.Role)
	if !ok {
		role = entity.RoleUser
	}
	return &entity.User{ID: r.ID, Email: r.Email, Name: r.Name, Role: role}
}
