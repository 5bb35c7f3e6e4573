package auth

import (
	"context"
	"strings"

	"github.com/jhoicas/foodhub-web/internal/application/access"
	"github.com/jhoicas/foodhub-web/internal/application/dto"
	"github.com/jhoicas/foodhub-web/internal/application/ports"
	"github.com/jhoicas/foodhub-web/internal/domain"
	"github.com/jhoicas/foodhub-web/internal/domain/entity"
)

var _ access.UserResolver = (*UseCase)(nil)

// UseCase casos de uso de sesión: login, registro, logout y usuario actual.
type UseCase struct {
	backend ports.AuthBackend
	policy  *access.Policy
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(backend ports.AuthBackend, policy *access.Policy) *UseCase {
	if policy == nil {
		policy = access.DefaultPolicy()
	}
	return &UseCase{backend: backend, policy: policy}
}

// Result usuario autenticado y la home a la que redirigir.
type Result struct {
	User *entity.User
	Home string
}

// Login valida, autentica contra el backend (que guarda el token) y devuelve la home del rol.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*Result, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := in.Validate(); err != nil {
		return nil, &domain.Error{Kind: domain.KindValidation, Op: "auth.login", Message: "Login failed", Err: err}
	}
	out, err := uc.backend.Login(ctx, in)
	if err != nil {
		return nil, err
	}
	return uc.result(out), nil
}

// Register valida (rol USER por defecto), registra y deja la sesión abierta.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*Result, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, &domain.Error{Kind: domain.KindValidation, Op: "auth.register", Message: "Registration failed", Err: err}
	}
	out, err := uc.backend.Register(ctx, in)
	if err != nil {
		return nil, err
	}
	return uc.result(out), nil
}

// Logout borra el token de la sesión ligada al contexto.
func (uc *UseCase) Logout(ctx context.Context) {
	if s, ok := ports.TokenStoreFrom(ctx); ok {
		s.Clear()
	}
}

// CurrentUser resuelve el usuario de la sesión; ante rechazo el backend ya borró el token.
func (uc *UseCase) CurrentUser(ctx context.Context) (*entity.User, error) {
	return uc.backend.Me(ctx)
}

// HomeFor home del rol.
func (uc *UseCase) HomeFor(role entity.Role) string {
	return uc.policy.HomeFor(role)
}

func (uc *UseCase) result(out *dto.AuthResponse) *Result {
	user := out.User.Entity()
	return &Result{User: user, Home: uc.policy.HomeFor(user.Role)}
}
