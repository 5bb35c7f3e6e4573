package backend

import (
	"context"
	"errors"
	"net/http"

	"github.com/jhoicas/foodhub-web/internal/application/dto"
	"github.com/jhoicas/foodhub-web/internal/domain"
	"github.com/jhoicas/foodhub-web/internal/domain/entity"
)

const (
	pathLogin    = "/api/v1/auth/login"
	pathRegister = "/api/v1/auth/register"
	pathMe       = "/api/v1/auth/me"
)

// Login POST /api/v1/auth/login sin cabecera Authorization; guarda el token recibido.
func (c *Client) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	return c.authenticate(ctx, "auth.login", pathLogin, in)
}

// Register POST /api/v1/auth/register; guarda el token recibido.
func (c *Client) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	return c.authenticate(ctx, "auth.register", pathRegister, in)
}

func (c *Client) authenticate(ctx context.Context, op, path string, in any) (*dto.AuthResponse, error) {
	resp, err := c.send(ctx, http.MethodPost, path, in, false)
	if err != nil {
		return nil, err
	}
	var out dto.AuthResponse
	if err := decode(op, resp, &out); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, &domain.Error{Kind: domain.KindServer, Op: op, Message: "respuesta sin token"}
	}
	if s := c.store(ctx); s != nil {
		s.Set(out.Token)
	}
	return &out, nil
}

// meBody acepta tanto el usuario plano como {"user": {...}}.
type meBody struct {
	dto.UserResponse
	User *dto.UserResponse `json:"user"`
}

// Me GET /api/v1/auth/me. Cualquier respuesta no exitosa borra el token y se
// reporta como unauthorized. Un fallo de red NO borra el token.
func (c *Client) Me(ctx context.Context) (*entity.User, error) {
	const op = "auth.me"
	resp, err := c.Do(ctx, http.MethodGet, pathMe, nil)
	if err != nil {
		return nil, err
	}

	var body meBody
	if err := decode(op, resp, &body); err != nil {
		// Cuerpo ilegible: fallo de transporte, la sesión se conserva.
		if domain.IsKind(err, domain.KindNetwork) {
			return nil, err
		}
		if s := c.store(ctx); s != nil {
			s.Clear()
		}
		var status int
		var de *domain.Error
		if errors.As(err, &de) {
			status = de.Status
		}
		return nil, &domain.Error{Kind: domain.KindUnauthorized, Op: op, Status: status, Err: err}
	}

	u := body.UserResponse
	if body.User != nil && body.User.ID != "" {
		u = *body.User
	}
	if u.ID == "" {
		if s := c.store(ctx); s != nil {
			s.Clear()
		}
		return nil, &domain.Error{Kind: domain.KindUnauthorized, Op: op, Message: "usuario vacío"}
	}
	return u.Entity(), nil
}
