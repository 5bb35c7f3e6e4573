package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/foodhub-web/internal/application/access"
	"github.com/jhoicas/foodhub-web/internal/application/ports"
	"github.com/jhoicas/foodhub-web/internal/domain/entity"
	"github.com/jhoicas/foodhub-web/internal/infrastructure/session"
	"github.com/jhoicas/foodhub-web/pkg/logger"
)

// Locals keys.
const (
	LocalUser = "user"
)

// BindSession asocia el TokenStore de la petición (cookie) al UserContext, de
// modo que el cliente del backend decore las llamadas con el token de esta sesión.
func BindSession(m *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.SetUserContext(ports.WithTokenStore(c.UserContext(), m.Store(c)))
		return c.Next()
	}
}

// EdgeGuardMiddleware chequeo perimetral: en /admin y /user exige que exista la
// cookie de sesión. Solo presencia; la autorización real la hace RequireLayout.
func EdgeGuardMiddleware(guard *access.EdgeGuard, m *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d := guard.Decide(c.Path(), m.HasToken(c))
		if d.Allow {
			return c.Next()
		}
		return redirect(c, d.RedirectTo)
	}
}

// RequireLayout guard por layout: resuelve el usuario contra el backend una vez
// por petición y redirige si no hay sesión o el rol no corresponde.
// El usuario queda en c.Locals(LocalUser).
func RequireLayout(guard *access.LayoutGuard, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d := guard.Evaluate(c.UserContext(), c.Path())
		switch d.State {
		case access.StateAuthorized:
			if d.User != nil {
				c.Locals(LocalUser, d.User)
			}
			c.Set(fiber.HeaderCacheControl, "no-store")
			return c.Next()
		default:
			ev := log.Debug().Str("path", c.Path()).Str("redirect", d.RedirectTo)
			if d.Err != nil {
				ev = ev.Err(d.Err)
			}
			if d.User != nil {
				ev = ev.Str("role", string(d.User.Role))
			}
			ev.Msg("guard de layout redirige")
			return redirect(c, d.RedirectTo)
		}
	}
}

// GetUser devuelve el usuario resuelto por RequireLayout (nil fuera de un layout protegido).
func GetUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}

// redirect 302 para GET/HEAD; 303 para el resto, así un POST termina en GET.
func redirect(c *fiber.Ctx, to string) error {
	status := fiber.StatusSeeOther
	if c.Method() == fiber.MethodGet || c.Method() == fiber.MethodHead {
		status = fiber.StatusFound
	}
	return c.Redirect(to, status)
}
