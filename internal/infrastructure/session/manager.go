package session

import (
	"time"

	"github.com/gofiber/fiber/v2"

	pkgjwt "github.com/jhoicas/foodhub-web/pkg/jwt"
)

const localsStoreKey = "session.store"

// Config parámetros de la cookie de sesión.
type Config struct {
	CookieName string
	MaxAge     time.Duration // vida por defecto cuando el token no trae exp
	Secure     bool
}

// Manager es el dueño de la sesión: la cookie es la única copia autoritativa del
// token. Tanto las páginas (vía CookieStore) como el guard perimetral (vía
// HasToken) leen por aquí.
type Manager struct {
	cfg Config
	now func() time.Time
}

// NewManager construye el manager con valores por defecto razonables.
func NewManager(cfg Config) *Manager {
	if cfg.CookieName == "" {
		cfg.CookieName = "auth_token"
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = 7 * 24 * time.Hour
	}
	return &Manager{cfg: cfg, now: time.Now}
}

// CookieName nombre de la cookie de sesión.
func (m *Manager) CookieName() string {
	return m.cfg.CookieName
}

// Store devuelve el TokenStore de la petición; se reutiliza durante toda la petición.
func (m *Manager) Store(c *fiber.Ctx) *CookieStore {
	if s, ok := c.Locals(localsStoreKey).(*CookieStore); ok && s != nil {
		return s
	}
	s := &CookieStore{c: c, m: m}
	c.Locals(localsStoreKey, s)
	return s
}

// Token lee el token de la petición (incluye cambios hechos en la misma petición).
func (m *Manager) Token(c *fiber.Ctx) (string, bool) {
	return m.Store(c).Get()
}

// HasToken chequeo de presencia para el guard perimetral. No valida nada.
func (m *Manager) HasToken(c *fiber.Ctx) bool {
	_, ok := m.Token(c)
	return ok
}

func (m *Manager) readCookie(c *fiber.Ctx) string {
	return c.Cookies(m.cfg.CookieName)
}

func (m *Manager) writeCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     m.cfg.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  m.expiry(token),
		HTTPOnly: false, // legible desde JS para compatibilidad con clientes SPA
		Secure:   m.cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (m *Manager) expireCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     m.cfg.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  m.now().Add(-24 * time.Hour),
		HTTPOnly: false,
		Secure:   m.cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// expiry usa el exp del JWT si es futuro; si no, la vida por defecto.
// Un exp vencido no borra nada: el backend decide.
func (m *Manager) expiry(token string) time.Time {
	now := m.now()
	if exp, ok := pkgjwt.ExpiresAt(token); ok && exp.After(now) {
		return exp
	}
	return now.Add(m.cfg.MaxAge)
}
