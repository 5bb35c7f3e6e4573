package session

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/foodhub-web/internal/application/ports"
)

var _ ports.TokenStore = (*CookieStore)(nil)

// CookieStore TokenStore ligado a una petición Fiber. Set y Clear escriben la
// cookie de respuesta y además quedan visibles para lecturas posteriores en la
// misma petición.
type CookieStore struct {
	c *fiber.Ctx
	m *Manager

	touched bool
	token   string
}

func (s *CookieStore) Set(token string) {
	if token == "" {
		s.Clear()
		return
	}
	s.touched = true
	s.token = token
	s.m.writeCookie(s.c, token)
}

func (s *CookieStore) Get() (string, bool) {
	if s.touched {
		return s.token, s.token != ""
	}
	tok := s.m.readCookie(s.c)
	return tok, tok != ""
}

func (s *CookieStore) Clear() {
	s.touched = true
	s.token = ""
	s.m.expireCookie(s.c)
}
