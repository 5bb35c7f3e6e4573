package http

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const flashCookie = "flash"

// Tipos de toast.
const (
	ToastSuccess = "success"
	ToastError   = "error"
)

// Toast mensaje de una sola lectura mostrado en la siguiente página.
type Toast struct {
	Kind string
	Text string
}

// setFlash deja un toast para la próxima petición (sobrevive al redirect).
func setFlash(c *fiber.Ctx, kind, text string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(kind + "|" + text),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// popFlash lee y borra el toast pendiente.
func popFlash(c *fiber.Ctx) *Toast {
	raw := c.Cookies(flashCookie)
	if raw == "" {
		return nil
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	val, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	kind, text, ok := strings.Cut(val, "|")
	if !ok || text == "" {
		return nil
	}
	return &Toast{Kind: kind, Text: text}
}
