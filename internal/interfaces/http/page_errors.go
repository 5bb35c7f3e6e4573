package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/foodhub-web/internal/application/access"
	"github.com/jhoicas/foodhub-web/internal/application/ports"
	"github.com/jhoicas/foodhub-web/internal/domain"
	"github.com/jhoicas/foodhub-web/pkg/logger"
)

// Mensaje cuando un formulario se reenvía.
const msgAlreadySubmitted = "This form was already submitted"

// failAndRedirect convierte el error de una acción en toast y vuelve a back.
// Un unauthorized cierra la sesión y manda a login.
func failAndRedirect(c *fiber.Ctx, log *logger.Logger, err error, fallback, back string) error {
	switch domain.KindOf(err) {
	case domain.KindUnauthorized:
		return expireSession(c)
	case domain.KindValidation:
		msg := domain.UserMessage(err)
		if msg == "" {
			msg = fallback
		}
		setFlash(c, ToastError, msg)
	default:
		log.Error().Err(err).Str("path", c.Path()).Str("toast", fallback).Msg("acción fallida")
		setFlash(c, ToastError, fallback)
	}
	return redirect(c, back)
}

// loadFailed para páginas GET: devuelve el toast a mostrar, o handled=true si ya redirigió.
func loadFailed(c *fiber.Ctx, log *logger.Logger, err error, msg string) (*Toast, bool, error) {
	if domain.IsKind(err, domain.KindUnauthorized) {
		return nil, true, expireSession(c)
	}
	log.Error().Err(err).Str("path", c.Path()).Str("toast", msg).Msg("carga fallida")
	return &Toast{Kind: ToastError, Text: msg}, false, nil
}

func expireSession(c *fiber.Ctx) error {
	if s, ok := ports.TokenStoreFrom(c.UserContext()); ok {
		s.Clear()
	}
	return redirect(c, access.LoginPath)
}
