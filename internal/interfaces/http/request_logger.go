package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/foodhub-web/pkg/logger"
)

// RequestLogger registra método, ruta, status y latencia de cada petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		ev := log.Info()
		switch {
		case status >= 500:
			ev = log.Error().Err(err)
		case status >= 400:
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}

// NewErrorHandler ErrorHandler de Fiber: registra y muestra una página de error simple.
func NewErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := "Something went wrong"
		if fe, ok := err.(*fiber.Error); ok {
			code = fe.Code
			msg = fe.Message
		}
		if code >= 500 {
			log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		}
		c.Status(code)
		if rerr := c.Render("error", fiber.Map{"code": code, "message": msg}); rerr != nil {
			return c.Status(code).SendString(msg)
		}
		return nil
	}
}
