package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/foodhub-web/pkg/logger"
)

// NewApp crea la aplicación Fiber con el motor de vistas, recover y el ErrorHandler.
func NewApp(appName string, log *logger.Logger) *fiber.App {
	if log == nil {
		log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      appName,
		Views:        NewViewEngine(),
		ErrorHandler: NewErrorHandler(log),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    12 << 20, // imágenes del menú
	})
	app.Use(recover.New())
	return app
}
