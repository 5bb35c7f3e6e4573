package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/foodhub-web/internal/application/access"
	"github.com/jhoicas/foodhub-web/internal/application/auth"
	"github.com/jhoicas/foodhub-web/internal/application/menu"
	"github.com/jhoicas/foodhub-web/internal/application/orders"
	"github.com/jhoicas/foodhub-web/internal/application/ports"
	"github.com/jhoicas/foodhub-web/internal/infrastructure/backend"
	"github.com/jhoicas/foodhub-web/internal/infrastructure/cloudinary"
	"github.com/jhoicas/foodhub-web/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/foodhub-web/internal/infrastructure/pdf"
	"github.com/jhoicas/foodhub-web/internal/infrastructure/session"
	"github.com/jhoicas/foodhub-web/internal/infrastructure/telegram"
	httpRouter "github.com/jhoicas/foodhub-web/internal/interfaces/http"
	"github.com/jhoicas/foodhub-web/pkg/config"
	"github.com/jhoicas/foodhub-web/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando aplicación")

	// Cliente REST: el token de cada petición llega por el contexto (BindSession).
	client := backend.NewClient(backend.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout(),
	}, nil)

	sessions := session.NewManager(session.Config{
		CookieName: cfg.Session.CookieName,
		MaxAge:     cfg.Session.MaxAge(),
		Secure:     cfg.App.IsProduction(),
	})

	// Imágenes del menú: sin cloud name los formularios se envían sin imagen.
	var uploader ports.ImageUploader
	if up := cloudinary.NewUploader(cloudinary.Config{
		CloudName:    cfg.Cloudinary.CloudName,
		UploadPreset: cfg.Cloudinary.UploadPreset,
		Folder:       cfg.Cloudinary.Folder,
	}); up.Enabled() {
		uploader = up
	} else {
		log.Warn().Msg("Cloudinary no configurado; subida de imágenes deshabilitada")
	}

	notifier, err := telegram.New(cfg.Telegram.BotToken, cfg.Telegram.ChatID, log.Component("telegram"))
	if err != nil {
		log.Error().Err(err).Msg("bot de Telegram; se continúa sin notificaciones")
		notifier = telegram.Noop{}
	}

	policy := access.DefaultPolicy()
	authUC := auth.NewUseCase(client, policy)
	menuUC := menu.NewUseCase(client, uploader)
	ordersUC := orders.NewUseCase(client, notifier, infrapdf.NewReceiptGenerator(cfg.App.Name), log.Component("orders"))

	app := httpRouter.NewApp(cfg.App.Name, log)
	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:   authUC,
		MenuUC:   menuUC,
		OrdersUC: ordersUC,
		Session:  sessions,
		Policy:   policy,
		Forms:    memory.NewSubmissionGuard(0),
		Log:      log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
