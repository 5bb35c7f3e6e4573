package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"

	"github.com/jhoicas/foodhub-web/internal/application/access"
	"github.com/jhoicas/foodhub-web/internal/application/auth"
	"github.com/jhoicas/foodhub-web/internal/application/menu"
	"github.com/jhoicas/foodhub-web/internal/application/orders"
	"github.com/jhoicas/foodhub-web/internal/infrastructure/memory"
	"github.com/jhoicas/foodhub-web/internal/infrastructure/session"
	"github.com/jhoicas/foodhub-web/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC   *auth.UseCase
	MenuUC   *menu.UseCase
	OrdersUC *orders.UseCase
	Session  *session.Manager
	Policy   *access.Policy
	Forms    *memory.SubmissionGuard
	Log      *logger.Logger
}

// Router registra middlewares y rutas.
//
// Orden: sesión ligada al contexto → guard perimetral (cookie) → guard de layout
// (usuario + rol contra el backend) → handler.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	policy := deps.Policy
	if policy == nil {
		policy = access.DefaultPolicy()
	}

	app.Use(RequestLogger(log.Component("http")))
	app.Use("/static", filesystem.New(filesystem.Config{Root: StaticFS(), PathPrefix: "static"}))
	app.Use(BindSession(deps.Session))
	app.Use(EdgeGuardMiddleware(access.NewEdgeGuard(policy), deps.Session))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": c.App().Config().AppName})
	})

	// Público
	authHandler := NewAuthHandler(deps.AuthUC, deps.Session, log.Component("auth"))
	app.Get("/", authHandler.Home)
	authGroup := app.Group("/auth")
	authGroup.Get("/login", authHandler.LoginPage)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/register", authHandler.RegisterPage)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Get("/logout", authHandler.Logout)
	authGroup.Post("/logout", authHandler.Logout)

	// Espejo de token (compatibilidad con clientes SPA)
	tokenGroup := app.Group("/api/auth")
	tokenGroup.Post("/set-token", authHandler.SetToken)
	tokenGroup.Post("/clear-token", authHandler.ClearToken)

	layoutGuard := access.NewLayoutGuard(policy, deps.AuthUC)

	// Consola de administración (ADMIN)
	adminHandler := NewAdminHandler(deps.MenuUC, deps.OrdersUC, deps.Forms, log.Component("admin"))
	admin := app.Group("/admin", RequireLayout(layoutGuard, log))
	admin.Get("/", func(c *fiber.Ctx) error { return redirect(c, access.AdminHome) })
	admin.Get("/dashboard", adminHandler.Dashboard)
	admin.Get("/categories", adminHandler.Categories)
	admin.Post("/categories", adminHandler.CreateCategory)
	admin.Post("/categories/:id/delete", adminHandler.DeleteEntry("/admin/categories"))
	admin.Get("/items", adminHandler.Items)
	admin.Post("/items", adminHandler.CreateItem)
	admin.Post("/items/:id/delete", adminHandler.DeleteEntry("/admin/items"))
	admin.Get("/orders", adminHandler.Orders)
	admin.Post("/orders/:id/status", adminHandler.UpdateOrderStatus)

	// Vista de cliente (USER)
	userHandler := NewUserHandler(deps.MenuUC, deps.OrdersUC, deps.Forms, log.Component("user"))
	user := app.Group("/user", RequireLayout(layoutGuard, log))
	user.Get("/", func(c *fiber.Ctx) error { return redirect(c, access.UserHome) })
	user.Get("/menu", userHandler.Menu)
	user.Get("/orders", userHandler.Orders)
	user.Post("/orders", userHandler.PlaceOrder)
	user.Get("/orders/:id/receipt", userHandler.Receipt)
	user.Post("/orders/:id/cancel", userHandler.Cancel)
}
