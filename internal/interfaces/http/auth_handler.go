package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/foodhub-web/internal/application/access"
	"github.com/jhoicas/foodhub-web/internal/application/auth"
	"github.com/jhoicas/foodhub-web/internal/application/dto"
	"github.com/jhoicas/foodhub-web/internal/domain"
	"github.com/jhoicas/foodhub-web/internal/infrastructure/session"
	"github.com/jhoicas/foodhub-web/pkg/logger"
)

// Mensajes de las pantallas de acceso.
const (
	msgLoginFailed    = "Login failed"
	msgRegisterFailed = "Registration failed. Please try again."
	msgAccountCreated = "Account created successfully!"
	msgSetTokenFailed = "Failed to set token"
)

// AuthHandler pantallas de login/registro/logout y endpoints de espejo de token.
type AuthHandler struct {
	uc      *auth.UseCase
	session *session.Manager
	log     *logger.Logger
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase, sm *session.Manager, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, session: sm, log: log}
}

// Home GET /: página pública con enlaces a login y registro.
func (h *AuthHandler) Home(c *fiber.Ctx) error {
	return render(c, "home", nil, nil)
}

// LoginPage GET /auth/login. Con sesión válida redirige a la home del rol.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if home, ok := h.loggedInHome(c); ok {
		return redirect(c, home)
	}
	return render(c, "auth/login", fiber.Map{"email": ""}, nil)
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return h.renderLoginError(c, in.Email, fiber.StatusBadRequest)
	}
	res, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		h.log.Info().Err(err).Str("email", in.Email).Msg("login rechazado")
		return h.renderLoginError(c, in.Email, statusFor(err))
	}
	h.log.Info().Str("user_id", res.User.ID).Str("role", string(res.User.Role)).Msg("login correcto")
	return redirect(c, res.Home)
}

func (h *AuthHandler) renderLoginError(c *fiber.Ctx, email string, status int) error {
	c.Status(status)
	return render(c, "auth/login", fiber.Map{"email": email}, &Toast{Kind: ToastError, Text: msgLoginFailed})
}

// RegisterPage GET /auth/register.
func (h *AuthHandler) RegisterPage(c *fiber.Ctx) error {
	if home, ok := h.loggedInHome(c); ok {
		return redirect(c, home)
	}
	return render(c, "auth/register", fiber.Map{"form": dto.RegisterRequest{Role: "USER"}}, nil)
}

// Register POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		c.Status(fiber.StatusBadRequest)
		return render(c, "auth/register", fiber.Map{"form": in}, &Toast{Kind: ToastError, Text: msgRegisterFailed})
	}
	res, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		h.log.Info().Err(err).Str("email", in.Email).Msg("registro rechazado")
		in.Password = ""
		c.Status(statusFor(err))
		return render(c, "auth/register", fiber.Map{"form": in}, &Toast{Kind: ToastError, Text: msgRegisterFailed})
	}
	setFlash(c, ToastSuccess, msgAccountCreated)
	return redirect(c, res.Home)
}

// Logout GET|POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.uc.Logout(c.UserContext())
	return redirect(c, access.LoginPath)
}

// SetToken POST /api/auth/set-token {"token": "..."} → cookie de sesión.
func (h *AuthHandler) SetToken(c *fiber.Ctx) error {
	var in dto.SetTokenRequest
	if err := c.BodyParser(&in); err != nil || in.Token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgSetTokenFailed})
	}
	h.session.Store(c).Set(in.Token)
	return c.JSON(dto.SuccessResponse{Success: true})
}

// ClearToken POST /api/auth/clear-token.
func (h *AuthHandler) ClearToken(c *fiber.Ctx) error {
	h.session.Store(c).Clear()
	return c.JSON(dto.SuccessResponse{Success: true})
}

// loggedInHome home del usuario si la cookie existe y el backend la acepta.
func (h *AuthHandler) loggedInHome(c *fiber.Ctx) (string, bool) {
	if !h.session.HasToken(c) {
		return "", false
	}
	u, err := h.uc.CurrentUser(c.UserContext())
	if err != nil {
		return "", false
	}
	return h.uc.HomeFor(u.Role), true
}

// statusFor status HTTP de la página re-renderizada según el tipo de error.
func statusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		return fiber.StatusUnprocessableEntity
	case domain.KindUnauthorized:
		return fiber.StatusUnauthorized
	case domain.KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusBadGateway
	}
}
