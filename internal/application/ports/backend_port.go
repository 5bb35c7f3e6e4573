package ports

import (
	"context"

	"github.com/jhoicas/foodhub-web/internal/application/dto"
	"github.com/jhoicas/foodhub-web/internal/domain/entity"
)

// Backend puerto de salida hacia la API REST de FoodHub (/api/v1/*).
// Todas las llamadas usan el TokenStore asociado al contexto.
// Los errores son *domain.Error con el Kind correspondiente.
type Backend interface {
	AuthBackend
	MenuBackend
	OrderBackend
}

// AuthBackend login, registro y resolución del usuario actual.
type AuthBackend interface {
	// Login y Register guardan el token recibido en el TokenStore.
	Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error)
	Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error)
	// Me resuelve el usuario actual. Ante una respuesta no exitosa borra el token.
	Me(ctx context.Context) (*entity.User, error)
}

// MenuBackend categorías e ítems.
type MenuBackend interface {
	ListMenu(ctx context.Context) ([]entity.MenuCategory, error)
	CreateCategory(ctx context.Context, in dto.CreateCategoryRequest) error
	CreateMenuItem(ctx context.Context, in dto.CreateMenuItemRequest) error
	DeleteMenuEntry(ctx context.Context, id string) error
}

// OrderBackend pedidos del cliente y de administración.
type OrderBackend interface {
	ListAdminOrders(ctx context.Context) ([]entity.Order, error)
	UpdateAdminOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error
	ListMyOrders(ctx context.Context) ([]entity.Order, error)
	GetOrder(ctx context.Context, id string) (*entity.Order, error)
	PlaceOrder(ctx context.Context, in dto.PlaceOrderRequest) (*entity.Order, error)
	CancelOrder(ctx context.Context, id string) error
}
