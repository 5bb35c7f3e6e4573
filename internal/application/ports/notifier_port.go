package ports

import (
	"context"

	"github.com/jhoicas/foodhub-web/internal/domain/entity"
)

// OrderNotifier avisa (best effort) de un cambio de estado hecho desde la consola.
type OrderNotifier interface {
	OrderStatusChanged(ctx context.Context, orderID string, status entity.OrderStatus) error
}

// ReceiptGenerator genera el comprobante PDF de un pedido.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, order *entity.Order, customer *entity.User) ([]byte, error)
}
