package orders

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/foodhub-web/internal/application/dto"
	"github.com/jhoicas/foodhub-web/internal/application/ports"
	"github.com/jhoicas/foodhub-web/internal/domain"
	"github.com/jhoicas/foodhub-web/internal/domain/entity"
	"github.com/jhoicas/foodhub-web/pkg/logger"
)

// Mensajes mostrados al usuario.
const (
	MsgEmptyCart      = "Select at least one item"
	MsgInvalidStatus  = "Invalid order status"
	MsgNotCancellable = "Only pending orders can be cancelled"
)

// maxQuantity tope por línea del carrito.
const maxQuantity = 99

// defaultNotifyTimeout tope del aviso a cocina dentro de la petición de cambio de estado.
const defaultNotifyTimeout = 3 * time.Second

// UseCase tablero de administración y pedidos del cliente.
type UseCase struct {
	backend  ports.OrderBackend
	notifier ports.OrderNotifier
	receipts ports.ReceiptGenerator
	log      *logger.Logger

	notifyTimeout time.Duration
}

// NewUseCase construye el caso de uso. notifier puede ser nil.
func NewUseCase(backend ports.OrderBackend, notifier ports.OrderNotifier, receipts ports.ReceiptGenerator, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		backend:       backend,
		notifier:      notifier,
		receipts:      receipts,
		log:           log,
		notifyTimeout: defaultNotifyTimeout,
	}
}

// WithNotifyTimeout cambia el tope del aviso a cocina (d <= 0 conserva el actual).
func (uc *UseCase) WithNotifyTimeout(d time.Duration) *UseCase {
	if d > 0 {
		uc.notifyTimeout = d
	}
	return uc
}

// ── Administración ────────────────────────────────────────────────────────────

// AdminBoard todos los pedidos filtrados localmente por estado.
func (uc *UseCase) AdminBoard(ctx context.Context, status string) ([]entity.Order, error) {
	all, err := uc.backend.ListAdminOrders(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByStatus(all, status), nil
}

// UpdateStatus valida el estado, lo aplica en el backend y avisa a cocina (best effort).
func (uc *UseCase) UpdateStatus(ctx context.Context, id string, form dto.StatusForm) (entity.OrderStatus, error) {
	const op = "orders.update_status"
	if err := form.Validate(); err != nil {
		return "", &domain.Error{Kind: domain.KindValidation, Op: op, Message: MsgInvalidStatus, Err: err}
	}
	status, _ := entity.ParseOrderStatus(form.Status)

	if err := uc.backend.UpdateAdminOrderStatus(ctx, id, status); err != nil {
		return "", err
	}

	if uc.notifier != nil {
		nctx, cancel := context.WithTimeout(ctx, uc.notifyTimeout)
		defer cancel()
		if err := uc.notifier.OrderStatusChanged(nctx, id, status); err != nil {
			uc.log.Warn().Err(err).Str("order_id", id).Str("status", string(status)).
				Msg("no se pudo notificar a cocina")
		}
	}
	return status, nil
}

// ── Cliente ───────────────────────────────────────────────────────────────────

// ListMine pedidos del usuario actual.
func (uc *UseCase) ListMine(ctx context.Context) ([]entity.Order, error) {
	return uc.backend.ListMyOrders(ctx)
}

// BuildCart líneas con cantidad > 0, ordenadas por ítem. Las cantidades se topan en 99.
func BuildCart(quantities map[string]int) []dto.PlaceOrderItem {
	out := make([]dto.PlaceOrderItem, 0, len(quantities))
	for id, qty := range quantities {
		id = strings.TrimSpace(id)
		if id == "" || qty <= 0 {
			continue
		}
		if qty > maxQuantity {
			qty = maxQuantity
		}
		out = append(out, dto.PlaceOrderItem{MenuItemID: id, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MenuItemID < out[j].MenuItemID })
	return out
}

// Place crea el pedido. Un carrito vacío no llega al backend.
func (uc *UseCase) Place(ctx context.Context, items []dto.PlaceOrderItem, notes string) (*entity.Order, error) {
	if len(items) == 0 {
		return nil, domain.Validation("orders.place", MsgEmptyCart)
	}
	return uc.backend.PlaceOrder(ctx, dto.PlaceOrderRequest{Items: items, Notes: strings.TrimSpace(notes)})
}

// Cancel cancela un pedido propio; solo si sigue pendiente.
func (uc *UseCase) Cancel(ctx context.Context, id string) error {
	order, err := uc.backend.GetOrder(ctx, id)
	if err != nil {
		return err
	}
	if !order.Cancellable() {
		return domain.Validation("orders.cancel", MsgNotCancellable)
	}
	return uc.backend.CancelOrder(ctx, id)
}

// Receipt PDF del pedido para el usuario dado.
func (uc *UseCase) Receipt(ctx context.Context, id string, customer *entity.User) ([]byte, error) {
	order, err := uc.backend.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer != nil && order.UserID != "" && order.UserID != customer.ID {
		return nil, &domain.Error{Kind: domain.KindNotFound, Op: "orders.receipt", Message: "Order not found"}
	}
	return uc.receipts.GenerateReceipt(ctx, order, customer)
}
