package entity

import (
	"strings"
	"time"

	"github.com/jhoicas/foodhub-web/pkg/money"
)

// OrderStatus estado de un pedido (conjunto cerrado de cinco valores).
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderStatuses en el orden en que se muestran.
var OrderStatuses = []OrderStatus{OrderPending, OrderPreparing, OrderReady, OrderCompleted, OrderCancelled}

// ParseOrderStatus valida un estado recibido de un formulario o del backend.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	st := OrderStatus(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range OrderStatuses {
		if st == known {
			return st, true
		}
	}
	return "", false
}

// Label estado con mayúscula inicial ("Preparing").
func (s OrderStatus) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// OrderItem línea de pedido.
type OrderItem struct {
	MenuItemID string
	Name       string
	Quantity   int
	Price      money.Paise // precio unitario
}

// DisplayName nombre de la línea; si el backend no lo envía se usa el ID del ítem.
func (i OrderItem) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.MenuItemID
}

// Order pedido de un usuario.
type Order struct {
	ID         string
	UserID     string
	Status     OrderStatus
	Items      []OrderItem
	TotalPrice money.Paise
	Notes      string
	CreatedAt  time.Time
}

// Cancellable solo los pedidos pendientes se pueden cancelar desde la vista del cliente.
func (o Order) Cancellable() bool {
	return o.Status == OrderPending
}
