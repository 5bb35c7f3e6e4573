package dto

import "github.com/jhoicas/foodhub-web/pkg/money"

// OrderItemResponse línea de pedido.
type OrderItemResponse struct {
	MenuItemID string      `json:"menuItemId,omitempty"`
	Name       string      `json:"name,omitempty"`
	Quantity   int         `json:"quantity"`
	Price      money.Paise `json:"price,omitempty"`
}

// OrderResponse pedido tal como lo devuelve el backend.
type OrderResponse struct {
	ID         string              `json:"id"`
	UserID     string              `json:"userId"`
	Items      []OrderItemResponse `json:"items"`
	Status     string              `json:"status"`
	TotalPrice money.Paise         `json:"totalPrice"`
	Notes      string              `json:"notes,omitempty"`
	CreatedAt  string              `json:"createdAt,omitempty"`
}

// UpdateOrderStatusRequest cuerpo de PATCH /api/v1/(admin/)orders/{id}.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// PlaceOrderItem línea del carrito.
type PlaceOrderItem struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

// PlaceOrderRequest cuerpo de POST /api/v1/orders.
type PlaceOrderRequest struct {
	Items []PlaceOrderItem `json:"items"`
	Notes string           `json:"notes,omitempty"`
}
