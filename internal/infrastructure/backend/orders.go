package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/foodhub-web/internal/application/dto"
	"github.com/jhoicas/foodhub-web/internal/domain/entity"
)

const (
	pathOrders      = "/api/v1/orders"
	pathMyOrders    = "/api/v1/orders/me"
	pathAdminOrders = "/api/v1/admin/orders"
)

// ListAdminOrders GET /api/v1/admin/orders.
func (c *Client) ListAdminOrders(ctx context.Context) ([]entity.Order, error) {
	return c.listOrders(ctx, "orders.admin_list", pathAdminOrders)
}

// UpdateAdminOrderStatus PATCH /api/v1/admin/orders/{id} {"status": ...}.
func (c *Client) UpdateAdminOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	return c.call(ctx, "orders.admin_update_status", http.MethodPatch,
		pathAdminOrders+"/"+url.PathEscape(id),
		dto.UpdateOrderStatusRequest{Status: string(status)}, nil)
}

// ListMyOrders GET /api/v1/orders/me.
func (c *Client) ListMyOrders(ctx context.Context) ([]entity.Order, error) {
	return c.listOrders(ctx, "orders.my_list", pathMyOrders)
}

// GetOrder GET /api/v1/orders/{id}.
func (c *Client) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	var out dto.OrderResponse
	if err := c.call(ctx, "orders.get", http.MethodGet, pathOrders+"/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	o := toOrder(out)
	return &o, nil
}

// PlaceOrder POST /api/v1/orders.
func (c *Client) PlaceOrder(ctx context.Context, in dto.PlaceOrderRequest) (*entity.Order, error) {
	var out dto.OrderResponse
	if err := c.call(ctx, "orders.place", http.MethodPost, pathOrders, in, &out); err != nil {
		return nil, err
	}
	o := toOrder(out)
	return &o, nil
}

// CancelOrder PATCH /api/v1/orders/{id} {"status":"cancelled"}.
func (c *Client) CancelOrder(ctx context.Context, id string) error {
	return c.call(ctx, "orders.cancel", http.MethodPatch, pathOrders+"/"+url.PathEscape(id),
		dto.UpdateOrderStatusRequest{Status: string(entity.OrderCancelled)}, nil)
}

func (c *Client) listOrders(ctx context.Context, op, path string) ([]entity.Order, error) {
	var out []dto.OrderResponse
	if err := c.call(ctx, op, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	orders := make([]entity.Order, 0, len(out))
	for _, r := range out {
		orders = append(orders, toOrder(r))
	}
	return orders, nil
}
