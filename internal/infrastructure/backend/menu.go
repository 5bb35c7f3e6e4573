package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/foodhub-web/internal/application/dto"
	"github.com/jhoicas/foodhub-web/internal/domain/entity"
)

const (
	pathMenu           = "/api/v1/menu"
	pathMenuCategories = "/api/v1/menu/categories"
	pathMenuItems      = "/api/v1/menu/items"
)

// ListMenu GET /api/v1/menu: categorías con sus ítems.
func (c *Client) ListMenu(ctx context.Context) ([]entity.MenuCategory, error) {
	var out []dto.CategoryResponse
	if err := c.call(ctx, "menu.list", http.MethodGet, pathMenu, nil, &out); err != nil {
		return nil, err
	}
	cats := make([]entity.MenuCategory, 0, len(out))
	for _, r := range out {
		cats = append(cats, toCategory(r))
	}
	return cats, nil
}

// CreateCategory POST /api/v1/menu/categories.
func (c *Client) CreateCategory(ctx context.Context, in dto.CreateCategoryRequest) error {
	return c.call(ctx, "menu.create_category", http.MethodPost, pathMenuCategories, in, nil)
}

// CreateMenuItem POST /api/v1/menu/items.
func (c *Client) CreateMenuItem(ctx context.Context, in dto.CreateMenuItemRequest) error {
	return c.call(ctx, "menu.create_item", http.MethodPost, pathMenuItems, in, nil)
}

// DeleteMenuEntry DELETE /api/v1/menu/{id}.
func (c *Client) DeleteMenuEntry(ctx context.Context, id string) error {
	return c.call(ctx, "menu.delete", http.MethodDelete, pathMenu+"/"+url.PathEscape(id), nil, nil)
}
