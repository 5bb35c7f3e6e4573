package dto

import "github.com/jhoicas/foodhub-web/pkg/money"

// MenuItemResponse ítem dentro de una categoría.
type MenuItemResponse struct {
	ID          string      `json:"id"`
	CategoryID  string      `json:"categoryId,omitempty"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Price       money.Paise `json:"price"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	IsAvailable *bool       `json:"isAvailable,omitempty"` // ausente = disponible
}

// CategoryResponse categoría con sus ítems (GET /api/v1/menu).
type CategoryResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	ImageURL    string             `json:"imageUrl,omitempty"`
	Order       int                `json:"order,omitempty"`
	Items       []MenuItemResponse `json:"items"`
}

// CreateCategoryRequest cuerpo de POST /api/v1/menu/categories.
// ImageURL se omite cuando no hay imagen.
type CreateCategoryRequest struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl,omitempty"`
	Order    int    `json:"order"`
}

// CreateMenuItemRequest cuerpo de POST /api/v1/menu/items. Price en paise.
type CreateMenuItemRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Price       money.Paise `json:"price"`
	CategoryID  string      `json:"categoryId"`
	ImageURL    string      `json:"imageUrl,omitempty"`
}
