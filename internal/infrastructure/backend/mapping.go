package backend

import (
	"time"

	"github.com/jhoicas/foodhub-web/internal/application/dto"
	"github.com/jhoicas/foodhub-web/internal/domain/entity"
)

func toCategory(r dto.CategoryResponse) entity.MenuCategory {
	items := make([]entity.MenuItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, toMenuItem(it, r.ID))
	}
	return entity.MenuCategory{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Order:       r.Order,
		Items:       items,
	}
}

func toMenuItem(r dto.MenuItemResponse, categoryID string) entity.MenuItem {
	if r.CategoryID != "" {
		categoryID = r.CategoryID
	}
	available := true
	if r.IsAvailable != nil {
		available = *r.IsAvailable
	}
	return entity.MenuItem{
		ID:          r.ID,
		CategoryID:  categoryID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		IsAvailable: available,
	}
}

func toOrder(r dto.OrderResponse) entity.Order {
	items := make([]entity.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entity.OrderItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			Price:      it.Price,
		})
	}
	// Un estado fuera del conjunto conocido se conserva tal cual para mostrarlo.
	status, ok := entity.ParseOrderStatus(r.Status)
	if !ok {
		status = entity.OrderStatus(r.Status)
	}
	return entity.Order{
		ID:         r.ID,
		UserID:     r.UserID,
		Status:     status,
		Items:      items,
		TotalPrice: r.TotalPrice,
		Notes:      r.Notes,
		CreatedAt:  parseTime(r.CreatedAt),
	}
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
