package entity

// MenuCategory categoría del menú con sus ítems en orden.
type MenuCategory struct {
	ID          string
	Name        string
	Description string // opcional
	ImageURL    string // opcional
	Order       int
	Items       []MenuItem
}

// AvailableItems ítems que el cliente puede pedir.
func (c MenuCategory) AvailableItems() []MenuItem {
	out := make([]MenuItem, 0, len(c.Items))
	for _, it := range c.Items {
		if it.IsAvailable {
			out = append(out, it)
		}
	}
	return out
}
