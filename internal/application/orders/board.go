package orders

import (
	"strings"

	"github.com/jhoicas/foodhub-web/internal/domain/entity"
)

// FilterAll valor del filtro que muestra todos los pedidos.
const FilterAll = "all"

// FilterByStatus filtra por estado. "", "all" o un estado desconocido no filtran.
// Devuelve siempre un slice nuevo.
func FilterByStatus(orders []entity.Order, status string) []entity.Order {
	out := make([]entity.Order, 0, len(orders))
	st, ok := entity.ParseOrderStatus(status)
	if strings.EqualFold(strings.TrimSpace(status), FilterAll) || !ok {
		return append(out, orders...)
	}
	for _, o := range orders {
		if o.Status == st {
			out = append(out, o)
		}
	}
	return out
}

// ReplaceStatus copia de orders con el estado del pedido id reemplazado.
// El resto de pedidos queda intacto; un id desconocido devuelve la copia sin cambios.
func ReplaceStatus(orders []entity.Order, id string, status entity.OrderStatus) []entity.Order {
	out := make([]entity.Order, len(orders))
	copy(out, orders)
	for i := range out {
		if out[i].ID == id {
			out[i].Status = status
		}
	}
	return out
}

// StatusCount pedidos por estado, para las pestañas del tablero.
type StatusCount struct {
	Status entity.OrderStatus
	Count  int
}

// CountByStatus conteo en el orden canónico de estados.
func CountByStatus(orders []entity.Order) []StatusCount {
	counts := make(map[entity.OrderStatus]int, len(entity.OrderStatuses))
	for _, o := range orders {
		counts[o.Status]++
	}
	out := make([]StatusCount, 0, len(entity.OrderStatuses))
	for _, st := range entity.OrderStatuses {
		out = append(out, StatusCount{Status: st, Count: counts[st]})
	}
	return out
}
