package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/foodhub-web/internal/application/menu"
	"github.com/jhoicas/foodhub-web/internal/application/orders"
	"github.com/jhoicas/foodhub-web/internal/domain"
	"github.com/jhoicas/foodhub-web/internal/infrastructure/memory"
	"github.com/jhoicas/foodhub-web/pkg/logger"
)

// Mensajes de la vista de cliente.
const (
	msgOrderPlaced       = "Order placed"
	msgOrderPlaceFailed  = "Failed to place order"
	msgOrderCancelled    = "Order cancelled"
	msgOrderCancelFailed = "Failed to cancel order"
	msgMyOrdersFailed    = "Failed to load your orders"
	msgReceiptFailed     = "Failed to generate receipt"
)

// qtyPrefix prefijo de los campos de cantidad: qty_<menuItemId>.
const qtyPrefix = "qty_"

// UserHandler menú y pedidos del cliente.
type UserHandler struct {
	menu   *menu.UseCase
	orders *orders.UseCase
	forms  *memory.SubmissionGuard
	log    *logger.Logger
}

// NewUserHandler construye el handler.
func NewUserHandler(menuUC *menu.UseCase, ordersUC *orders.UseCase, forms *memory.SubmissionGuard, log *logger.Logger) *UserHandler {
	return &UserHandler{menu: menuUC, orders: ordersUC, forms: forms, log: log}
}

// Menu GET /user/menu: ítems disponibles con cantidades para pedir.
func (h *UserHandler) Menu(c *fiber.Ctx) error {
	bind := fiber.Map{}
	if h.forms != nil {
		bind["submissionKey"] = h.forms.Issue()
	}
	var toast *Toast
	cats, err := h.menu.Available(c.UserContext())
	if err != nil {
		var handled bool
		if toast, handled, err = loadFailed(c, h.log, err, msgMenuLoadFailed); handled {
			return err
		}
	}
	bind["categories"] = newCategoryViews(cats)
	return render(c, "user/menu", bind, toast)
}

// PlaceOrder POST /user/orders: qty_<id>=n por ítem, notes opcional.
func (h *UserHandler) PlaceOrder(c *fiber.Ctx) error {
	const back = "/user/menu"
	if h.forms != nil && !h.forms.Consume(c.FormValue("submission_key")) {
		setFlash(c, ToastError, msgAlreadySubmitted)
		return redirect(c, back)
	}

	quantities := map[string]int{}
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		key := string(k)
		if !strings.HasPrefix(key, qtyPrefix) {
			return
		}
		if n, err := strconv.Atoi(strings.TrimSpace(string(v))); err == nil {
			quantities[strings.TrimPrefix(key, qtyPrefix)] += n
		}
	})

	order, err := h.orders.Place(c.UserContext(), orders.BuildCart(quantities), c.FormValue("notes"))
	if err != nil {
		return failAndRedirect(c, h.log, err, msgOrderPlaceFailed, back)
	}
	h.log.Info().Str("order_id", order.ID).Msg("pedido creado")
	setFlash(c, ToastSuccess, msgOrderPlaced)
	return redirect(c, "/user/orders")
}

// Orders GET /user/orders.
func (h *UserHandler) Orders(c *fiber.Ctx) error {
	var toast *Toast
	list, err := h.orders.ListMine(c.UserContext())
	if err != nil {
		var handled bool
		if toast, handled, err = loadFailed(c, h.log, err, msgMyOrdersFailed); handled {
			return err
		}
	}
	return render(c, "user/orders", fiber.Map{"orders": newOrderViews(list)}, toast)
}

// Receipt GET /user/orders/:id/receipt: comprobante PDF.
func (h *UserHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.orders.Receipt(c.UserContext(), id, GetUser(c))
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Order not found")
		}
		return failAndRedirect(c, h.log, err, msgReceiptFailed, "/user/orders")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="pedido-%s.pdf"`, id))
	return c.Send(pdf)
}

// Cancel POST /user/orders/:id/cancel.
func (h *UserHandler) Cancel(c *fiber.Ctx) error {
	const back = "/user/orders"
	if err := h.orders.Cancel(c.UserContext(), c.Params("id")); err != nil {
		return failAndRedirect(c, h.log, err, msgOrderCancelFailed, back)
	}
	setFlash(c, ToastSuccess, msgOrderCancelled)
	return redirect(c, back)
}
