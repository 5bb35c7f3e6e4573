package http

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/foodhub-web/internal/application/dto"
	"github.com/jhoicas/foodhub-web/internal/application/menu"
	"github.com/jhoicas/foodhub-web/internal/application/orders"
	"github.com/jhoicas/foodhub-web/internal/domain/entity"
	"github.com/jhoicas/foodhub-web/internal/infrastructure/memory"
	"github.com/jhoicas/foodhub-web/pkg/logger"
)

// Mensajes de la consola de administración.
const (
	msgCategoryCreated      = "Category created"
	msgCategoryCreateFailed = "Failed to create category"
	msgItemCreated          = "Menu item created"
	msgItemCreateFailed     = "Failed to create menu item"
	msgEntryDeleted         = "Menu item deleted successfully"
	msgEntryDeleteFailed    = "Failed to delete menu item"
	msgMenuLoadFailed       = "Failed to load menu items"
	msgOrdersLoadFailed     = "Failed to load orders"
	msgStatusUpdateFailed   = "Failed to update order status"
)

// AdminHandler consola de administración: menú y tablero de pedidos.
type AdminHandler struct {
	menu   *menu.UseCase
	orders *orders.UseCase
	forms  *memory.SubmissionGuard
	log    *logger.Logger
}

// NewAdminHandler construye el handler.
func NewAdminHandler(menuUC *menu.UseCase, ordersUC *orders.UseCase, forms *memory.SubmissionGuard, log *logger.Logger) *AdminHandler {
	return &AdminHandler{menu: menuUC, orders: ordersUC, forms: forms, log: log}
}

// Dashboard GET /admin/dashboard: accesos a categorías, ítems y pedidos con conteo por estado.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	bind := fiber.Map{}
	var toast *Toast
	all, err := h.orders.AdminBoard(c.UserContext(), orders.FilterAll)
	if err != nil {
		var handled bool
		if toast, handled, err = loadFailed(c, h.log, err, msgOrdersLoadFailed); handled {
			return err
		}
	} else {
		bind["counts"] = statusTabs(all, "")[1:]
		bind["total"] = len(all)
	}
	return render(c, "admin/dashboard", bind, toast)
}

// ── Categorías ────────────────────────────────────────────────────────────────

// Categories GET /admin/categories.
func (h *AdminHandler) Categories(c *fiber.Ctx) error {
	return h.renderMenuPage(c, "admin/categories")
}

// CreateCategory POST /admin/categories (name, image opcional).
func (h *AdminHandler) CreateCategory(c *fiber.Ctx) error {
	const back = "/admin/categories"
	var form dto.CategoryForm
	if err := c.BodyParser(&form); err != nil {
		return failAndRedirect(c, h.log, err, msgCategoryCreateFailed, back)
	}
	if !h.consume(form.SubmissionKey) {
		setFlash(c, ToastError, msgAlreadySubmitted)
		return redirect(c, back)
	}
	img, closeImg, err := formImage(c)
	if err != nil {
		return failAndRedirect(c, h.log, err, msgCategoryCreateFailed, back)
	}
	defer closeImg()

	if err := h.menu.CreateCategory(c.UserContext(), form, img); err != nil {
		return failAndRedirect(c, h.log, err, msgCategoryCreateFailed, back)
	}
	setFlash(c, ToastSuccess, msgCategoryCreated)
	return redirect(c, back)
}

// ── Ítems ─────────────────────────────────────────────────────────────────────

// Items GET /admin/items.
func (h *AdminHandler) Items(c *fiber.Ctx) error {
	return h.renderMenuPage(c, "admin/items")
}

// CreateItem POST /admin/items (name, description, price en paise, categoryId, image opcional).
func (h *AdminHandler) CreateItem(c *fiber.Ctx) error {
	const back = "/admin/items"
	var form dto.MenuItemForm
	if err := c.BodyParser(&form); err != nil {
		return failAndRedirect(c, h.log, err, msgItemCreateFailed, back)
	}
	if !h.consume(form.SubmissionKey) {
		setFlash(c, ToastError, msgAlreadySubmitted)
		return redirect(c, back)
	}
	img, closeImg, err := formImage(c)
	if err != nil {
		return failAndRedirect(c, h.log, err, msgItemCreateFailed, back)
	}
	defer closeImg()

	if err := h.menu.CreateItem(c.UserContext(), form, img); err != nil {
		return failAndRedirect(c, h.log, err, msgItemCreateFailed, back)
	}
	setFlash(c, ToastSuccess, msgItemCreated)
	return redirect(c, back)
}

// DeleteEntry POST /admin/{categories|items}/:id/delete → DELETE /api/v1/menu/{id}.
func (h *AdminHandler) DeleteEntry(back string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := h.menu.Delete(c.UserContext(), c.Params("id")); err != nil {
			return failAndRedirect(c, h.log, err, msgEntryDeleteFailed, back)
		}
		setFlash(c, ToastSuccess, msgEntryDeleted)
		return redirect(c, back)
	}
}

func (h *AdminHandler) renderMenuPage(c *fiber.Ctx, view string) error {
	bind := fiber.Map{"submissionKey": h.issue()}
	var toast *Toast
	cats, err := h.menu.List(c.UserContext())
	if err != nil {
		var handled bool
		if toast, handled, err = loadFailed(c, h.log, err, msgMenuLoadFailed); handled {
			return err
		}
	}
	bind["categories"] = newCategoryViews(cats)
	return render(c, view, bind, toast)
}

// ── Pedidos ───────────────────────────────────────────────────────────────────

// Orders GET /admin/orders?status=<s>.
func (h *AdminHandler) Orders(c *fiber.Ctx) error {
	filter := c.Query("status", orders.FilterAll)
	all, err := h.orders.AdminBoard(c.UserContext(), orders.FilterAll)
	if err != nil {
		toast, handled, err := loadFailed(c, h.log, err, msgOrdersLoadFailed)
		if handled {
			return err
		}
		return h.renderBoard(c, nil, filter, toast)
	}
	return h.renderBoard(c, all, filter, nil)
}

// UpdateOrderStatus POST /admin/orders/:id/status (status, filter).
// Tras el PATCH el tablero se muestra con solo ese pedido cambiado.
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	filter := c.FormValue("filter", orders.FilterAll)
	back := "/admin/orders?status=" + url.QueryEscape(filter)

	status, err := h.orders.UpdateStatus(c.UserContext(), id, dto.StatusForm{Status: c.FormValue("status")})
	if err != nil {
		return failAndRedirect(c, h.log, err, msgStatusUpdateFailed, back)
	}
	h.log.Info().Str("order_id", id).Str("status", string(status)).Msg("estado de pedido actualizado")

	toast := &Toast{Kind: ToastSuccess, Text: fmt.Sprintf("Order status updated to %s", status)}
	all, err := h.orders.AdminBoard(c.UserContext(), orders.FilterAll)
	if err != nil {
		setFlash(c, toast.Kind, toast.Text)
		return redirect(c, back)
	}
	return h.renderBoard(c, orders.ReplaceStatus(all, id, status), filter, toast)
}

func (h *AdminHandler) renderBoard(c *fiber.Ctx, all []entity.Order, filter string, toast *Toast) error {
	if _, ok := entity.ParseOrderStatus(filter); !ok {
		filter = orders.FilterAll
	}
	statuses := make([]string, 0, len(entity.OrderStatuses))
	for _, st := range entity.OrderStatuses {
		statuses = append(statuses, string(st))
	}
	return render(c, "admin/orders", fiber.Map{
		"orders":   newOrderViews(orders.FilterByStatus(all, filter)),
		"tabs":     statusTabs(all, filter),
		"filter":   filter,
		"statuses": statuses,
	}, toast)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// statusTabs pestaña "All" seguida de una por estado, en orden canónico.
func statusTabs(all []entity.Order, filter string) []statusTab {
	tabs := []statusTab{{Value: orders.FilterAll, Label: "All", Count: len(all), Active: filter == orders.FilterAll}}
	for _, sc := range orders.CountByStatus(all) {
		tabs = append(tabs, statusTab{
			Value:  string(sc.Status),
			Label:  sc.Status.Label(),
			Count:  sc.Count,
			Active: filter == string(sc.Status),
		})
	}
	return tabs
}

func (h *AdminHandler) issue() string {
	if h.forms == nil {
		return ""
	}
	return h.forms.Issue()
}

func (h *AdminHandler) consume(key string) bool {
	return h.forms == nil || h.forms.Consume(key)
}

// formImage archivo "image" opcional del formulario multipart.
func formImage(c *fiber.Ctx) (*menu.Image, func(), error) {
	noop := func() {}
	fh, err := c.FormFile("image")
	if err != nil || fh == nil || fh.Size == 0 || fh.Filename == "" {
		return nil, noop, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, noop, fmt.Errorf("http: abrir imagen: %w", err)
	}
	return &menu.Image{Filename: fh.Filename, Body: f}, func() { _ = f.Close() }, nil
}
