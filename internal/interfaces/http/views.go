package http

import (
	"embed"
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/django/v3"

	"github.com/jhoicas/foodhub-web/internal/domain/entity"
)

//go:embed views
var viewsFS embed.FS

//go:embed static
var staticFS embed.FS

// NewViewEngine motor de plantillas Django sobre las vistas embebidas.
func NewViewEngine() *django.Engine {
	return django.NewPathForwardingFileSystem(nethttp.FS(viewsFS), "/views", ".html")
}

// StaticFS activos estáticos embebidos (servidos bajo /static).
func StaticFS() nethttp.FileSystem {
	return nethttp.FS(staticFS)
}

// render añade a bind el usuario de la sesión y el toast pendiente.
// toast, si no es nil, tiene prioridad sobre el flash.
func render(c *fiber.Ctx, name string, bind fiber.Map, toast *Toast) error {
	if bind == nil {
		bind = fiber.Map{}
	}
	if flash := popFlash(c); toast == nil {
		toast = flash
	}
	if toast != nil {
		bind["toast"] = toast
	}
	if u := GetUser(c); u != nil {
		bind["user"] = newUserView(u)
	}
	bind["appName"] = c.App().Config().AppName
	bind["path"] = c.Path()
	return c.Render(name, bind)
}

// ── View models ───────────────────────────────────────────────────────────────
// Las plantillas reciben strings ya formateados.

type userView struct {
	ID      string
	Name    string
	Email   string
	Role    string
	IsAdmin bool
}

func newUserView(u *entity.User) userView {
	return userView{ID: u.ID, Name: u.DisplayName(), Email: u.Email, Role: string(u.Role), IsAdmin: u.IsAdmin()}
}

type itemView struct {
	ID          string
	Name        string
	Description string
	Price       string
	ImageURL    string
	Available   bool
}

type categoryView struct {
	ID        string
	Name      string
	ImageURL  string
	ItemCount int
	Items     []itemView
}

func newCategoryViews(cats []entity.MenuCategory) []categoryView {
	out := make([]categoryView, 0, len(cats))
	for _, c := range cats {
		items := make([]itemView, 0, len(c.Items))
		for _, it := range c.Items {
			items = append(items, itemView{
				ID:          it.ID,
				Name:        it.Name,
				Description: it.Description,
				Price:       it.Price.String(),
				ImageURL:    it.ImageURL,
				Available:   it.IsAvailable,
			})
		}
		out = append(out, categoryView{
			ID: c.ID, Name: c.Name, ImageURL: c.ImageURL, ItemCount: len(c.Items), Items: items,
		})
	}
	return out
}

type lineView struct {
	Name     string
	Quantity int
	Price    string
	Subtotal string
}

type orderView struct {
	ID          string
	UserID      string
	Status      string
	StatusLabel string
	Total       string
	Notes       string
	CreatedAt   string
	Cancellable bool
	Lines       []lineView
}

func newOrderViews(orders []entity.Order) []orderView {
	out := make([]orderView, 0, len(orders))
	for _, o := range orders {
		lines := make([]lineView, 0, len(o.Items))
		for _, it := range o.Items {
			lines = append(lines, lineView{
				Name:     it.DisplayName(),
				Quantity: it.Quantity,
				Price:    it.Price.String(),
				Subtotal: it.Price.Times(it.Quantity).String(),
			})
		}
		created := ""
		if !o.CreatedAt.IsZero() {
			created = o.CreatedAt.Format("02 Jan 2006 15:04")
		}
		out = append(out, orderView{
			ID:          o.ID,
			UserID:      o.UserID,
			Status:      string(o.Status),
			StatusLabel: o.Status.Label(),
			Total:       o.TotalPrice.String(),
			Notes:       o.Notes,
			CreatedAt:   created,
			Cancellable: o.Cancellable(),
			Lines:       lines,
		})
	}
	return out
}

type statusTab struct {
	Value  string
	Label  string
	Count  int
	Active bool
}
