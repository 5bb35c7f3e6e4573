package dto

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/jhoicas/foodhub-web/internal/domain/entity"
)

// Validate reglas del formulario de login.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// Validate reglas del formulario de registro. Role vacío se normaliza antes a USER.
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 128)),
		validation.Field(&r.Role, validation.Required,
			validation.In(string(entity.RoleUser), string(entity.RoleAdmin))),
	)
}

// Normalize recorta espacios y pone el rol en mayúsculas (USER por defecto).
func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Role = strings.ToUpper(strings.TrimSpace(r.Role))
	if r.Role == "" {
		r.Role = string(entity.RoleUser)
	}
}

// CategoryForm campos del formulario de nueva categoría (la imagen va aparte).
type CategoryForm struct {
	Name          string `form:"name"`
	SubmissionKey string `form:"submission_key"`
}

// Validate nombre obligatorio.
func (f CategoryForm) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required, validation.Length(1, 120)),
	)
}

// MenuItemForm campos del formulario de nuevo ítem. Price llega como texto (paise).
type MenuItemForm struct {
	Name          string `form:"name"`
	Description   string `form:"description"`
	Price         string `form:"price"`
	CategoryID    string `form:"categoryId"`
	SubmissionKey string `form:"submission_key"`
}

// Validate nombre, precio y categoría obligatorios.
func (f MenuItemForm) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	f.Price = strings.TrimSpace(f.Price)
	f.CategoryID = strings.TrimSpace(f.CategoryID)
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required),
		validation.Field(&f.Price, validation.Required, is.Digit),
		validation.Field(&f.CategoryID, validation.Required),
	)
}

// StatusForm cambio de estado desde el tablero de pedidos.
type StatusForm struct {
	Status string `form:"status"`
}

// Validate el estado debe ser uno de los cinco conocidos.
func (f StatusForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Status, validation.Required, validation.By(func(v interface{}) error {
			if _, ok := entity.ParseOrderStatus(v.(string)); !ok {
				return errors.New("must be a valid order status")
			}
			return nil
		})),
	)
}
