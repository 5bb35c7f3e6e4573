package menu

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/foodhub-web/internal/application/dto"
	"github.com/jhoicas/foodhub-web/internal/application/ports"
	"github.com/jhoicas/foodhub-web/internal/domain"
	"github.com/jhoicas/foodhub-web/internal/domain/entity"
	"github.com/jhoicas/foodhub-web/pkg/money"
)

// Mensajes de validación mostrados al usuario.
const (
	MsgCategoryNameRequired = "Category name is required"
	MsgRequiredFields       = "Please fill all required fields"
	MsgInvalidPrice         = "Price must be a whole number of paise"
)

// defaultCategoryOrder orden con el que se crean todas las categorías.
const defaultCategoryOrder = 1

// Image archivo opcional adjunto a un formulario.
type Image struct {
	Filename string
	Body     io.Reader
}

// UseCase categorías e ítems del menú.
type UseCase struct {
	backend  ports.MenuBackend
	uploader ports.ImageUploader
}

// NewUseCase construye el caso de uso. uploader puede ser nil si no hay host de imágenes.
func NewUseCase(backend ports.MenuBackend, uploader ports.ImageUploader) *UseCase {
	return &UseCase{backend: backend, uploader: uploader}
}

// List categorías con sus ítems.
func (uc *UseCase) List(ctx context.Context) ([]entity.MenuCategory, error) {
	return uc.backend.ListMenu(ctx)
}

// Available categorías con solo los ítems disponibles; omite las que quedan vacías.
func (uc *UseCase) Available(ctx context.Context) ([]entity.MenuCategory, error) {
	cats, err := uc.backend.ListMenu(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.MenuCategory, 0, len(cats))
	for _, c := range cats {
		items := c.AvailableItems()
		if len(items) == 0 {
			continue
		}
		c.Items = items
		out = append(out, c)
	}
	return out, nil
}

// CreateCategory sube la imagen si la hay y crea la categoría con order 1.
// Sin imagen, imageUrl no se envía.
func (uc *UseCase) CreateCategory(ctx context.Context, form dto.CategoryForm, img *Image) error {
	const op = "menu.create_category"
	if err := form.Validate(); err != nil {
		return &domain.Error{Kind: domain.KindValidation, Op: op, Message: MsgCategoryNameRequired, Err: err}
	}
	imageURL, err := uc.upload(ctx, img)
	if err != nil {
		return err
	}
	return uc.backend.CreateCategory(ctx, dto.CreateCategoryRequest{
		Name:     strings.TrimSpace(form.Name),
		ImageURL: imageURL,
		Order:    defaultCategoryOrder,
	})
}

// CreateItem valida, sube la imagen si la hay y crea el ítem con el precio en paise.
func (uc *UseCase) CreateItem(ctx context.Context, form dto.MenuItemForm, img *Image) error {
	const op = "menu.create_item"
	if strings.TrimSpace(form.Name) == "" || strings.TrimSpace(form.Price) == "" || strings.TrimSpace(form.CategoryID) == "" {
		return domain.Validation(op, MsgRequiredFields)
	}
	if err := form.Validate(); err != nil {
		return &domain.Error{Kind: domain.KindValidation, Op: op, Message: MsgInvalidPrice, Err: err}
	}
	price, err := money.Parse(form.Price)
	if err != nil {
		return &domain.Error{Kind: domain.KindValidation, Op: op, Message: MsgInvalidPrice, Err: err}
	}
	imageURL, err := uc.upload(ctx, img)
	if err != nil {
		return err
	}
	return uc.backend.CreateMenuItem(ctx, dto.CreateMenuItemRequest{
		Name:        strings.TrimSpace(form.Name),
		Description: strings.TrimSpace(form.Description),
		Price:       price,
		CategoryID:  strings.TrimSpace(form.CategoryID),
		ImageURL:    imageURL,
	})
}

// Delete borra una categoría o un ítem (mismo endpoint).
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Validation("menu.delete", "Missing id")
	}
	return uc.backend.DeleteMenuEntry(ctx, id)
}

func (uc *UseCase) upload(ctx context.Context, img *Image) (string, error) {
	if img == nil || img.Body == nil {
		return "", nil
	}
	if uc.uploader == nil {
		return "", &domain.Error{Kind: domain.KindServer, Op: "menu.upload", Message: "Image upload is not configured"}
	}
	url, err := uc.uploader.Upload(ctx, img.Filename, img.Body)
	if err != nil {
		return "", fmt.Errorf("menu: subir imagen: %w", err)
	}
	return url, nil
}
