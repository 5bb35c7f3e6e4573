package menu_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/foodhub-web/internal/application/dto"
	"github.com/jhoicas/foodhub-web/internal/application/menu"
	"github.com/jhoicas/foodhub-web/internal/domain"
	"github.com/jhoicas/foodhub-web/internal/domain/entity"
	"github.com/jhoicas/foodhub-web/pkg/money"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeMenuBackend struct {
	cats       []entity.MenuCategory
	listErr    error
	categories []dto.CreateCategoryRequest
	items      []dto.CreateMenuItemRequest
	deleted    []string
}

func (f *fakeMenuBackend) ListMenu(context.Context) ([]entity.MenuCategory, error) {
	return f.cats, f.listErr
}

func (f *fakeMenuBackend) CreateCategory(_ context.Context, in dto.CreateCategoryRequest) error {
	f.categories = append(f.categories, in)
	return nil
}

func (f *fakeMenuBackend) CreateMenuItem(_ context.Context, in dto.CreateMenuItemRequest) error {
	f.items = append(f.items, in)
	return nil
}

func (f *fakeMenuBackend) DeleteMenuEntry(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeUploader struct {
	url      string
	err      error
	uploaded []string
}

func (f *fakeUploader) Upload(_ context.Context, filename string, r io.Reader) (string, error) {
	raw, _ := io.ReadAll(r)
	f.uploaded = append(f.uploaded, filename+":"+string(raw))
	return f.url, f.err
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateCategory_SinImagenOrdenUno(t *testing.T) {
	be := &fakeMenuBackend{}
	up := &fakeUploader{}
	uc := menu.NewUseCase(be, up)

	require.NoError(t, uc.CreateCategory(context.Background(), dto.CategoryForm{Name: " Starters "}, nil))
	require.Len(t, be.categories, 1)
	assert.Equal(t, dto.CreateCategoryRequest{Name: "Starters", Order: 1}, be.categories[0])
	assert.Empty(t, up.uploaded, "sin imagen no se sube nada")
}

func TestCreateCategory_ConImagenSubePrimero(t *testing.T) {
	be := &fakeMenuBackend{}
	up := &fakeUploader{url: "https://res.cloudinary.com/demo/starters.png"}

	img := &menu.Image{Filename: "starters.png", Body: strings.NewReader("PNG")}
	require.NoError(t, menu.NewUseCase(be, up).CreateCategory(context.Background(), dto.CategoryForm{Name: "Starters"}, img))

	assert.Equal(t, []string{"starters.png:PNG"}, up.uploaded)
	assert.Equal(t, "https://res.cloudinary.com/demo/starters.png", be.categories[0].ImageURL)
}

func TestCreateCategory_NombreVacioNoLlama(t *testing.T) {
	be := &fakeMenuBackend{}

	err := menu.NewUseCase(be, nil).CreateCategory(context.Background(), dto.CategoryForm{Name: "  "}, nil)
	require.Error(t, err)
	assert.Equal(t, menu.MsgCategoryNameRequired, domain.UserMessage(err))
	assert.Empty(t, be.categories)
}

func TestCreateCategory_FalloDeSubidaNoCrea(t *testing.T) {
	be := &fakeMenuBackend{}
	up := &fakeUploader{err: errors.New("Image upload failed")}

	img := &menu.Image{Filename: "x.png", Body: strings.NewReader("x")}
	err := menu.NewUseCase(be, up).CreateCategory(context.Background(), dto.CategoryForm{Name: "Starters"}, img)
	assert.Error(t, err)
	assert.Empty(t, be.categories)
}

func TestCreateCategory_ImagenSinUploader(t *testing.T) {
	img := &menu.Image{Filename: "x.png", Body: strings.NewReader("x")}
	err := menu.NewUseCase(&fakeMenuBackend{}, nil).CreateCategory(context.Background(), dto.CategoryForm{Name: "S"}, img)
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ítems
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateItem_PrecioComoEntero(t *testing.T) {
	be := &fakeMenuBackend{}

	err := menu.NewUseCase(be, nil).CreateItem(context.Background(), dto.MenuItemForm{
		Name: "Paneer Tikka", Price: "15000", CategoryID: "c-1",
	}, nil)
	require.NoError(t, err)
	require.Len(t, be.items, 1)
	assert.Equal(t, money.Paise(15000), be.items[0].Price)
	assert.Empty(t, be.items[0].ImageURL)
	assert.Empty(t, be.items[0].Description)
}

func TestCreateItem_CamposObligatorios(t *testing.T) {
	be := &fakeMenuBackend{}
	uc := menu.NewUseCase(be, nil)

	for _, f := range []dto.MenuItemForm{
		{Price: "100", CategoryID: "c-1"},
		{Name: "Samosa", CategoryID: "c-1"},
		{Name: "Samosa", Price: "100"},
	} {
		err := uc.CreateItem(context.Background(), f, nil)
		require.Error(t, err)
		assert.Equal(t, menu.MsgRequiredFields, domain.UserMessage(err))
	}
	assert.Empty(t, be.items)
}

func TestCreateItem_PrecioInvalido(t *testing.T) {
	be := &fakeMenuBackend{}

	for _, price := range []string{"150.50", "-10", "abc"} {
		err := menu.NewUseCase(be, nil).CreateItem(context.Background(), dto.MenuItemForm{
			Name: "Samosa", Price: price, CategoryID: "c-1",
		}, nil)
		assert.True(t, domain.IsKind(err, domain.KindValidation), price)
		assert.Equal(t, menu.MsgInvalidPrice, domain.UserMessage(err), price)
	}
	assert.Empty(t, be.items)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado / borrado
// ──────────────────────────────────────────────────────────────────────────────

func TestAvailable_FiltraItemsYCategoriasVacias(t *testing.T) {
	be := &fakeMenuBackend{cats: []entity.MenuCategory{
		{ID: "c-1", Name: "Starters", Items: []entity.MenuItem{
			{ID: "i-1", IsAvailable: true},
			{ID: "i-2", IsAvailable: false},
		}},
		{ID: "c-2", Name: "Sold out", Items: []entity.MenuItem{{ID: "i-3"}}},
	}}

	cats, err := menu.NewUseCase(be, nil).Available(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 1)
	require.Len(t, cats[0].Items, 1)
	assert.Equal(t, "i-1", cats[0].Items[0].ID)
	assert.Len(t, be.cats[0].Items, 2, "no muta la respuesta original")
}

func TestList_PropagaError(t *testing.T) {
	be := &fakeMenuBackend{listErr: domain.E(domain.KindServer, "menu.list", nil)}
	_, err := menu.NewUseCase(be, nil).List(context.Background())
	assert.ErrorIs(t, err, domain.ErrServer)
}

func TestDelete(t *testing.T) {
	be := &fakeMenuBackend{}
	uc := menu.NewUseCase(be, nil)

	require.NoError(t, uc.Delete(context.Background(), "i-1"))
	assert.Equal(t, []string{"i-1"}, be.deleted)
	assert.ErrorIs(t, uc.Delete(context.Background(), " "), domain.ErrValidation)
}
