package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/foodhub-web/internal/application/access"
	"github.com/jhoicas/foodhub-web/internal/application/auth"
	"github.com/jhoicas/foodhub-web/internal/application/menu"
	"github.com/jhoicas/foodhub-web/internal/application/orders"
	"github.com/jhoicas/foodhub-web/internal/infrastructure/backend"
	"github.com/jhoicas/foodhub-web/internal/infrastructure/memory"
	"github.com/jhoicas/foodhub-web/internal/infrastructure/pdf"
	"github.com/jhoicas/foodhub-web/internal/infrastructure/session"
	"github.com/jhoicas/foodhub-web/internal/infrastructure/telegram"
	apphttp "github.com/jhoicas/foodhub-web/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	cookieName = "auth_token"
	adminToken = "admin-token"
	userToken  = "user-token"
)

type recordedCall struct {
	Method string
	Path   string
	Body   string
}

// fakeAPI backend REST mínimo: /auth/me según el Bearer, y respuestas fijas
// para menú y pedidos. Registra cada llamada.
type fakeAPI struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (f *fakeAPI) record(r *http.Request) string {
	raw, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, recordedCall{Method: r.Method, Path: r.URL.Path, Body: string(raw)})
	return string(raw)
}

func (f *fakeAPI) find(method, path string) (recordedCall, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c.Method == method && c.Path == path {
			return c, true
		}
	}
	return recordedCall{}, false
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body := f.record(r)
	w.Header().Set("Content-Type", "application/json")
	bearer := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

	switch {
	case r.URL.Path == "/api/v1/auth/me":
		switch bearer {
		case adminToken:
			_, _ = io.WriteString(w, `{"id":"a-1","email":"chef@foodhub.test","name":"Chef","role":"ADMIN"}`)
		case userToken:
			_, _ = io.WriteString(w, `{"user":{"id":"u-1","email":"ana@foodhub.test","name":"Ana","role":"USER"}}`)
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":"invalid token"}`)
		}
	case r.URL.Path == "/api/v1/auth/login":
		if strings.Contains(body, `"password":"secret1"`) {
			_, _ = io.WriteString(w, `{"token":"admin-token","user":{"id":"a-1","email":"chef@foodhub.test","role":"ADMIN"}}`)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"message":"Invalid credentials"}`)
	case r.URL.Path == "/api/v1/menu" && r.Method == http.MethodGet:
		_, _ = io.WriteString(w, `[{"id":"c-1","name":"Starters","items":[
			{"id":"i-1","name":"Samosa","price":15000},
			{"id":"i-2","name":"Pakora","price":9000,"isAvailable":false}]}]`)
	case r.URL.Path == "/api/v1/menu/categories" || r.URL.Path == "/api/v1/menu/items":
		w.WriteHeader(http.StatusCreated)
	case r.URL.Path == "/api/v1/admin/orders" && r.Method == http.MethodGet:
		_, _ = io.WriteString(w, `[
			{"id":"o-1","userId":"u-1","status":"pending","totalPrice":30000,"items":[{"name":"Samosa","quantity":2,"price":15000}]},
			{"id":"o-2","userId":"u-2","status":"completed","totalPrice":9000,"items":[]}]`)
	case strings.HasPrefix(r.URL.Path, "/api/v1/admin/orders/") && r.Method == http.MethodPatch:
		w.WriteHeader(http.StatusOK)
	case r.URL.Path == "/api/v1/orders" && r.Method == http.MethodPost:
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":"o-9","userId":"u-1","status":"pending","totalPrice":30000,"items":[{"menuItemId":"i-1","quantity":2}]}`)
	case r.URL.Path == "/api/v1/orders/o-1" && r.Method == http.MethodGet:
		_, _ = io.WriteString(w, `{"id":"o-1","userId":"u-1","status":"pending","totalPrice":30000,"items":[{"name":"Samosa","quantity":2,"price":15000}]}`)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

type testEnv struct {
	app   *fiber.App
	api   *fakeAPI
	forms *memory.SubmissionGuard
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	api := &fakeAPI{}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	client := backend.NewClient(backend.Config{BaseURL: srv.URL}, nil)
	policy := access.DefaultPolicy()
	forms := memory.NewSubmissionGuard(0)

	app := apphttp.NewApp("FoodHub", nil)
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:   auth.NewUseCase(client, policy),
		MenuUC:   menu.NewUseCase(client, nil),
		OrdersUC: orders.NewUseCase(client, telegram.Noop{}, pdf.NewReceiptGenerator("FoodHub"), nil),
		Session:  session.NewManager(session.Config{CookieName: cookieName}),
		Policy:   policy,
		Forms:    forms,
	})
	return &testEnv{app: app, api: api, forms: forms}
}

func (e *testEnv) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func get(path, token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	}
	return req
}

func postForm(path, token string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	}
	return req
}

func cookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func flashText(t *testing.T, resp *http.Response) string {
	t.Helper()
	c := cookie(resp, "flash")
	require.NotNil(t, c, "debe dejar un flash")
	val, err := url.QueryUnescape(c.Value)
	require.NoError(t, err)
	return val
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

// ──────────────────────────────────────────────────────────────────────────────
// Guards
// ──────────────────────────────────────────────────────────────────────────────

func TestEdgeGuard_SinCookieRedirigeALogin(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/admin/dashboard", "/user/menu", "/admin"} {
		resp := env.do(t, get(path, ""))
		assert.Equal(t, fiber.StatusFound, resp.StatusCode, path)
		assert.Equal(t, access.LoginPath, resp.Header.Get("Location"), path)
	}
	_, called := env.api.find(http.MethodGet, "/api/v1/auth/me")
	assert.False(t, called, "el guard perimetral no consulta al backend")
}

func TestEdgeGuard_RutasPublicasPasan(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, get("/", ""))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "FoodHub")

	resp = env.do(t, get("/auth/login", ""))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = env.do(t, get("/health", ""))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestEdgeGuard_RutaEnMayusculasSinCookieVaALogin(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/ADMIN/dashboard", "/Admin/categories", "/USER/menu"} {
		resp := env.do(t, get(path, ""))
		assert.Equal(t, fiber.StatusFound, resp.StatusCode, path)
		assert.Equal(t, access.LoginPath, resp.Header.Get("Location"), path)
	}
}

func TestLayoutGuard_UserEnAdminConMayusculasVaASuHome(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, get("/Admin/categories", userToken))
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, access.UserHome, resp.Header.Get("Location"))
	_, called := env.api.find(http.MethodGet, "/api/v1/auth/me")
	assert.True(t, called, "el guard de layout debe resolver el usuario")
}

func TestLayoutGuard_AdminRenderizaDashboard(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, get("/admin/dashboard", adminToken))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
	body := readBody(t, resp)
	assert.Contains(t, body, "Dashboard")
	assert.Contains(t, body, "Chef")
}

func TestLayoutGuard_UserEnAdminVaASuHome(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, get("/admin/categories", userToken))
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, access.UserHome, resp.Header.Get("Location"))
}

func TestLayoutGuard_AdminEnUserVaASuHome(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, get("/user/menu", adminToken))
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, access.AdminHome, resp.Header.Get("Location"))
}

func TestLayoutGuard_TokenRechazadoBorraCookie(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, get("/admin/dashboard", "expired"))
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, access.LoginPath, resp.Header.Get("Location"))

	c := cookie(resp, cookieName)
	require.NotNil(t, c, "la cookie de sesión debe expirarse")
	assert.Empty(t, c.Value)
}

func TestLoginPage_ConSesionRedirigeAHome(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, get("/auth/login", userToken))
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, access.UserHome, resp.Header.Get("Location"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CorrectoFijaCookieYRedirige(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, postForm("/auth/login", "", url.Values{
		"email":    {"chef@foodhub.test"},
		"password": {"secret1"},
	}))
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, access.AdminHome, resp.Header.Get("Location"))

	c := cookie(resp, cookieName)
	require.NotNil(t, c)
	assert.Equal(t, adminToken, c.Value)
}

func TestLogin_CredencialesInvalidasMuestraToast(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, postForm("/auth/login", "", url.Values{
		"email":    {"chef@foodhub.test"},
		"password": {"wrong-pass"},
	}))
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Login failed")
	assert.Contains(t, body, "chef@foodhub.test", "el email se conserva en el formulario")
	assert.Nil(t, cookie(resp, cookieName))
}

func TestLogout_BorraCookie(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, postForm("/auth/logout", adminToken, url.Values{}))
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, access.LoginPath, resp.Header.Get("Location"))
	c := cookie(resp, cookieName)
	require.NotNil(t, c)
	assert.Empty(t, c.Value)
}

func TestSetToken_FijaCookie(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/set-token", strings.NewReader(`{"token":"abc.def"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := env.do(t, req)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	c := cookie(resp, cookieName)
	require.NotNil(t, c)
	assert.Equal(t, "abc.def", c.Value)
	assert.Equal(t, "/", c.Path)
}

func TestSetToken_CuerpoInvalido400(t *testing.T) {
	env := newTestEnv(t)

	for _, raw := range []string{`{`, `{"token":""}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/set-token", strings.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		resp := env.do(t, req)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, raw)
		var out map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, "Failed to set token", out["error"])
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Consola de administración
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateCategory_FlashYLlamadaAlBackend(t *testing.T) {
	env := newTestEnv(t)
	key := env.forms.Issue()

	resp := env.do(t, postForm("/admin/categories", adminToken, url.Values{
		"name":           {"Starters"},
		"submission_key": {key},
	}))
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/categories", resp.Header.Get("Location"))
	assert.Equal(t, "success|Category created", flashText(t, resp))

	call, ok := env.api.find(http.MethodPost, "/api/v1/menu/categories")
	require.True(t, ok)
	assert.JSONEq(t, `{"name":"Starters","order":1}`, call.Body)
}

func TestCreateCategory_ReenvioRechazado(t *testing.T) {
	env := newTestEnv(t)
	key := env.forms.Issue()
	form := url.Values{"name": {"Starters"}, "submission_key": {key}}

	env.do(t, postForm("/admin/categories", adminToken, form))
	resp := env.do(t, postForm("/admin/categories", adminToken, form))

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "error|This form was already submitted", flashText(t, resp))
}

func TestCreateCategory_NombreVacio(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, postForm("/admin/categories", adminToken, url.Values{
		"name":           {"   "},
		"submission_key": {env.forms.Issue()},
	}))
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "error|"+menu.MsgCategoryNameRequired, flashText(t, resp))
	_, called := env.api.find(http.MethodPost, "/api/v1/menu/categories")
	assert.False(t, called)
}

func TestCreateItem_PrecioInvalido(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, postForm("/admin/items", adminToken, url.Values{
		"name":           {"Samosa"},
		"price":          {"150.50"},
		"categoryId":     {"c-1"},
		"submission_key": {env.forms.Issue()},
	}))
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/items", resp.Header.Get("Location"))
	assert.True(t, strings.HasPrefix(flashText(t, resp), "error|"))
	_, called := env.api.find(http.MethodPost, "/api/v1/menu/items")
	assert.False(t, called)
}

func TestItemsPage_MuestraPreciosYNoDisponibles(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, get("/admin/items", adminToken))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Samosa")
	assert.Contains(t, body, "150.00")
	assert.Contains(t, body, "Not Available")
	assert.Contains(t, body, `name="submission_key"`)
}

func TestDeleteEntry_LlamaDeleteYRedirige(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, postForm("/admin/items/i-1/delete", adminToken, url.Values{}))
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/items", resp.Header.Get("Location"))
	// El fake responde 404 a DELETE: se informa el fallo.
	assert.Equal(t, "error|Failed to delete menu item", flashText(t, resp))
	_, called := env.api.find(http.MethodDelete, "/api/v1/menu/i-1")
	assert.True(t, called)
}

func TestOrdersBoard_FiltraPorEstado(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, get("/admin/orders?status=completed", adminToken))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Order #o-2")
	assert.NotContains(t, body, "Order #o-1")
}

func TestUpdateOrderStatus_PatchYTableroActualizado(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, postForm("/admin/orders/o-1/status", adminToken, url.Values{
		"status": {"ready"},
		"filter": {"ready"},
	}))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Order status updated to ready")
	assert.Contains(t, body, "Order #o-1", "el pedido actualizado aparece bajo su nuevo estado")

	call, ok := env.api.find(http.MethodPatch, "/api/v1/admin/orders/o-1")
	require.True(t, ok)
	assert.JSONEq(t, `{"status":"ready"}`, call.Body)
}

func TestUpdateOrderStatus_EstadoInvalido(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, postForm("/admin/orders/o-1/status", adminToken, url.Values{
		"status": {"teleported"},
	}))
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/orders?status=all", resp.Header.Get("Location"))
	assert.True(t, strings.HasPrefix(flashText(t, resp), "error|"))
	_, called := env.api.find(http.MethodPatch, "/api/v1/admin/orders/o-1")
	assert.False(t, called)
}

// ──────────────────────────────────────────────────────────────────────────────
// Vista de cliente
// ──────────────────────────────────────────────────────────────────────────────

func TestUserMenu_SoloDisponibles(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, get("/user/menu", userToken))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, `name="qty_i-1"`)
	assert.NotContains(t, body, "Pakora")
}

func TestPlaceOrder_EnviaCarritoYRedirige(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, postForm("/user/orders", userToken, url.Values{
		"qty_i-1":        {"2"},
		"qty_i-2":        {"0"},
		"notes":          {"sin cebolla"},
		"submission_key": {env.forms.Issue()},
	}))
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/user/orders", resp.Header.Get("Location"))
	assert.Equal(t, "success|Order placed", flashText(t, resp))

	call, ok := env.api.find(http.MethodPost, "/api/v1/orders")
	require.True(t, ok)
	assert.JSONEq(t, `{"items":[{"menuItemId":"i-1","quantity":2}],"notes":"sin cebolla"}`, call.Body)
}

func TestPlaceOrder_CarritoVacio(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, postForm("/user/orders", userToken, url.Values{
		"qty_i-1":        {"0"},
		"submission_key": {env.forms.Issue()},
	}))
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/user/menu", resp.Header.Get("Location"))
	assert.Equal(t, "error|"+orders.MsgEmptyCart, flashText(t, resp))
}

func TestReceipt_DevuelvePDF(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, get("/user/orders/o-1/receipt", userToken))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(readBody(t, resp), "%PDF"))
}

func TestFlash_SeMuestraUnaVez(t *testing.T) {
	env := newTestEnv(t)

	req := get("/user/menu", userToken)
	req.AddCookie(&http.Cookie{Name: "flash", Value: url.QueryEscape("success|Order placed")})
	resp := env.do(t, req)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Order placed")

	c := cookie(resp, "flash")
	require.NotNil(t, c, "el flash leído se expira")
	assert.Empty(t, c.Value)
}
