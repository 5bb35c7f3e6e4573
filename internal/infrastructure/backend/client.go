package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/foodhub-web/internal/application/dto"
	"github.com/jhoicas/foodhub-web/internal/application/ports"
	"github.com/jhoicas/foodhub-web/internal/domain"
)

// Verificar en tiempo de compilación que Client implementa el puerto.
var _ ports.Backend = (*Client)(nil)

// maxBodyBytes límite de lectura de respuestas del backend.
const maxBodyBytes = 4 << 20

// Config parámetros del cliente.
type Config struct {
	BaseURL string        // p.ej. http://localhost:8000
	Timeout time.Duration // 0 = sin timeout
}

// Client adaptador REST para la API de FoodHub. Usa net/http de la librería estándar.
//
// El token se obtiene del TokenStore asociado al contexto (ports.WithTokenStore);
// si el contexto no trae uno, se usa el store por defecto del cliente.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     ports.TokenStore
}

// NewClient construye el cliente. tokens es el store por defecto (puede ser nil).
func NewClient(cfg Config, tokens ports.TokenStore) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		tokens:     tokens,
	}
}

// WithHTTPClient reemplaza el http.Client (tests).
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	cp := *c
	cp.httpClient = hc
	return &cp
}

// WithTokens devuelve una copia ligada a otro store por defecto.
func (c *Client) WithTokens(store ports.TokenStore) *Client {
	cp := *c
	cp.tokens = store
	return &cp
}

func (c *Client) store(ctx context.Context) ports.TokenStore {
	if s, ok := ports.TokenStoreFrom(ctx); ok {
		return s
	}
	return c.tokens
}

// Do envía una petición autenticada a <BaseURL><path>.
//
// Añade Content-Type JSON y, solo si hay token, Authorization: Bearer <token>.
// Devuelve la respuesta tal cual: no comprueba status, no parsea, no reintenta.
// Un fallo de red se devuelve como *domain.Error de tipo network.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	return c.send(ctx, method, path, body, true)
}

func (c *Client) send(ctx context.Context, method, path string, body any, withAuth bool) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("backend: serializar request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("backend: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if s := c.store(ctx); withAuth && s != nil {
		if tok, ok := s.Get(); ok {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.E(domain.KindNetwork, method+" "+path, err)
	}
	return resp, nil
}

// call = Do + decode.
func (c *Client) call(ctx context.Context, op, method, path string, in, out any) error {
	resp, err := c.Do(ctx, method, path, in)
	if err != nil {
		return err
	}
	return decode(op, resp, out)
}

// decode clasifica el status y, si out no es nil, deserializa el cuerpo.
// Siempre cierra el cuerpo.
func decode(op string, resp *http.Response, out any) error {
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.E(domain.KindNetwork, op, fmt.Errorf("leer respuesta: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp dto.ErrorResponse
		_ = json.Unmarshal(raw, &errResp)
		return &domain.Error{
			Kind:    kindForStatus(resp.StatusCode),
			Op:      op,
			Status:  resp.StatusCode,
			Message: errResp.Text(),
		}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &domain.Error{
			Kind:    domain.KindServer,
			Op:      op,
			Status:  resp.StatusCode,
			Message: "respuesta inválida",
			Err:     err,
		}
	}
	return nil
}

func kindForStatus(status int) domain.Kind {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.KindUnauthorized
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return domain.KindValidation
	case http.StatusNotFound:
		return domain.KindNotFound
	default:
		return domain.KindServer
	}
}
