// Package cloudinary sube imágenes del menú con un upload preset sin firma.
package cloudinary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/foodhub-web/internal/application/ports"
	"github.com/jhoicas/foodhub-web/internal/domain"
)

// Verificar en tiempo de compilación que Uploader implementa ImageUploader.
var _ ports.ImageUploader = (*Uploader)(nil)

const (
	defaultBaseURL = "https://api.cloudinary.com/v1_1"

	// maxImageBytes tope de lectura del archivo a subir.
	maxImageBytes = 10 << 20
)

// Config parámetros de la cuenta.
type Config struct {
	CloudName    string
	UploadPreset string
	Folder       string
	BaseURL      string // vacío = API pública de Cloudinary
}

// Uploader adaptador de subida de imágenes. Usa net/http y mime/multipart.
type Uploader struct {
	cfg        Config
	httpClient *http.Client
}

// NewUploader construye el adaptador.
func NewUploader(cfg Config) *Uploader {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Uploader{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled indica si hay cuenta configurada.
func (u *Uploader) Enabled() bool {
	return u.cfg.CloudName != "" && u.cfg.UploadPreset != ""
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload POST {base}/{cloud}/image/upload con los campos file, upload_preset y
// folder. Devuelve secure_url.
func (u *Uploader) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	const op = "cloudinary.upload"
	if !u.Enabled() {
		return "", &domain.Error{Kind: domain.KindServer, Op: op, Message: "Image upload is not configured"}
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", nonEmpty(filename, "image"))
	if err != nil {
		return "", fmt.Errorf("cloudinary: crear parte file: %w", err)
	}
	n, err := io.Copy(part, io.LimitReader(r, maxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("cloudinary: leer imagen: %w", err)
	}
	if n > maxImageBytes {
		return "", domain.Validation(op, "Image is too large")
	}
	_ = w.WriteField("upload_preset", u.cfg.UploadPreset)
	if u.cfg.Folder != "" {
		_ = w.WriteField("folder", u.cfg.Folder)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("cloudinary: cerrar multipart: %w", err)
	}

	url := fmt.Sprintf("%s/%s/image/upload", u.cfg.BaseURL, u.cfg.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return "", fmt.Errorf("cloudinary: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", domain.E(domain.KindNetwork, op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", domain.E(domain.KindNetwork, op, fmt.Errorf("leer respuesta: %w", err))
	}

	var out uploadResponse
	jsonErr := json.Unmarshal(raw, &out)
	if resp.StatusCode != http.StatusOK {
		msg := "Image upload failed"
		if jsonErr == nil && out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		return "", &domain.Error{Kind: domain.KindServer, Op: op, Status: resp.StatusCode, Message: msg}
	}
	if jsonErr != nil || out.SecureURL == "" {
		return "", &domain.Error{Kind: domain.KindServer, Op: op, Message: "Image upload failed", Err: jsonErr}
	}
	return out.SecureURL, nil
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
