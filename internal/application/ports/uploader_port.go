package ports

import (
	"context"
	"io"
)

// ImageUploader sube una imagen al host externo y devuelve su URL segura.
type ImageUploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}
