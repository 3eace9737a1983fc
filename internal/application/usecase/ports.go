package usecase

import (
	"context"
	"io"

	"github.com/chemasport/catalogo-api/internal/domain/entity"
)

// ImageStore puerto del almacén remoto de imágenes (Cloudinary en producción).
// Upload y UploadDataURL devuelven el par {public_id, url} estable de la imagen.
// Destroy es best-effort: el caller decide si el error se traga o se propaga.
type ImageStore interface {
	Upload(ctx context.Context, r io.Reader) (entity.ProductImage, error)
	UploadDataURL(ctx context.Context, dataURL string) (entity.ProductImage, error)
	Destroy(ctx context.Context, publicID string) error
}
