// Package cloudinaryimg implementa el puerto ImageStore sobre Cloudinary.
// Las imágenes de producto viven en una carpeta configurable ("products") y
// se referencian siempre por el par {public_id, secure_url}.
package cloudinaryimg

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/chemasport/catalogo-api/internal/application/usecase"
	"github.com/chemasport/catalogo-api/internal/domain/entity"
	"github.com/chemasport/catalogo-api/pkg/config"
)

var _ usecase.ImageStore = (*Store)(nil)

// Store adaptador Cloudinary del puerto usecase.ImageStore.
type Store struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// New construye el adaptador. CLOUDINARY_URL tiene prioridad sobre las credenciales sueltas.
func New(cfg config.CloudinaryConfig) (*Store, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)
	if cfg.URL != "" {
		cld, err = cloudinary.NewFromURL(cfg.URL)
	} else {
		cld, err = cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	}
	if err != nil {
		return nil, fmt.Errorf("cloudinary: credenciales: %w", err)
	}
	return &Store{cld: cld, folder: cfg.Folder}, nil
}

// Upload sube una imagen desde un reader (archivos multipart del POST).
func (s *Store) Upload(ctx context.Context, r io.Reader) (entity.ProductImage, error) {
	return s.upload(ctx, r)
}

// UploadDataURL sube una imagen codificada como data URL base64 (PUT con
// imágenes nuevas embebidas en el body JSON). Cloudinary acepta el data URL tal cual.
func (s *Store) UploadDataURL(ctx context.Context, dataURL string) (entity.ProductImage, error) {
	return s.upload(ctx, dataURL)
}

func (s *Store) upload(ctx context.Context, file any) (entity.ProductImage, error) {
	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: s.folder})
	if err != nil {
		return entity.ProductImage{}, fmt.Errorf("cloudinary: subir imagen: %w", err)
	}
	if resp.Error.Message != "" {
		return entity.ProductImage{}, fmt.Errorf("cloudinary: subir imagen: %s", resp.Error.Message)
	}
	return entity.ProductImage{PublicID: resp.PublicID, URL: resp.SecureURL}, nil
}

// Destroy elimina una imagen remota por public_id.
func (s *Store) Destroy(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary: borrar imagen %s: %w", publicID, err)
	}
	return nil
}
