package usecase

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/chemasport/catalogo-api/internal/application/audit"
	"github.com/chemasport/catalogo-api/internal/application/dto"
	"github.com/chemasport/catalogo-api/internal/domain"
	"github.com/chemasport/catalogo-api/internal/domain/entity"
	"github.com/chemasport/catalogo-api/internal/domain/inventory"
	"github.com/chemasport/catalogo-api/internal/domain/repository"
	"github.com/chemasport/catalogo-api/pkg/logger"
)

// ProductUseCase CRUD del catálogo: listado paginado, alta con subida de
// imágenes, actualización selectiva con diff de auditoría y baja con limpieza
// best-effort del almacén remoto.
type ProductUseCase struct {
	repo   repository.ProductRepository
	images ImageStore
	audit  *audit.Recorder
	log    *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, images ImageStore, recorder *audit.Recorder, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, images: images, audit: recorder, log: log}
}

// List lista productos con búsqueda por nombre (substring, case-insensitive),
// filtro por tipo exacto y paginación. page y limit llegan ya acotados.
func (uc *ProductUseCase) List(page, limit int, query, productType string) (*dto.ProductListResponse, error) {
	filter := repository.ProductFilter{
		Query:  strings.TrimSpace(query),
		Type:   strings.TrimSpace(productType),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *dto.ToProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Total: total,
		Page:  page,
		Pages: dto.Pages(total, limit),
		Limit: limit,
	}, nil
}

// Create crea un producto subiendo todas las imágenes en paralelo (todo o
// nada, como el Promise.all original); la primera URL queda como imagen
// principal. Escribe la entrada "creó producto" en el historial (best-effort).
func (uc *ProductUseCase) Create(ctx context.Context, form dto.CreateProductForm, files [][]byte, actor string) (*dto.ProductResponse, error) {
	if len(files) == 0 {
		return nil, domain.ErrNoImages
	}
	name := entity.TruncateName(form.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "requerido")
	}
	productType := entity.TruncateType(form.Type)
	if productType == "" {
		return nil, domain.NewValidationError("type", "requerido")
	}
	price := int64(math.Trunc(form.Price))
	if price < 0 {
		return nil, domain.NewValidationError("price", "debe ser >= 0")
	}
	if err := form.Stock.Validate("stock"); err != nil {
		return nil, err
	}
	if err := form.Bodega.Validate("bodega"); err != nil {
		return nil, err
	}

	images := make([]entity.ProductImage, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, buf := range files {
		i, buf := i, buf
		g.Go(func() error {
			img, err := uc.images.Upload(gctx, bytes.NewReader(buf))
			if err != nil {
				return fmt.Errorf("subir imagen %d: %w", i, err)
			}
			images[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      name,
		Price:     price,
		Type:      productType,
		ImageSrc:  images[0].URL,
		Images:    images,
		Stock:     form.Stock,
		Bodega:    form.Bodega,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if len(images) > 1 {
		product.ImageSrc2 = images[1].URL
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}

	uc.audit.Record(actor, entity.ActionCreated, product.Label(), "img principal: "+product.ImageSrc)
	return dto.ToProductResponse(product), nil
}

// Update sobreescribe solo los campos presentes en la petición. Si viene un
// arreglo images lo normaliza (data URL -> subida; URL conocida conserva su
// public_id; URL desconocida queda sin id), borra del almacén remoto las
// imágenes descartadas y resincroniza ImageSrc/ImageSrc2. Solo escribe
// historial si el diff es no vacío. Devuelve (nil, nil) si el id no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest, actor string) (*dto.ProductResponse, error) {
	prev, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if prev == nil {
		return nil, nil
	}
	prevSnap := prev.Snapshot()

	next := *prev
	next.Stock = prev.Stock.Clone()
	next.Bodega = prev.Bodega.Clone()

	if in.Name != nil {
		name := entity.TruncateName(*in.Name)
		if name == "" {
			return nil, domain.NewValidationError("name", "requerido")
		}
		next.Name = name
	}
	if in.Type != nil {
		productType := entity.TruncateType(*in.Type)
		if productType == "" {
			return nil, domain.NewValidationError("type", "requerido")
		}
		next.Type = productType
	}
	if in.Price != nil {
		price := int64(math.Trunc(*in.Price))
		if price < 0 {
			return nil, domain.NewValidationError("price", "debe ser >= 0")
		}
		next.Price = price
	}
	if inv, ok := in.Stock.Sanitized(); ok {
		next.Stock = inv
	}
	if inv, ok := in.Bodega.Sanitized(); ok {
		next.Bodega = inv
	}
	if err := next.Stock.Validate("stock"); err != nil {
		return nil, err
	}
	if err := next.Bodega.Validate("bodega"); err != nil {
		return nil, err
	}

	if in.Images != nil {
		normalized, err := uc.normalizeImages(ctx, *in.Images, prev.Images)
		if err != nil {
			return nil, err
		}
		uc.destroyDropped(ctx, prev.Images, normalized)
		next.Images = normalized
		next.ImageSrc = ""
		next.ImageSrc2 = ""
		if len(normalized) > 0 {
			next.ImageSrc = normalized[0].URL
		}
		if len(normalized) > 1 {
			next.ImageSrc2 = normalized[1].URL
		}
	}

	next.UpdatedAt = time.Now()
	if err := uc.repo.Update(&next); err != nil {
		return nil, err
	}

	if changes := inventory.Diff(prevSnap, next.Snapshot()); len(changes) > 0 {
		uc.audit.Record(actor, entity.ActionUpdated, next.Label(), strings.Join(changes, " | "))
	}
	return dto.ToProductResponse(&next), nil
}

// maxImagesPerProduct el front permite a lo sumo dos imágenes por producto.
const maxImagesPerProduct = 2

// normalizeImages convierte el arreglo duck-typed del PUT en la lista canónica.
func (uc *ProductUseCase) normalizeImages(ctx context.Context, in []dto.ImageInput, prevList []entity.ProductImage) ([]entity.ProductImage, error) {
	if len(in) > maxImagesPerProduct {
		in = in[:maxImagesPerProduct]
	}
	normalized := make([]entity.ProductImage, 0, len(in))
	for _, raw := range in {
		switch {
		case raw.IsZero():
			continue
		case raw.DataURL != "":
			img, err := uc.images.UploadDataURL(ctx, raw.DataURL)
			if err != nil {
				return nil, fmt.Errorf("subir imagen base64: %w", err)
			}
			normalized = append(normalized, img)
		case raw.PublicID != "":
			normalized = append(normalized, entity.ProductImage{PublicID: raw.PublicID, URL: raw.URL})
		default:
			img := entity.ProductImage{URL: raw.URL}
			for _, old := range prevList {
				if old.URL == raw.URL {
					img.PublicID = old.PublicID
					break
				}
			}
			normalized = append(normalized, img)
		}
	}
	return normalized, nil
}

// destroyDropped borra del almacén remoto las imágenes que salieron de la
// lista. Los fallos se tragan y quedan solo en el log.
func (uc *ProductUseCase) destroyDropped(ctx context.Context, prevList, kept []entity.ProductImage) {
	keep := make(map[string]struct{}, len(kept))
	for _, img := range kept {
		keep[img.URL] = struct{}{}
	}
	for _, old := range prevList {
		if old.PublicID == "" {
			continue
		}
		if _, ok := keep[old.URL]; ok {
			continue
		}
		if err := uc.images.Destroy(ctx, old.PublicID); err != nil {
			uc.log.Warn().Err(err).Str("public_id", old.PublicID).Msg("no se pudo borrar imagen remota")
		}
	}
}

// Delete borra el producto, pide el borrado remoto de todas sus imágenes
// (best-effort) y registra la baja en el historial.
func (uc *ProductUseCase) Delete(ctx context.Context, id, actor string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	for _, img := range product.Images {
		if img.PublicID == "" {
			continue
		}
		if err := uc.images.Destroy(ctx, img.PublicID); err != nil {
			uc.log.Warn().Err(err).Str("public_id", img.PublicID).Msg("no se pudo borrar imagen remota")
		}
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.audit.Record(actor, entity.ActionDeleted, product.Label(),
		fmt.Sprintf("imagenes borradas: %d", len(product.Images)))
	return nil
}

// Health devuelve el conteo vivo de productos.
func (uc *ProductUseCase) Health() (*dto.HealthResponse, error) {
	count, err := uc.repo.CountAll()
	if err != nil {
		return nil, err
	}
	return &dto.HealthResponse{OK: true, Count: count}, nil
}
