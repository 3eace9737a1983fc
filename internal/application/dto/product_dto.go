package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/chemasport/catalogo-api/internal/domain/entity"
	"github.com/chemasport/catalogo-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Entradas duck-typed del front original, normalizadas una sola vez en el borde
// HTTP a un tipo canónico antes de cualquier lógica de negocio.
// ──────────────────────────────────────────────────────────────────────────────

// InventoryInput acepta stock/bodega como objeto JSON {"M":3} o como string
// JSON "{\"M\":3}". Un string que no parsea queda marcado inválido y el caso de
// uso decide (crear: inventario vacío; actualizar: conservar el previo).
type InventoryInput struct {
	present bool
	valid   bool
	raw     map[string]any
}

// UnmarshalJSON implementa la unión objeto | string | null.
func (in *InventoryInput) UnmarshalJSON(b []byte) error {
	in.present = true
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "null" {
		return nil
	}
	if strings.HasPrefix(trimmed, "\"") {
		var inner string
		if err := json.Unmarshal(b, &inner); err != nil {
			return nil
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(inner), &m); err != nil {
			return nil
		}
		in.valid = true
		in.raw = m
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil
	}
	in.valid = true
	in.raw = m
	return nil
}

// Sanitized devuelve el inventario canónico y si la entrada fue un objeto válido.
func (in InventoryInput) Sanitized() (inventory.Inventory, bool) {
	if !in.valid {
		return inventory.Inventory{}, false
	}
	return inventory.Sanitize(in.raw), true
}

// ParseInventoryForm normaliza un valor de formulario multipart (string JSON).
// Entrada mal formada o vacía degrada a inventario vacío.
func ParseInventoryForm(value string) inventory.Inventory {
	if strings.TrimSpace(value) == "" {
		return inventory.Inventory{}
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(value), &m); err != nil {
		return inventory.Inventory{}
	}
	return inventory.Sanitize(m)
}

// ImageInput acepta cada entrada del arreglo images como:
//   - string "data:image/..." (imagen nueva en base64, hay que subirla)
//   - string URL existente
//   - objeto {public_id, url}
type ImageInput struct {
	DataURL  string // no vacío cuando la entrada es un data URL por subir
	URL      string
	PublicID string
}

// IsZero indica que la entrada no aporta imagen (null o malformada).
func (in ImageInput) IsZero() bool {
	return in.DataURL == "" && in.URL == ""
}

// UnmarshalJSON implementa la unión string | objeto | null.
func (in *ImageInput) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "null" {
		return nil
	}
	if strings.HasPrefix(trimmed, "\"") {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		if strings.HasPrefix(s, "data:") {
			in.DataURL = s
		} else {
			in.URL = s
		}
		return nil
	}
	var obj struct {
		PublicID string `json:"public_id"`
		URL      string `json:"url"`
	}
	if err := json.Unmarshal(b, &obj); err != nil || obj.URL == "" {
		return nil
	}
	in.PublicID = obj.PublicID
	in.URL = obj.URL
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Requests / responses
// ──────────────────────────────────────────────────────────────────────────────

// CreateProductForm entrada del POST multipart. Las imágenes llegan como
// archivos del formulario y se pasan aparte al caso de uso.
type CreateProductForm struct {
	Name   string
	Price  float64
	Type   string
	Stock  inventory.Inventory
	Bodega inventory.Inventory
	User   string // fallback de atribución cuando no hay token
}

// UpdateProductRequest entrada del PUT. Solo los campos presentes sobreescriben.
type UpdateProductRequest struct {
	Name   *string        `json:"name"`
	Price  *float64       `json:"price"`
	Type   *string        `json:"type"`
	Stock  InventoryInput `json:"stock"`
	Bodega InventoryInput `json:"bodega"`
	Images *[]ImageInput  `json:"images"`
	User   string         `json:"user"`
}

// ProductImageResponse par {public_id, url} de una imagen del producto.
type ProductImageResponse struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Price     int64                  `json:"price"`
	Type      string                 `json:"type"`
	ImageSrc  string                 `json:"imageSrc"`
	ImageSrc2 string                 `json:"imageSrc2,omitempty"`
	Images    []ProductImageResponse `json:"images"`
	Stock     inventory.Inventory    `json:"stock"`
	Bodega    inventory.Inventory    `json:"bodega"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

// ProductListResponse lista paginada con los metadatos que consume el front.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Pages int               `json:"pages"`
	Limit int               `json:"limit"`
}

// HealthResponse conteo rápido de documentos vivos.
type HealthResponse struct {
	OK    bool `json:"ok"`
	Count int  `json:"count"`
}

// ToProductResponse mapea la entidad a su representación JSON.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	images := make([]ProductImageResponse, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, ProductImageResponse{PublicID: img.PublicID, URL: img.URL})
	}
	stock := p.Stock
	if stock == nil {
		stock = inventory.Inventory{}
	}
	bodega := p.Bodega
	if bodega == nil {
		bodega = inventory.Inventory{}
	}
	return &ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Type:      p.Type,
		ImageSrc:  p.ImageSrc,
		ImageSrc2: p.ImageSrc2,
		Images:    images,
		Stock:     stock,
		Bodega:    bodega,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
