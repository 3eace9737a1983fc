package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemasport/catalogo-api/internal/application/audit"
	"github.com/chemasport/catalogo-api/internal/application/dto"
	"github.com/chemasport/catalogo-api/internal/application/usecase"
	"github.com/chemasport/catalogo-api/internal/domain/entity"
	"github.com/chemasport/catalogo-api/internal/domain/inventory"
	"github.com/chemasport/catalogo-api/internal/domain/repository"
	apphttp "github.com/chemasport/catalogo-api/internal/interfaces/http"
	"github.com/chemasport/catalogo-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para montar el handler con el caso de uso real
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products map[string]*entity.Product
	order    []string
}

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	r.order = append(r.order, p.ID)
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func (r *memProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for i := len(r.order) - 1; i >= 0; i-- {
		if p, ok := r.products[r.order[i]]; ok {
			out = append(out, p)
		}
	}
	if filter.Offset < len(out) {
		out = out[filter.Offset:]
	} else {
		out = nil
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *memProductRepo) Count(repository.ProductFilter) (int, error) { return len(r.products), nil }
func (r *memProductRepo) CountAll() (int, error)                      { return len(r.products), nil }

type memImageStore struct{ uploads int }

func (s *memImageStore) Upload(context.Context, io.Reader) (entity.ProductImage, error) {
	s.uploads++
	return entity.ProductImage{PublicID: "products/test", URL: "https://cdn.example.com/test.jpg"}, nil
}

func (s *memImageStore) UploadDataURL(context.Context, string) (entity.ProductImage, error) {
	return s.Upload(nil, nil)
}

func (s *memImageStore) Destroy(context.Context, string) error { return nil }

type memHistoryRepo struct{ entries []*entity.HistoryEntry }

func (r *memHistoryRepo) Create(e *entity.HistoryEntry) error {
	r.entries = append(r.entries, e)
	return nil
}
func (r *memHistoryRepo) List(int, int) ([]*entity.HistoryEntry, error) { return nil, nil }
func (r *memHistoryRepo) Count() (int, error)                           { return len(r.entries), nil }

// buildProductApp monta las rutas de productos sin middleware de auth (el RBAC
// se prueba aparte); aquí interesa el contrato HTTP del handler.
func buildProductApp(t *testing.T) (*fiber.App, *memProductRepo, *memHistoryRepo) {
	t.Helper()
	repo := &memProductRepo{products: map[string]*entity.Product{}}
	history := &memHistoryRepo{}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	uc := usecase.NewProductUseCase(repo, &memImageStore{}, audit.NewRecorder(history, log), log)
	h := apphttp.NewProductHandler(uc, log)

	app := fiber.New()
	app.Get("/api/products/health", h.Health)
	app.Get("/api/products", h.List)
	app.Post("/api/products", h.Create)
	app.Put("/api/products/:id", h.Update)
	app.Delete("/api/products/:id", h.Delete)
	return app, repo, history
}

func seedCatalog(t *testing.T, repo *memProductRepo, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, repo.Create(&entity.Product{
			ID:       "00000000-0000-0000-0000-00000000000" + string(rune('a'+i)),
			Name:     "Camiseta",
			Price:    50000,
			Type:     "local",
			ImageSrc: "https://cdn.example.com/x.jpg",
			Stock:    inventory.Inventory{"M": 1},
		}))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/products
// ──────────────────────────────────────────────────────────────────────────────

func TestListProducts_RespondeConCacheCorto(t *testing.T) {
	app, repo, _ := buildProductApp(t)
	seedCatalog(t, repo, 3)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/products", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "public, max-age=20", resp.Header.Get("Cache-Control"))

	var body dto.ProductListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 3, body.Total)
	assert.Equal(t, 1, body.Page)
	assert.Equal(t, 20, body.Limit)
}

func TestListProducts_AcotaLimitYPage(t *testing.T) {
	app, repo, _ := buildProductApp(t)
	seedCatalog(t, repo, 2)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/products?page=-4&limit=5000", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body dto.ProductListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Page, "page negativo se acota a 1")
	assert.Equal(t, 100, body.Limit, "limit gigante se acota a 100")
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/products
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_MultipartCompleto(t *testing.T) {
	app, repo, history := buildProductApp(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("name", "Camiseta Millonarios 2026"))
	require.NoError(t, w.WriteField("price", "75000.50"))
	require.NoError(t, w.WriteField("type", "local"))
	require.NoError(t, w.WriteField("stock", `{"S":1,"M":2}`))
	fw, err := w.CreateFormFile("images", "frente.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("binario-fake"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/products", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("X-User", "ana")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body dto.ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(75000), body.Price)
	assert.Equal(t, "https://cdn.example.com/test.jpg", body.ImageSrc)
	assert.Len(t, repo.products, 1)
	require.Len(t, history.entries, 1)
	assert.Equal(t, "ana", history.entries[0].User, "sin token el actor sale del header X-User")
}

func TestCreateProduct_SinImagenes_Retorna400(t *testing.T) {
	app, _, _ := buildProductApp(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("name", "Camiseta"))
	require.NoError(t, w.WriteField("price", "1000"))
	require.NoError(t, w.WriteField("type", "local"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/products", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// PUT / DELETE /api/products/:id
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateProduct_IDMalformado_Retorna400SinConsultar(t *testing.T) {
	app, _, _ := buildProductApp(t)

	req := httptest.NewRequest(http.MethodPut, "/api/products/esto-no-es-uuid",
		strings.NewReader(`{"price":1}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_ID")
}

func TestUpdateProduct_UUIDValidoInexistente_Retorna404(t *testing.T) {
	app, _, _ := buildProductApp(t)

	req := httptest.NewRequest(http.MethodPut, "/api/products/99999999-9999-4999-8999-999999999999",
		strings.NewReader(`{"price":1}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteProduct_Inexistente_Retorna404(t *testing.T) {
	app, _, _ := buildProductApp(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/products/99999999-9999-4999-8999-999999999999", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/products/health
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth_DevuelveConteo(t *testing.T) {
	app, repo, _ := buildProductApp(t)
	seedCatalog(t, repo, 2)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/products/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body dto.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.OK)
	assert.Equal(t, 2, body.Count)
}
