package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemasport/catalogo-api/internal/application/audit"
	"github.com/chemasport/catalogo-api/internal/application/dto"
	"github.com/chemasport/catalogo-api/internal/application/sales"
	"github.com/chemasport/catalogo-api/internal/domain"
	"github.com/chemasport/catalogo-api/internal/domain/entity"
	"github.com/chemasport/catalogo-api/internal/domain/inventory"
	"github.com/chemasport/catalogo-api/internal/domain/repository"
	"github.com/chemasport/catalogo-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeSaleRepo struct {
	sales []*entity.Sale
	from  time.Time
	to    time.Time
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	r.sales = append(r.sales, s)
	return nil
}

func (r *fakeSaleRepo) ListByRange(from, to time.Time) ([]*entity.Sale, error) {
	r.from, r.to = from, to
	var out []*entity.Sale
	for _, s := range r.sales {
		if !s.Fecha.Before(from) && s.Fecha.Before(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeLockRepo struct {
	products map[string]*entity.Product
	locked   []string
}

func newFakeLockRepo() *fakeLockRepo {
	return &fakeLockRepo{products: map[string]*entity.Product{}}
}

func (r *fakeLockRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeLockRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeLockRepo) GetForUpdate(id string) (*entity.Product, error) {
	r.locked = append(r.locked, id)
	return r.GetByID(id)
}

func (r *fakeLockRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeLockRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeLockRepo) List(repository.ProductFilter) ([]*entity.Product, error) { return nil, nil }
func (r *fakeLockRepo) Count(repository.ProductFilter) (int, error)              { return 0, nil }
func (r *fakeLockRepo) CountAll() (int, error)                                   { return len(r.products), nil }

// fakeTxRunner ejecuta el callback directamente contra los fakes (sin tx real).
type fakeTxRunner struct {
	sales    *fakeSaleRepo
	products *fakeLockRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductLockRepository,
) error) error {
	return fn(r.sales, r.products)
}

type fakeHistoryRepo struct {
	entries []*entity.HistoryEntry
}

func (r *fakeHistoryRepo) Create(e *entity.HistoryEntry) error {
	r.entries = append(r.entries, e)
	return nil
}
func (r *fakeHistoryRepo) List(limit, offset int) ([]*entity.HistoryEntry, error) { return nil, nil }
func (r *fakeHistoryRepo) Count() (int, error)                                    { return len(r.entries), nil }

func buildRegisterUC(t *testing.T) (*sales.RegisterSaleUseCase, *fakeTxRunner, *fakeHistoryRepo) {
	t.Helper()
	runner := &fakeTxRunner{sales: &fakeSaleRepo{}, products: newFakeLockRepo()}
	history := &fakeHistoryRepo{}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	uc := sales.NewRegisterSaleUseCase(runner, audit.NewRecorder(history, log))
	return uc, runner, history
}

func seedProduct(t *testing.T, repo *fakeLockRepo) *entity.Product {
	t.Helper()
	p := &entity.Product{
		ID:    "11111111-1111-1111-1111-111111111111",
		Name:  "Camiseta Nacional 2026",
		Price: 60000,
		Type:  "local",
		Stock: inventory.Inventory{"M": 3, "L": 1},
	}
	require.NoError(t, repo.Create(p))
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterSale
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterSale_DescuentaStockYCalculaTotal(t *testing.T) {
	uc, runner, history := buildRegisterUC(t)
	p := seedProduct(t, runner.products)

	out, err := uc.RegisterSale(context.Background(), dto.RegisterSaleRequest{
		ProductID: p.ID,
		Talla:     "M",
		Cantidad:  2,
		Jugador:   "James 10",
		Equipo:    "Colombia",
	}, "ana")

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(120000).Equal(out.Total), "total = precio x cantidad")
	assert.Equal(t, "Camiseta Nacional 2026 (local)", out.Item)

	stored, _ := runner.products.GetByID(p.ID)
	assert.Equal(t, 1, stored.Stock.Qty("M"), "el stock de la talla vendida se descuenta")
	assert.Equal(t, 1, stored.Stock.Qty("L"), "las demás tallas no se tocan")
	assert.Equal(t, []string{p.ID}, runner.products.locked, "la fila debe bloquearse antes de leer")

	require.Len(t, runner.sales.sales, 1)
	require.Len(t, history.entries, 1)
	assert.Equal(t, entity.ActionSale, history.entries[0].Action)
	assert.Equal(t, "ana", history.entries[0].User)
}

func TestRegisterSale_StockInsuficiente_NoModificaNada(t *testing.T) {
	uc, runner, history := buildRegisterUC(t)
	p := seedProduct(t, runner.products)

	_, err := uc.RegisterSale(context.Background(), dto.RegisterSaleRequest{
		ProductID: p.ID,
		Talla:     "L",
		Cantidad:  2, // solo hay 1
	}, "ana")

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	stored, _ := runner.products.GetByID(p.ID)
	assert.Equal(t, 1, stored.Stock.Qty("L"), "el stock queda intacto")
	assert.Empty(t, runner.sales.sales)
	assert.Empty(t, history.entries)
}

func TestRegisterSale_TallaSinStockRegistrado_EsInsuficiente(t *testing.T) {
	uc, runner, _ := buildRegisterUC(t)
	p := seedProduct(t, runner.products)

	// XL es talla válida del catálogo pero el producto no la tiene cargada.
	_, err := uc.RegisterSale(context.Background(), dto.RegisterSaleRequest{
		ProductID: p.ID, Talla: "XL", Cantidad: 1,
	}, "ana")

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestRegisterSale_TallaInvalida_RetornaValidacion(t *testing.T) {
	uc, runner, _ := buildRegisterUC(t)
	seedProduct(t, runner.products)

	_, err := uc.RegisterSale(context.Background(), dto.RegisterSaleRequest{
		ProductID: "11111111-1111-1111-1111-111111111111", Talla: "ZZ", Cantidad: 1,
	}, "ana")

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "talla", vErr.Field)
}

func TestRegisterSale_CantidadFueraDeRango_RetornaValidacion(t *testing.T) {
	uc, runner, _ := buildRegisterUC(t)
	seedProduct(t, runner.products)

	for _, cantidad := range []int{0, -1, 101} {
		_, err := uc.RegisterSale(context.Background(), dto.RegisterSaleRequest{
			ProductID: "11111111-1111-1111-1111-111111111111", Talla: "M", Cantidad: cantidad,
		}, "ana")

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr, "cantidad %d debe rechazarse", cantidad)
		assert.Equal(t, "cantidad", vErr.Field)
	}
}

func TestRegisterSale_ProductoInexistente_RetornaNotFound(t *testing.T) {
	uc, _, _ := buildRegisterUC(t)

	_, err := uc.RegisterSale(context.Background(), dto.RegisterSaleRequest{
		ProductID: "99999999-9999-9999-9999-999999999999", Talla: "M", Cantidad: 1,
	}, "ana")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes diarios
// ──────────────────────────────────────────────────────────────────────────────

type fakePDF struct{ called bool }

func (g *fakePDF) GenerateDailyReport(_ context.Context, _ time.Time, _ []*entity.Sale, _ decimal.Decimal) ([]byte, error) {
	g.called = true
	return []byte("%PDF-fake"), nil
}

type fakeExcel struct{ called bool }

func (g *fakeExcel) ExportDailyReport(_ time.Time, _ []*entity.Sale, _ decimal.Decimal) ([]byte, error) {
	g.called = true
	return []byte("PK-fake"), nil
}

func seedSales(repo *fakeSaleRepo, day time.Time) {
	repo.sales = []*entity.Sale{
		{ID: "v1", Total: decimal.NewFromInt(60000), Fecha: day.Add(10 * time.Hour)},
		{ID: "v2", Total: decimal.NewFromInt(95000), Fecha: day.Add(18 * time.Hour)},
		// Venta de otro día: no debe entrar al reporte.
		{ID: "v3", Total: decimal.NewFromInt(40000), Fecha: day.AddDate(0, 0, 1).Add(time.Hour)},
	}
}

func TestDailySales_FiltraPorDiaCalendario(t *testing.T) {
	saleRepo := &fakeSaleRepo{}
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local)
	seedSales(saleRepo, day)
	uc := sales.NewReportUseCase(saleRepo, &fakePDF{}, &fakeExcel{})

	out, err := uc.DailySales("2026-08-30")

	require.NoError(t, err)
	assert.Equal(t, "2026-08-30", out.Date)
	assert.Len(t, out.Ventas, 2)
	assert.True(t, decimal.NewFromInt(155000).Equal(out.Total))
	assert.Equal(t, day, saleRepo.from, "el rango empieza a medianoche local")
	assert.Equal(t, day.AddDate(0, 0, 1), saleRepo.to, "y termina a la medianoche siguiente (exclusivo)")
}

func TestDailySales_FechaInvalida_RetornaValidacion(t *testing.T) {
	uc := sales.NewReportUseCase(&fakeSaleRepo{}, &fakePDF{}, &fakeExcel{})

	_, err := uc.DailySales("30/08/2026")

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "date", vErr.Field)
}

func TestDailyPDF_NombreDeArchivoYBytes(t *testing.T) {
	saleRepo := &fakeSaleRepo{}
	pdf := &fakePDF{}
	uc := sales.NewReportUseCase(saleRepo, pdf, &fakeExcel{})

	doc, filename, err := uc.DailyPDF(context.Background(), "2026-08-30")

	require.NoError(t, err)
	assert.True(t, pdf.called)
	assert.Equal(t, "ventas-2026-08-30.pdf", filename)
	assert.Equal(t, []byte("%PDF-fake"), doc)
}

func TestDailyExcel_NombreDeArchivoYBytes(t *testing.T) {
	excel := &fakeExcel{}
	uc := sales.NewReportUseCase(&fakeSaleRepo{}, &fakePDF{}, excel)

	doc, filename, err := uc.DailyExcel("2026-08-30")

	require.NoError(t, err)
	assert.True(t, excel.called)
	assert.Equal(t, "ventas-2026-08-30.xlsx", filename)
	assert.Equal(t, []byte("PK-fake"), doc)
}
