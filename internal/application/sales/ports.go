package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chemasport/catalogo-api/internal/domain/entity"
	"github.com/chemasport/catalogo-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el descuento de stock y la
// inserción de la venta son atómicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductLockRepository,
	) error) error
}

// PDFGenerator genera el reporte diario de ventas en PDF.
type PDFGenerator interface {
	GenerateDailyReport(ctx context.Context, date time.Time, ventas []*entity.Sale, total decimal.Decimal) ([]byte, error)
}

// ExcelExporter genera el reporte diario de ventas como hoja de cálculo.
type ExcelExporter interface {
	ExportDailyReport(date time.Time, ventas []*entity.Sale, total decimal.Decimal) ([]byte, error)
}
