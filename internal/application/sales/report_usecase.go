package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chemasport/catalogo-api/internal/application/dto"
	"github.com/chemasport/catalogo-api/internal/domain"
	"github.com/chemasport/catalogo-api/internal/domain/entity"
	"github.com/chemasport/catalogo-api/internal/domain/repository"
)

// dateLayout formato del parámetro date de los reportes.
const dateLayout = "2006-01-02"

// ReportUseCase reporte diario de ventas. El día es una fecha calendario
// explícita [00:00, 24:00) en hora local del servidor; no existe ninguna
// heurística de "día nuevo" por minuto de reloj.
type ReportUseCase struct {
	saleRepo repository.SaleRepository
	pdf      PDFGenerator
	excel    ExcelExporter
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(saleRepo repository.SaleRepository, pdf PDFGenerator, excel ExcelExporter) *ReportUseCase {
	return &ReportUseCase{saleRepo: saleRepo, pdf: pdf, excel: excel}
}

// parseDay interpreta el parámetro date (YYYY-MM-DD); vacío significa hoy.
func parseDay(date string) (time.Time, error) {
	if date == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, domain.NewValidationError("date", "formato esperado YYYY-MM-DD")
	}
	return day, nil
}

// daily devuelve las ventas del día y el total acumulado.
func (uc *ReportUseCase) daily(date string) (time.Time, []*entity.Sale, decimal.Decimal, error) {
	day, err := parseDay(date)
	if err != nil {
		return time.Time{}, nil, decimal.Zero, err
	}
	ventas, err := uc.saleRepo.ListByRange(day, day.AddDate(0, 0, 1))
	if err != nil {
		return time.Time{}, nil, decimal.Zero, err
	}
	total := decimal.Zero
	for _, v := range ventas {
		total = total.Add(v.Total)
	}
	return day, ventas, total, nil
}

// DailySales lista las ventas de un día calendario con su total.
func (uc *ReportUseCase) DailySales(date string) (*dto.DailySalesResponse, error) {
	day, ventas, total, err := uc.daily(date)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(ventas))
	for _, v := range ventas {
		items = append(items, dto.ToSaleResponse(v))
	}
	return &dto.DailySalesResponse{
		Date:   day.Format(dateLayout),
		Ventas: items,
		Total:  total,
	}, nil
}

// DailyPDF genera el reporte del día en PDF y su nombre de archivo.
func (uc *ReportUseCase) DailyPDF(ctx context.Context, date string) ([]byte, string, error) {
	day, ventas, total, err := uc.daily(date)
	if err != nil {
		return nil, "", err
	}
	doc, err := uc.pdf.GenerateDailyReport(ctx, day, ventas, total)
	if err != nil {
		return nil, "", err
	}
	return doc, fmt.Sprintf("ventas-%s.pdf", day.Format(dateLayout)), nil
}

// DailyExcel genera el reporte del día como hoja de cálculo y su nombre de archivo.
func (uc *ReportUseCase) DailyExcel(date string) ([]byte, string, error) {
	day, ventas, total, err := uc.daily(date)
	if err != nil {
		return nil, "", err
	}
	doc, err := uc.excel.ExportDailyReport(day, ventas, total)
	if err != nil {
		return nil, "", err
	}
	return doc, fmt.Sprintf("ventas-%s.xlsx", day.Format(dateLayout)), nil
}
