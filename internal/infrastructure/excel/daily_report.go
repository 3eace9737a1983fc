// Package excel exporta el reporte diario de ventas como XLSX con Excelize.
package excel

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/chemasport/catalogo-api/internal/application/sales"
	"github.com/chemasport/catalogo-api/internal/domain/entity"
)

var _ sales.ExcelExporter = (*DailyReportExporter)(nil)

// DailyReportExporter implementa sales.ExcelExporter usando Excelize.
type DailyReportExporter struct{}

// NewDailyReportExporter construye el exportador.
func NewDailyReportExporter() *DailyReportExporter { return &DailyReportExporter{} }

// ExportDailyReport genera la hoja "Ventas" del día y devuelve los bytes del XLSX.
func (e *DailyReportExporter) ExportDailyReport(date time.Time, ventas []*entity.Sale, total decimal.Decimal) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Ventas"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", "Reporte de ventas")
	f.SetCellValue(sheet, "B1", date.Format("2006-01-02"))

	headers := []string{"Hora", "Artículo", "Talla", "Cantidad", "Precio", "Total", "Jugador", "Equipo", "Registrada por"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(sheet, cell, h)
	}

	for i, v := range ventas {
		r := i + 4
		precio, _ := v.Precio.Float64()
		totalVenta, _ := v.Total.Float64()
		values := []any{
			v.Fecha.Format("15:04"), v.Item, v.Talla, v.Cantidad,
			precio, totalVenta, v.Jugador, v.Equipo, v.CreatedBy,
		}
		for j, val := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, r)
			f.SetCellValue(sheet, cell, val)
		}
	}

	totalRow := len(ventas) + 5
	f.SetCellValue(sheet, fmt.Sprintf("E%d", totalRow), "TOTAL")
	totalF, _ := total.Float64()
	f.SetCellValue(sheet, fmt.Sprintf("F%d", totalRow), totalF)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
