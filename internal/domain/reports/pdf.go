package reports

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"paysim/internal/domain/payroll"
)

const (
	chartLeft   = 30.0
	chartWidth  = 160.0
	chartHeight = 80.0
	barWidth    = 22.0
	barGap      = 4.0
)

// WritePDF renders the comparison table and the gross/net bar chart as an A4
// landscape document.
func WritePDF(w io.Writer, comparison payroll.Comparison) error {
	table := BuildTable(comparison)
	chart := BuildChart(comparison)

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Apprentice pay 2024 versus 2025", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Apprentice pay: 2024 versus 2025")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Pay rate: %d%% of the reference minimum wage", comparison.Percentage))
	pdf.Ln(10)

	writeTable(pdf, tr, table)
	pdf.Ln(8)
	writeChart(pdf, tr, chart)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func writeTable(pdf *gofpdf.Fpdf, tr func(string) string, table Table) {
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	labelWidth := 42.0
	cellWidth := (pageWidth - left - right - labelWidth) / float64(len(table.Columns))

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(labelWidth, 10, "Type", "1", 0, "L", true, 0, "")
	for _, column := range table.Columns {
		pdf.CellFormat(cellWidth, 10, tr(column.Label), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range table.Rows {
		pdf.CellFormat(labelWidth, 8, tr(row.Label), "1", 0, "L", false, 0, "")
		for _, value := range row.Values {
			pdf.CellFormat(cellWidth, 8, FormatAmount(value), "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func writeChart(pdf *gofpdf.Fpdf, tr func(string) string, chart Chart) {
	top := pdf.GetY() + 6
	base := top + chartHeight
	maxAmount := chart.MaxAmount().InexactFloat64()
	if maxAmount <= 0 {
		maxAmount = 1
	}

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetDrawColor(120, 120, 120)
	pdf.Line(chartLeft, top, chartLeft, base)
	pdf.Line(chartLeft, base, chartLeft+chartWidth, base)
	pdf.Text(chartLeft-2, top-2, tr(chart.YLabel))

	periods := chart.Periods()
	groupWidth := chartWidth / float64(max(len(periods), 1))
	for i, period := range periods {
		groupLeft := chartLeft + float64(i)*groupWidth + (groupWidth-float64(len(chart.Series))*(barWidth+barGap))/2
		for j, series := range chart.Series {
			amount := chart.Amount(period, series.PayType)
			height := amount.InexactFloat64() / maxAmount * (chartHeight - 10)
			x := groupLeft + float64(j)*(barWidth+barGap)
			r, g, b := hexColor(series.Color)
			pdf.SetFillColor(r, g, b)
			pdf.Rect(x, base-height, barWidth, height, "F")
			label := tr(FormatCurrency(amount))
			pdf.Text(x+(barWidth-pdf.GetStringWidth(label))/2, base-height-1.5, label)
		}
		pdf.Text(chartLeft+float64(i)*groupWidth+groupWidth/2-pdf.GetStringWidth(period)/2, base+5, period)
	}
	pdf.Text(chartLeft+chartWidth/2-pdf.GetStringWidth(chart.XLabel)/2, base+11, chart.XLabel)

	legendX := chartLeft + chartWidth + 8
	for i, series := range chart.Series {
		y := top + float64(i)*7
		r, g, b := hexColor(series.Color)
		pdf.SetFillColor(r, g, b)
		pdf.Rect(legendX, y, 4, 4, "F")
		pdf.Text(legendX+6, y+3.5, series.Label)
	}
}

func hexColor(value string) (int, int, int) {
	raw := strings.TrimPrefix(value, "#")
	parsed, err := strconv.ParseUint(raw, 16, 32)
	if err != nil || len(raw) != 6 {
		return 0, 0, 0
	}
	return int(parsed >> 16 & 0xff), int(parsed >> 8 & 0xff), int(parsed & 0xff)
}
