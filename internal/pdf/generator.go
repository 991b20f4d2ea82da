package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/buildcost-estimates/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

func (g *Generator) Generate(result model.EstimateResult) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Construction Cost Estimate", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Estimate %s, generated %s", result.ProjectID, formatDate(result.GeneratedAt)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	g.addProjectBlock(pdf, result.ProjectDetails)
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Bill of Materials", "", 1, "L", false, 0, "")

	headers := []string{"Material", "Category", "Qty", "Unit", "Unit Price", "Total"}
	colWidths := []float64{52, 30, 20, 18, 30, 30}
	drawTableRow(pdf, g.fontName, headers, colWidths, true)

	for _, item := range result.Materials {
		name := item.Name
		if item.SelectedBrand != "" && item.SelectedBrand != model.BrandStandard {
			name = fmt.Sprintf("%s (%s)", item.Name, item.SelectedBrand)
		}
		row := []string{
			name,
			item.Category,
			formatAmount(item.Quantity, 2),
			item.Unit,
			formatAmount(item.UnitPrice, 2),
			formatAmount(item.TotalPrice, 2),
		}
		drawTableRow(pdf, g.fontName, row, colWidths, false)
	}

	pdf.Ln(2)
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Subtotal: %s", formatAmount(result.Subtotal, 2)), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Waste buffer (%.0f%%): %s", result.WasteBufferPercentage, formatAmount(result.WasteBuffer, 2)), "", 1, "R", false, 0, "")
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Total: %s", formatAmount(result.Total, 2)), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) addProjectBlock(pdf *gofpdf.Fpdf, project model.ProjectInput) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Project", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)

	lines := []string{
		fmt.Sprintf("Type: %s", project.ProjectType),
		fmt.Sprintf("Dimensions: %.2f x %.2f x %.2f m", project.Length, project.Width, project.Height),
		fmt.Sprintf("Quality: %s", project.QualityLevel),
	}
	if project.Location != "" {
		lines = append(lines, fmt.Sprintf("Location: %s", project.Location))
	}
	for _, line := range lines {
		pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
	}
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 9)
	for i, col := range cols {
		align := "L"
		if i >= 2 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func formatAmount(value float64, precision int) string {
	format := fmt.Sprintf("%%.%df", precision)
	return fmt.Sprintf(format, value)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02.01.2006")
}
