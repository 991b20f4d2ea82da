package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/buildcost-estimates/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(result model.EstimateResult) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, result); err != nil {
		return nil, err
	}

	usedNames := map[string]struct{}{summarySheet: {}}
	for _, category := range categoriesInOrder(result.Materials) {
		sheetName := buildSheetName(category, usedNames)
		usedNames[sheetName] = struct{}{}

		if _, err := file.NewSheet(sheetName); err != nil {
			return nil, err
		}
		if err := g.writeCategory(file, sheetName, result, category); err != nil {
			return nil, err
		}
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, result model.EstimateResult) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	project := result.ProjectDetails
	set("A1", "Estimate")
	set("B1", result.ProjectID)
	set("A2", "Project type")
	set("B2", string(project.ProjectType))
	set("A3", "Location")
	set("B3", project.Location)
	set("A4", "Quality level")
	set("B4", string(project.QualityLevel))
	set("A5", "Dimensions, m")
	set("B5", fmt.Sprintf("%.2f x %.2f x %.2f", project.Length, project.Width, project.Height))
	set("A6", "Generated at")
	set("B6", formatDate(result.GeneratedAt))
	set("A7", "Subtotal")
	set("B7", result.Subtotal)
	set("A8", fmt.Sprintf("Waste buffer, %.0f%%", result.WasteBufferPercentage))
	set("B8", result.WasteBuffer)
	set("A9", "Total")
	set("B9", result.Total)

	tableRow := 11
	set(fmt.Sprintf("A%d", tableRow), "Category")
	set(fmt.Sprintf("B%d", tableRow), "Lines")
	set(fmt.Sprintf("C%d", tableRow), "Amount")

	for i, category := range categoriesInOrder(result.Materials) {
		row := tableRow + 1 + i
		count, amount := categoryTotals(result.Materials, category)
		set(fmt.Sprintf("A%d", row), category)
		set(fmt.Sprintf("B%d", row), count)
		set(fmt.Sprintf("C%d", row), amount)
	}

	_ = file.SetColWidth(sheet, "A", "A", 28)
	_ = file.SetColWidth(sheet, "B", "B", 26)
	_ = file.SetColWidth(sheet, "C", "C", 14)
	return nil
}

func (g *Generator) writeCategory(file *excelize.File, sheet string, result model.EstimateResult, category string) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Category")
	set("B1", category)

	tableRow := 3
	headers := []string{"Material", "Quantity", "Unit", "Unit price", "Total", "Brand"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}

	row := tableRow
	for _, item := range result.Materials {
		if item.Category != category {
			continue
		}
		row++
		set(fmt.Sprintf("A%d", row), item.Name)
		set(fmt.Sprintf("B%d", row), item.Quantity)
		set(fmt.Sprintf("C%d", row), item.Unit)
		set(fmt.Sprintf("D%d", row), item.UnitPrice)
		set(fmt.Sprintf("E%d", row), item.TotalPrice)
		set(fmt.Sprintf("F%d", row), item.SelectedBrand)
	}

	_ = file.SetColWidth(sheet, "A", "A", 28)
	_ = file.SetColWidth(sheet, "B", "B", 12)
	_ = file.SetColWidth(sheet, "C", "C", 10)
	_ = file.SetColWidth(sheet, "D", "E", 14)
	_ = file.SetColWidth(sheet, "F", "F", 20)
	return nil
}

func categoriesInOrder(materials []model.MaterialItem) []string {
	seen := make(map[string]struct{}, 8)
	ordered := make([]string, 0, 8)
	for _, item := range materials {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		ordered = append(ordered, item.Category)
	}
	return ordered
}

func categoryTotals(materials []model.MaterialItem, category string) (int, float64) {
	count := 0
	amount := 0.0
	for _, item := range materials {
		if item.Category != category {
			continue
		}
		count++
		amount += item.TotalPrice
	}
	return count, model.Round2(amount)
}

func buildSheetName(category string, used map[string]struct{}) string {
	base := sanitizeSheetName(category)
	if len(base) > 31 {
		base = base[:31]
	}

	nameCandidate := base
	counter := 2
	for {
		if _, exists := used[nameCandidate]; !exists {
			return nameCandidate
		}
		suffix := fmt.Sprintf("-%d", counter)
		trimmed := base
		if len(trimmed)+len(suffix) > 31 {
			trimmed = trimmed[:31-len(suffix)]
		}
		nameCandidate = trimmed + suffix
		counter++
	}
}

func sanitizeSheetName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "Sheet"
	}

	replacer := strings.NewReplacer(
		"[", "-",
		"]", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"/", "-",
		"\\", "-",
	)
	value = replacer.Replace(value)
	value = strings.TrimSpace(value)
	if value == "" {
		return "Sheet"
	}
	return value
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
