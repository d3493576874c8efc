package report

import (
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/spec-kit/hr-panel-service/internal/domain"
)

// Sheet names of the generated reports.
const (
	SheetJustifications = "Justificaciones"
	SheetSuggestions    = "Sugerencias"
)

// Status fill colors, one per workflow state.
var statusFills = map[string]string{
	string(domain.JustificationPending):  "FFE699", // amber
	string(domain.JustificationApproved): "C6EFCE", // green
	string(domain.JustificationRejected): "FFC7CE", // red
	string(domain.SuggestionReviewed):    "BDD7EE", // blue
}

var justificationColumns = []string{
	"Colaborador", "Área", "Título", "Descripción", "Estado", "Motivo de rechazo", "Fecha",
}

var suggestionColumns = []string{
	"Colaborador", "Categoría", "Título", "Descripción", "Estado", "Fecha",
}

// JustificationsWorkbook renders the justification report with the fixed
// column set and per-status cell coloring.
func JustificationsWorkbook(items []domain.Justification) (*excelize.File, error) {
	file := excelize.NewFile()
	if err := file.SetSheetName("Sheet1", SheetJustifications); err != nil {
		return nil, err
	}
	if err := writeHeader(file, SheetJustifications, justificationColumns); err != nil {
		return nil, err
	}

	for i, item := range items {
		row := i + 2
		cells := []any{
			item.WorkerName,
			item.AreaName,
			item.Title,
			item.Description,
			string(item.Status),
			item.RejectReason,
			formatDate(item.CreatedAt),
		}
		if err := writeRow(file, SheetJustifications, row, cells); err != nil {
			return nil, err
		}
		if err := fillStatusCell(file, SheetJustifications, 5, row, string(item.Status)); err != nil {
			return nil, err
		}
	}
	return file, nil
}

// SuggestionsWorkbook renders the suggestion report.
func SuggestionsWorkbook(items []domain.Suggestion) (*excelize.File, error) {
	file := excelize.NewFile()
	if err := file.SetSheetName("Sheet1", SheetSuggestions); err != nil {
		return nil, err
	}
	if err := writeHeader(file, SheetSuggestions, suggestionColumns); err != nil {
		return nil, err
	}

	for i, item := range items {
		row := i + 2
		cells := []any{
			item.WorkerName,
			string(item.Category()),
			item.Title,
			item.Description,
			string(item.Status),
			formatDate(item.CreatedAt),
		}
		if err := writeRow(file, SheetSuggestions, row, cells); err != nil {
			return nil, err
		}
		if err := fillStatusCell(file, SheetSuggestions, 5, row, string(item.Status)); err != nil {
			return nil, err
		}
	}
	return file, nil
}

func writeHeader(file *excelize.File, sheet string, columns []string) error {
	style, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D9D9D9"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	for i, column := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(sheet, cell, column); err != nil {
			return err
		}
		if err := file.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(file *excelize.File, sheet string, row int, cells []any) error {
	for i, value := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}

func fillStatusCell(file *excelize.File, sheet string, col, row int, status string) error {
	color, ok := statusFills[status]
	if !ok {
		return nil
	}
	style, err := file.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return file.SetCellStyle(sheet, cell, cell, style)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}
