package report

import "github.com/xuri/excelize/v2"

// Template sheet names.
const (
	SheetUploadTemplate = "Carga"
	SheetRemoveTemplate = "Baja"
)

var uploadTemplateColumns = []string{
	"Colaborador", "DNI", "Contrato", "Empresa", "Departamento",
}

// UploadTemplate produces the five-column workbook operators fill for a bulk
// upload.
func UploadTemplate() (*excelize.File, error) {
	file := excelize.NewFile()
	if err := file.SetSheetName("Sheet1", SheetUploadTemplate); err != nil {
		return nil, err
	}
	if err := writeHeader(file, SheetUploadTemplate, uploadTemplateColumns); err != nil {
		return nil, err
	}
	return file, nil
}

// RemoveTemplate produces the single-column workbook for a bulk
// deactivate/delete.
func RemoveTemplate() (*excelize.File, error) {
	file := excelize.NewFile()
	if err := file.SetSheetName("Sheet1", SheetRemoveTemplate); err != nil {
		return nil, err
	}
	if err := writeHeader(file, SheetRemoveTemplate, []string{"DNI"}); err != nil {
		return nil, err
	}
	return file, nil
}
