package roster

import (
	"bytes"
	"io"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/spec-kit/hr-panel-service/pkg/util"
)

// ReadRows loads the first sheet of a spreadsheet into raw rows. An
// unreadable or empty workbook aborts the whole operation with one error.
func ReadRows(reader io.Reader) ([][]string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, apperrors.NewValidationError("No se pudo leer el archivo", nil)
	}

	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, apperrors.NewValidationError("El archivo no es una hoja de cálculo válida", nil)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, apperrors.NewValidationError("El archivo no contiene hojas", nil)
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, apperrors.NewValidationError("No se pudo leer la hoja de cálculo", nil)
	}
	if len(rows) == 0 {
		return nil, apperrors.NewValidationError("La hoja de cálculo está vacía", nil)
	}
	return rows, nil
}
