package roster

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-panel-service/internal/domain"
	apperrors "github.com/spec-kit/hr-panel-service/pkg/util"
)

// WorkerCreator is the slice of the worker service the importer consumes.
type WorkerCreator interface {
	Create(ctx context.Context, input domain.WorkerInput) (*domain.Worker, error)
}

// RowError records a per-row failure with its 1-based spreadsheet row number.
type RowError struct {
	Row    int    `json:"fila"`
	Reason string `json:"motivo"`
}

// ImportResult accumulates per-row accounting in row order.
type ImportResult struct {
	Created   int        `json:"creados"`
	Failed    int        `json:"fallidos"`
	RowErrors []RowError `json:"errores"`
}

// Importer runs the bulk upload flow against the roster service.
type Importer struct {
	workers WorkerCreator
	logger  *zap.Logger
}

// NewImporter constructs the importer.
func NewImporter(workers WorkerCreator, logger *zap.Logger) *Importer {
	return &Importer{workers: workers, logger: logger}
}

// Import processes rows strictly sequentially, one create call at a time.
// Rows missing name or document are counted as errors and skipped; per-row
// business failures never abort the batch. Only a missing/empty sheet aborts.
func (imp *Importer) Import(ctx context.Context, rows [][]string) (*ImportResult, error) {
	if len(rows) == 0 {
		return nil, apperrors.NewValidationError("La hoja de cálculo está vacía", nil)
	}

	columns := ResolveColumns(rows[0])
	nameCol, hasName := columns[FieldName]
	docCol, hasDoc := columns[FieldDocument]
	if !hasName || !hasDoc {
		return nil, apperrors.NewValidationError(
			"La hoja debe incluir columnas de nombre y documento", nil)
	}

	result := &ImportResult{}
	for i, row := range rows[1:] {
		rowNumber := i + 2 // 1-based, after the header row

		name := cellAt(row, nameCol)
		document := cellAt(row, docCol)
		if name == "" || document == "" {
			result.fail(rowNumber, "falta nombre o documento")
			continue
		}
		if !domain.ValidDocument(document) {
			result.fail(rowNumber, "el documento debe tener 8 dígitos")
			continue
		}

		input := domain.WorkerInput{
			FullName: name,
			Document: document,
			Role:     domain.RoleFromText(cellAt(row, columnOr(columns, FieldContract, -1))),
			Company:  ClassifyCompany(cellAt(row, columnOr(columns, FieldCompany, -1))),
			AreaID:   ClassifyArea(cellAt(row, columnOr(columns, FieldArea, -1))),
		}

		if _, err := imp.workers.Create(ctx, input); err != nil {
			imp.logger.Warn("bulk import row failed",
				zap.Int("row", rowNumber),
				zap.String("documento", document),
				zap.Error(err),
			)
			result.fail(rowNumber, apperrors.ToDomainError(err).Message)
			continue
		}
		result.Created++
	}
	return result, nil
}

func (r *ImportResult) fail(row int, reason string) {
	r.Failed++
	r.RowErrors = append(r.RowErrors, RowError{Row: row, Reason: reason})
}

func columnOr(columns map[string]int, field string, fallback int) int {
	if idx, ok := columns[field]; ok {
		return idx
	}
	return fallback
}

// String renders the aggregate outcome for logging.
func (r *ImportResult) String() string {
	return fmt.Sprintf("creados=%d fallidos=%d", r.Created, r.Failed)
}
