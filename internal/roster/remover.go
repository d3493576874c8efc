package roster

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-panel-service/internal/service"
	apperrors "github.com/spec-kit/hr-panel-service/pkg/util"
)

// BulkRemover is the slice of the worker service the remove flow consumes.
type BulkRemover interface {
	BulkRemove(ctx context.Context, documents []string, hard bool) (*service.BulkRemoveResult, error)
}

// Remover runs the bulk deactivate/delete flow.
type Remover struct {
	workers BulkRemover
	logger  *zap.Logger
}

// NewRemover constructs the remover.
func NewRemover(workers BulkRemover, logger *zap.Logger) *Remover {
	return &Remover{workers: workers, logger: logger}
}

// CollectDocuments resolves the document column and gathers its values for
// confirmation. A sheet without any document-like column aborts here, before
// any network call.
func CollectDocuments(rows [][]string) ([]string, error) {
	if len(rows) == 0 {
		return nil, apperrors.NewValidationError("La hoja de cálculo está vacía", nil)
	}
	columns := ResolveColumns(rows[0])
	docCol, ok := columns[FieldDocument]
	if !ok {
		return nil, apperrors.NewValidationError(
			"La hoja no contiene una columna de documento", nil)
	}

	documents := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if doc := cellAt(row, docCol); doc != "" {
			documents = append(documents, doc)
		}
	}
	if len(documents) == 0 {
		return nil, apperrors.NewValidationError("La hoja no contiene documentos", nil)
	}
	return documents, nil
}

// Execute issues the single batched server call after the operator confirmed
// the collected ids and chose between soft deactivation and hard deletion.
func (r *Remover) Execute(ctx context.Context, documents []string, hard bool) (*service.BulkRemoveResult, error) {
	if len(documents) == 0 {
		return nil, apperrors.NewValidationError("No hay documentos para procesar", nil)
	}
	result, err := r.workers.BulkRemove(ctx, documents, hard)
	if err != nil {
		return nil, err
	}
	r.logger.Info("bulk remove executed",
		zap.Int("solicitados", len(documents)),
		zap.Int("procesados", result.Processed),
		zap.Int("no_encontrados", len(result.Unmatched)),
		zap.Bool("hard", hard),
	)
	return result, nil
}
