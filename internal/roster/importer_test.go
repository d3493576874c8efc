package roster

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-panel-service/internal/domain"
	"github.com/spec-kit/hr-panel-service/internal/service"
)

type workerServiceMock struct {
	createErr    error
	createFailOn string
	created      []domain.WorkerInput
	bulkErr      error
	bulkCalls    int
	bulkDocs     []string
	bulkHard     bool
}

func (m *workerServiceMock) Create(_ context.Context, input domain.WorkerInput) (*domain.Worker, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	if m.createFailOn != "" && input.Document == m.createFailOn {
		return nil, errors.New("el documento ya existe")
	}
	m.created = append(m.created, input)
	return &domain.Worker{Document: input.Document, FullName: input.FullName}, nil
}

func (m *workerServiceMock) BulkRemove(_ context.Context, documents []string, hard bool) (*service.BulkRemoveResult, error) {
	m.bulkCalls++
	m.bulkDocs = documents
	m.bulkHard = hard
	if m.bulkErr != nil {
		return nil, m.bulkErr
	}
	return &service.BulkRemoveResult{Processed: len(documents)}, nil
}

func TestImportCreatesRowsSequentially(t *testing.T) {
	mock := &workerServiceMock{}
	imp := NewImporter(mock, zap.NewNop())

	rows := [][]string{
		{"Colaborador", "DNI", "Contrato", "Empresa", "Departamento"},
		{"Ana Torres", "12345678", "Planilla", "SREP", "Bienestar"},
		{"Luis Rojas", "87654321", "Administrador", "Maxfer", "Operaciones"},
	}

	result, err := imp.Import(context.Background(), rows)
	if err != nil {
		t.Fatalf("unexpected import error: %v", err)
	}
	if result.Created != 2 || result.Failed != 0 {
		t.Fatalf("expected 2 created / 0 failed, got %+v", result)
	}

	first := mock.created[0]
	if first.AreaID != "3" {
		t.Errorf("expected bienestar area id 3, got %q", first.AreaID)
	}
	if first.Role != domain.RoleWorker {
		t.Errorf("expected base worker role, got %q", first.Role)
	}
	second := mock.created[1]
	if second.Role != domain.RoleAdmin {
		t.Errorf("admin contract text must yield administrator, got %q", second.Role)
	}
	if second.Company != domain.CompanySecondary {
		t.Errorf("expected secondary tenant, got %q", second.Company)
	}
}

func TestImportCountsMissingFieldsWithoutCalling(t *testing.T) {
	mock := &workerServiceMock{}
	imp := NewImporter(mock, zap.NewNop())

	rows := [][]string{
		{"Colaborador", "DNI", "Contrato", "Departamento"},
		{"Ana Torres", "", "Planilla", "Bienestar"},
	}

	result, err := imp.Import(context.Background(), rows)
	if err != nil {
		t.Fatalf("unexpected import error: %v", err)
	}
	if result.Created != 0 || result.Failed != 1 {
		t.Fatalf("expected 0 created / 1 failed, got %+v", result)
	}
	if len(mock.created) != 0 {
		t.Fatalf("row with missing document must not reach the service, got %d calls", len(mock.created))
	}
	if len(result.RowErrors) != 1 || result.RowErrors[0].Row != 2 {
		t.Fatalf("expected row 2 recorded, got %+v", result.RowErrors)
	}
	if result.RowErrors[0].Reason != "falta nombre o documento" {
		t.Errorf("unexpected reason: %q", result.RowErrors[0].Reason)
	}
}

func TestImportInvalidDocumentFailsRow(t *testing.T) {
	mock := &workerServiceMock{}
	imp := NewImporter(mock, zap.NewNop())

	rows := [][]string{
		{"Nombre", "Documento"},
		{"Ana Torres", "1234"},
		{"Luis Rojas", "87654321"},
	}

	result, err := imp.Import(context.Background(), rows)
	if err != nil {
		t.Fatalf("unexpected import error: %v", err)
	}
	if result.Created != 1 || result.Failed != 1 {
		t.Fatalf("expected 1 created / 1 failed, got %+v", result)
	}
}

func TestImportServerFailureDoesNotAbortBatch(t *testing.T) {
	mock := &workerServiceMock{createFailOn: "11111111"}
	imp := NewImporter(mock, zap.NewNop())

	rows := [][]string{
		{"Nombre", "Documento"},
		{"Uno", "11111111"},
		{"Dos", "22222222"},
	}

	result, err := imp.Import(context.Background(), rows)
	if err != nil {
		t.Fatalf("per-row failure must not abort: %v", err)
	}
	if result.Created != 1 || result.Failed != 1 {
		t.Fatalf("expected 1 created / 1 failed, got %+v", result)
	}
}

func TestImportRequiresNameAndDocumentColumns(t *testing.T) {
	mock := &workerServiceMock{}
	imp := NewImporter(mock, zap.NewNop())

	rows := [][]string{
		{"Nombre", "Área"},
		{"Ana Torres", "Bienestar"},
	}

	if _, err := imp.Import(context.Background(), rows); err == nil {
		t.Fatal("expected abort for missing document column")
	}
	if len(mock.created) != 0 {
		t.Fatal("abort must happen before any service call")
	}
}
