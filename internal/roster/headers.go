package roster

import "strings"

// Canonical field names for roster columns that may appear under several
// spreadsheet header spellings.
const (
	FieldName     = "name"
	FieldDocument = "document"
	FieldContract = "contract"
	FieldCompany  = "company"
	FieldArea     = "area"
)

// headerAliases maps canonical field → accepted normalized spellings.
// Adding a synonym is a declarative change here.
var headerAliases = map[string][]string{
	FieldName:     {"nombre", "colaborador", "nombre_completo", "nombres"},
	FieldDocument: {"documento", "dni", "nro_documento", "numero_de_documento"},
	FieldContract: {"contrato", "tipo_contrato", "estado"},
	FieldCompany:  {"empresa", "compania", "razon_social"},
	FieldArea:     {"area", "departamento", "area_asignada"},
}

// Spanish diacritics are the only ones HR spreadsheets carry.
var diacritics = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ü", "u", "Ñ", "n",
)

// NormalizeHeader lowers, trims, strips diacritics and collapses whitespace
// runs into underscores.
func NormalizeHeader(header string) string {
	header = diacritics.Replace(strings.TrimSpace(header))
	header = strings.ToLower(header)
	return strings.Join(strings.Fields(header), "_")
}

// ResolveColumns maps canonical fields to column indexes for a header row.
// Fields with no matching header are absent from the result.
func ResolveColumns(header []string) map[string]int {
	normalized := make([]string, len(header))
	for i, cell := range header {
		normalized[i] = NormalizeHeader(cell)
	}

	columns := make(map[string]int)
	for field, aliases := range headerAliases {
		for _, alias := range aliases {
			if idx := indexOf(normalized, alias); idx >= 0 {
				columns[field] = idx
				break
			}
		}
	}
	return columns
}

func indexOf(cells []string, want string) int {
	for i, cell := range cells {
		if cell == want {
			return i
		}
	}
	return -1
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
