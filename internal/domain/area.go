package domain

// Area is a department referenced by tickets and roster entries.
type Area struct {
	ID   string
	Name string
}

// DefaultAreaName is the display fallback when no area can be resolved.
const DefaultAreaName = "Sin área"

// DefaultWorkerName is the display fallback when no worker can be resolved.
const DefaultWorkerName = "Desconocido"

// Areas is the closed set of departments known to the panel.
var Areas = []Area{
	{ID: "1", Name: "Operaciones"},
	{ID: "2", Name: "Administración"},
	{ID: "3", Name: "Bienestar"},
	{ID: "4", Name: "Remuneraciones"},
	{ID: "5", Name: "Comercial"},
}

// AreaByID resolves an area from the closed set.
func AreaByID(id string) (Area, bool) {
	for _, area := range Areas {
		if area.ID == id {
			return area, true
		}
	}
	return Area{}, false
}
