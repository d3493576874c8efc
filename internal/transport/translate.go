package transport

import (
	"encoding/json"
	"strings"
)

// translations maps known backend validation phrases to display text.
// Exact match wins, then the first substring match; unknown messages pass
// through unchanged.
var translations = map[string]string{
	"The given data was invalid.":          "Los datos enviados no son válidos",
	"The document has already been taken.": "El documento ya se encuentra registrado",
	"The email has already been taken.":    "El correo ya se encuentra registrado",
	"The password is incorrect.":           "La contraseña es incorrecta",
	"The document must be 8 digits.":       "El documento debe tener 8 dígitos",
	"User not found.":                      "Usuario no encontrado",
	"Record not found.":                    "Registro no encontrado",
	"Server Error":                         "Error interno del servidor",
	"Too Many Attempts.":                   "Demasiados intentos, espera un momento",
}

// substring fallbacks, checked in declaration order.
var translationContains = []struct {
	fragment string
	display  string
}{
	{"already been taken", "El valor ya se encuentra registrado"},
	{"is required", "Hay campos obligatorios sin completar"},
	{"must be 8 digits", "El documento debe tener 8 dígitos"},
	{"invalid credentials", "Credenciales inválidas"},
}

// Translate converts a single backend message to its display form.
func Translate(message string) string {
	message = strings.TrimSpace(message)
	if message == "" {
		return ""
	}
	if display, ok := translations[message]; ok {
		return display
	}
	lower := strings.ToLower(message)
	for _, rule := range translationContains {
		if strings.Contains(lower, rule.fragment) {
			return rule.display
		}
	}
	return message
}

// translateWireMessage renders the envelope message field, which arrives as a
// string, an array of strings, or is absent. Array entries are translated
// individually and joined.
func translateWireMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return Translate(single)
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		parts := make([]string, 0, len(many))
		for _, m := range many {
			if t := Translate(m); t != "" {
				parts = append(parts, t)
			}
		}
		return strings.Join(parts, "; ")
	}
	return ""
}
