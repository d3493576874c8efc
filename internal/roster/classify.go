package roster

import (
	"strings"

	"github.com/spec-kit/hr-panel-service/internal/domain"
)

// areaRule pairs a keyword with the area it resolves to. The slice order is
// the match priority; the first matching rule wins. The "bienestar" before
// "remunera" ordering reproduces the historical behavior of the free-text
// inference; treat reordering as a behavior change.
type areaRule struct {
	keyword string
	areaID  string
}

var areaRules = []areaRule{
	{"bienestar", "3"},
	{"remunera", "4"},
	{"opera", "1"},
	{"admin", "2"},
	{"comercial", "5"},
	{"venta", "5"},
}

// defaultAreaID is used when no keyword matches and the text is not numeric.
const defaultAreaID = "1"

// ClassifyArea resolves free text to an area id: keyword rules first, then a
// purely numeric value is taken as an id when it belongs to the known area
// set, then the default area.
func ClassifyArea(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return defaultAreaID
	}
	for _, rule := range areaRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.areaID
		}
	}
	if isDigits(lower) {
		if _, ok := domain.AreaByID(lower); ok {
			return lower
		}
	}
	return defaultAreaID
}

// ClassifyCompany resolves free text to one of the two fixed tenants.
func ClassifyCompany(text string) domain.Company {
	if strings.Contains(strings.ToLower(text), strings.ToLower(string(domain.CompanySecondary))) {
		return domain.CompanySecondary
	}
	return domain.CompanyPrimary
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
