package domain

import (
	"strings"
	"time"
)

// WorkerRole enumerates roster roles.
type WorkerRole string

const (
	RoleWorker WorkerRole = "Colaborador"
	RoleAdmin  WorkerRole = "Administrador"
)

// EmploymentStatus enumerates contract states.
type EmploymentStatus string

const (
	EmploymentActive     EmploymentStatus = "Activo"
	EmploymentInactive   EmploymentStatus = "Inactivo"
	EmploymentNoContract EmploymentStatus = "SinContrato"
)

// Company enumerates the two fixed tenants.
type Company string

const (
	CompanyPrimary   Company = "SREP"
	CompanySecondary Company = "Maxfer"
)

// EmploymentFromCode maps the numeric wire code to the semantic state.
// Unknown codes fall back to Activo.
func EmploymentFromCode(code int) EmploymentStatus {
	switch code {
	case 2:
		return EmploymentInactive
	case 3:
		return EmploymentNoContract
	default:
		return EmploymentActive
	}
}

// RoleFromText infers the role from free text; anything carrying the admin
// keyword is an administrator, everything else is a base worker.
func RoleFromText(text string) WorkerRole {
	if containsFold(text, "admin") {
		return RoleAdmin
	}
	return RoleWorker
}

// Worker is a roster entry.
type Worker struct {
	ID           string
	FullName     string
	Document     string
	Role         WorkerRole
	Employment   EmploymentStatus
	Company      Company
	AreaID       string
	AreaName     string
	RegisteredAt time.Time
}

// ValidDocument reports whether s is exactly 8 digits.
func ValidDocument(s string) bool {
	if len(s) != 8 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

// WorkerInput is the payload for roster creation.
type WorkerInput struct {
	FullName string
	Document string
	Role     WorkerRole
	Company  Company
	AreaID   string
}
