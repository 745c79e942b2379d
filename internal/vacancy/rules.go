package vacancy

import (
	"strings"
	"time"

	"go-recruit/internal/company"
	"go-recruit/internal/shared/apperror"
)

// Pure authorization and validation rules for the vacancy lifecycle.
// These take loaded entities and a caller identity; hitting the store is
// the service's job.

// CanCreate: only the admin of the target company may open a vacancy there.
func CanCreate(comp *company.Company, callerID string) bool {
	if comp == nil {
		return false
	}
	return comp.AdminUserID.String() == callerID
}

// CanMutate: the company admin or the original creator may update/delete.
func CanMutate(v *Vacancy, comp *company.Company, callerID string) bool {
	if v == nil || comp == nil {
		return false
	}
	if comp.AdminUserID.String() == callerID {
		return true
	}
	return v.CreatedBy.String() == callerID
}

// VacancyFields is the merged record the invariants are checked against.
type VacancyFields struct {
	Title               string
	Description         string
	Location            string
	Quantity            int
	SalaryMin           float64
	SalaryMax           float64
	StartDate           time.Time
	ApplicationDeadline time.Time
}

// ValidateVacancyFields returns every violated invariant, not just the
// first, so the caller can fix the whole payload in one round trip.
func ValidateVacancyFields(f VacancyFields) []apperror.FieldViolation {
	var violations []apperror.FieldViolation

	if strings.TrimSpace(f.Title) == "" {
		violations = append(violations, apperror.FieldViolation{
			Field: "title", Reason: "title must not be empty",
		})
	}
	if strings.TrimSpace(f.Description) == "" {
		violations = append(violations, apperror.FieldViolation{
			Field: "description", Reason: "description must not be empty",
		})
	}
	if strings.TrimSpace(f.Location) == "" {
		violations = append(violations, apperror.FieldViolation{
			Field: "location", Reason: "location must not be empty",
		})
	}
	if f.Quantity < 1 {
		violations = append(violations, apperror.FieldViolation{
			Field: "quantity", Reason: "quantity must be at least 1",
		})
	}
	if f.SalaryMin < 0 {
		violations = append(violations, apperror.FieldViolation{
			Field: "salary_min", Reason: "salary_min must not be negative",
		})
	}
	if f.SalaryMax < 0 {
		violations = append(violations, apperror.FieldViolation{
			Field: "salary_max", Reason: "salary_max must not be negative",
		})
	}
	if f.SalaryMin > f.SalaryMax {
		violations = append(violations, apperror.FieldViolation{
			Field: "salary_min", Reason: "salary_min must not exceed salary_max",
		})
	}
	if f.StartDate.IsZero() {
		violations = append(violations, apperror.FieldViolation{
			Field: "start_date", Reason: "start_date is required",
		})
	}
	if f.ApplicationDeadline.IsZero() {
		violations = append(violations, apperror.FieldViolation{
			Field: "application_deadline", Reason: "application_deadline is required",
		})
	}
	if !f.StartDate.IsZero() && !f.ApplicationDeadline.IsZero() && f.ApplicationDeadline.After(f.StartDate) {
		violations = append(violations, apperror.FieldViolation{
			Field: "application_deadline", Reason: "application_deadline must not be after start_date",
		})
	}

	return violations
}
