package vacancy_test

import (
	"testing"
	"time"

	"go-recruit/internal/company"
	"go-recruit/internal/vacancy"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validFields() vacancy.VacancyFields {
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	return vacancy.VacancyFields{
		Title:               "Backend Engineer",
		Description:         "Builds and runs our services",
		Location:            "Jakarta",
		Quantity:            2,
		SalaryMin:           1000,
		SalaryMax:           2000,
		StartDate:           start,
		ApplicationDeadline: start.AddDate(0, 0, -14),
	}
}

func TestCanCreate(t *testing.T) {
	adminID := uuid.New()
	comp := &company.Company{ID: uuid.New(), Name: "Acme", AdminUserID: adminID}

	t.Run("Admin Allowed", func(t *testing.T) {
		assert.True(t, vacancy.CanCreate(comp, adminID.String()))
	})

	t.Run("Non Admin Denied", func(t *testing.T) {
		assert.False(t, vacancy.CanCreate(comp, uuid.NewString()))
	})

	t.Run("Nil Company Denied", func(t *testing.T) {
		assert.False(t, vacancy.CanCreate(nil, adminID.String()))
	})
}

func TestCanMutate(t *testing.T) {
	adminID := uuid.New()
	creatorID := uuid.New()
	comp := &company.Company{ID: uuid.New(), Name: "Acme", AdminUserID: adminID}
	v := &vacancy.Vacancy{ID: uuid.New(), CompanyID: comp.ID, CreatedBy: creatorID}

	t.Run("Admin Allowed", func(t *testing.T) {
		assert.True(t, vacancy.CanMutate(v, comp, adminID.String()))
	})

	t.Run("Creator Allowed", func(t *testing.T) {
		assert.True(t, vacancy.CanMutate(v, comp, creatorID.String()))
	})

	t.Run("Stranger Denied", func(t *testing.T) {
		assert.False(t, vacancy.CanMutate(v, comp, uuid.NewString()))
	})

	t.Run("Nil Vacancy Denied", func(t *testing.T) {
		assert.False(t, vacancy.CanMutate(nil, comp, adminID.String()))
	})
}

func TestValidateVacancyFields(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		violations := vacancy.ValidateVacancyFields(validFields())
		assert.Empty(t, violations)
	})

	t.Run("Collects Every Violation", func(t *testing.T) {
		f := validFields()
		f.Title = "   "
		f.Quantity = 0
		f.SalaryMin = -5

		violations := vacancy.ValidateVacancyFields(f)

		fields := make([]string, 0, len(violations))
		for _, v := range violations {
			fields = append(fields, v.Field)
		}
		assert.Contains(t, fields, "title")
		assert.Contains(t, fields, "quantity")
		assert.Contains(t, fields, "salary_min")
		assert.Len(t, violations, 3)
	})

	t.Run("Salary Min Above Max", func(t *testing.T) {
		f := validFields()
		f.SalaryMin = 3000

		violations := vacancy.ValidateVacancyFields(f)
		assert.Len(t, violations, 1)
		assert.Equal(t, "salary_min", violations[0].Field)
	})

	t.Run("Deadline After Start Date", func(t *testing.T) {
		f := validFields()
		f.ApplicationDeadline = f.StartDate.AddDate(0, 0, 7)

		violations := vacancy.ValidateVacancyFields(f)
		assert.Len(t, violations, 1)
		assert.Equal(t, "application_deadline", violations[0].Field)
	})

	t.Run("Deadline Equal To Start Date Allowed", func(t *testing.T) {
		f := validFields()
		f.ApplicationDeadline = f.StartDate

		assert.Empty(t, vacancy.ValidateVacancyFields(f))
	})

	t.Run("Missing Dates", func(t *testing.T) {
		f := validFields()
		f.StartDate = time.Time{}
		f.ApplicationDeadline = time.Time{}

		violations := vacancy.ValidateVacancyFields(f)
		assert.Len(t, violations, 2)
	})
}
