package apperror

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// salary_min -> Salary Min
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapBindingError translates gin binding failures into an AppError carrying
// every violated tag, keeping transport validation consistent with the
// domain-level violation lists.
func MapBindingError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		violations := make([]FieldViolation, 0, len(errs))
		for _, e := range errs {
			field := e.Field()
			reason := formatFieldName(field) + " is invalid"
			if e.Tag() == "required" {
				reason = formatFieldName(field) + " is required"
			}
			violations = append(violations, FieldViolation{Field: field, Reason: reason})
		}
		return &AppError{
			Code:       CodeInvalidInput,
			Message:    "One or more fields are invalid",
			HTTPStatus: http.StatusBadRequest,
			Details:    violations,
		}
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
