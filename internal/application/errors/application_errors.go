package applicationerrors

import (
	"net/http"

	"go-recruit/internal/shared/apperror"
)

var (
	ErrApplicationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Application not found",
		http.StatusNotFound,
	)
	ErrVacancyNotOpen = apperror.New(
		apperror.CodeInvalidState,
		"Vacancy is not open for applications",
		http.StatusConflict,
	)
	ErrDeadlinePassed = apperror.New(
		apperror.CodeInvalidState,
		"Application deadline has passed",
		http.StatusConflict,
	)
	ErrAlreadyApplied = apperror.New(
		apperror.CodeConflict,
		"You have already applied to this vacancy",
		http.StatusConflict,
	)
	ErrNotApplicationOwner = apperror.New(
		apperror.CodeForbidden,
		"You may only manage your own applications",
		http.StatusForbidden,
	)
	ErrNotVacancyManager = apperror.New(
		apperror.CodeForbidden,
		"Only the vacancy owner may view its applications",
		http.StatusForbidden,
	)
)
