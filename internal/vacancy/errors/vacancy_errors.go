package vacancyerrors

import (
	"net/http"

	"go-recruit/internal/shared/apperror"
)

var (
	ErrVacancyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Vacancy not found",
		http.StatusNotFound,
	)
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)
	ErrNotAuthorized = apperror.New(
		apperror.CodeForbidden,
		"You are not allowed to manage this vacancy",
		http.StatusForbidden,
	)
	ErrVacancyConflict = apperror.New(
		apperror.CodeConflict,
		"Vacancy was modified concurrently, please re-fetch and retry",
		http.StatusConflict,
	)
	ErrInvalidVacancyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid vacancy ID",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid vacancy status",
		http.StatusBadRequest,
	)
)
