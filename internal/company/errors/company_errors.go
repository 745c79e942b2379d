package companyerrors

import (
	"net/http"

	"go-recruit/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)
	ErrNotCompanyAdmin = apperror.New(
		apperror.CodeForbidden,
		"Only the company admin may perform this action",
		http.StatusForbidden,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
)
