package reporterrors

import (
	"go-fieldtrack/internal/shared/apperror"
	"net/http"
)

var (
	ErrManagerOnly = apperror.New(
		apperror.CodeForbidden,
		"Only managers can view team reports",
		http.StatusForbidden,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Date must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)

	ErrExportFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate report export",
		http.StatusInternalServerError,
	)
)
