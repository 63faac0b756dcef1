package clienterrors

import (
	"go-fieldtrack/internal/shared/apperror"
	"net/http"
)

var (
	ErrClientNotFound = apperror.New(
		apperror.CodeNotFound,
		"Client not found",
		http.StatusNotFound,
	)

	ErrEmployeeOnly = apperror.New(
		apperror.CodeForbidden,
		"Only employees have assigned clients",
		http.StatusForbidden,
	)
)
