package checkinerrors

import (
	"go-fieldtrack/internal/shared/apperror"
	"net/http"
)

var (
	ErrCheckinEmployeeOnly = apperror.New(
		apperror.CodeForbidden,
		"Only employees can perform check-ins",
		http.StatusForbidden,
	)

	ErrCheckoutEmployeeOnly = apperror.New(
		apperror.CodeForbidden,
		"Only employees can perform check-outs",
		http.StatusForbidden,
	)

	ErrLocationRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Client ID and location are required",
		http.StatusBadRequest,
	)

	ErrInvalidClientID = apperror.New(
		apperror.CodeInvalidInput,
		"Client ID is invalid",
		http.StatusBadRequest,
	)

	ErrCoordinatesOutOfRange = apperror.New(
		apperror.CodeInvalidInput,
		"Latitude must be within [-90, 90] and longitude within [-180, 180]",
		http.StatusBadRequest,
	)

	ErrNotAssigned = apperror.New(
		apperror.CodeForbidden,
		"You are not assigned to this client",
		http.StatusForbidden,
	)

	ErrClientNotFound = apperror.New(
		apperror.CodeNotFound,
		"Client not found",
		http.StatusNotFound,
	)

	ErrClientCoordinatesMissing = apperror.New(
		apperror.CodeInvalidInput,
		"Client location coordinates are missing",
		http.StatusBadRequest,
	)

	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeConflict,
		"You already have an active check-in. Please checkout first.",
		http.StatusConflict,
	)

	ErrNoActiveCheckin = apperror.New(
		apperror.CodeNotFound,
		"No active check-in found",
		http.StatusNotFound,
	)

	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Dates must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)
)
