package autherrors

import (
	"go-fieldtrack/internal/shared/apperror"
	"net/http"
)

var (
	ErrCredentialsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Email and password required",
		http.StatusBadRequest,
	)

	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid credentials",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid or expired token",
		http.StatusUnauthorized,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid user ID",
		http.StatusUnauthorized,
	)

	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Token generation failed",
		http.StatusInternalServerError,
	)
)
