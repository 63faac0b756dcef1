package dashboarderrors

import (
	"go-fieldtrack/internal/shared/apperror"
	"net/http"
)

var ErrManagerOnly = apperror.New(
	apperror.CodeForbidden,
	"Only managers can view team stats",
	http.StatusForbidden,
)
