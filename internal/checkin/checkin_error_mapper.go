package checkin

import (
	"errors"
	"strings"

	checkinerrors "go-fieldtrack/internal/checkin/errors"
	"go-fieldtrack/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

const constraintOneActive = "uq_checkins_one_active"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == constraintOneActive {
			return checkinerrors.ErrAlreadyCheckedIn
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, constraintOneActive) {
		return checkinerrors.ErrAlreadyCheckedIn
	}

	return apperror.Wrap(err, apperror.ErrInternal)
}
