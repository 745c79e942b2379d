package vacancy

import (
	"context"
	"errors"

	vacancyerrors "go-recruit/internal/vacancy/errors"
	"go-recruit/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return vacancyerrors.ErrVacancyNotFound
	}

	if errors.Is(err, ErrStaleVersion) {
		return vacancyerrors.ErrVacancyConflict
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return apperror.Wrap(err,
			apperror.CodeServiceUnavailable,
			"The data store is temporarily unavailable",
			apperror.ErrStoreUnavailable.HTTPStatus,
		)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			if pgErr.ConstraintName == "uq_vacancy_reference" {
				return vacancyerrors.ErrVacancyConflict
			}
			return apperror.ErrConflict
		}
		// Class 08 - connection exceptions are transient.
		if len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08" {
			return apperror.Wrap(err,
				apperror.CodeServiceUnavailable,
				"The data store is temporarily unavailable",
				apperror.ErrStoreUnavailable.HTTPStatus,
			)
		}
	}

	return err
}
