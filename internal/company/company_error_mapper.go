package company

import (
	"context"
	"errors"

	companyerrors "go-recruit/internal/company/errors"
	"go-recruit/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return companyerrors.ErrCompanyNotFound
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return apperror.Wrap(err,
			apperror.CodeServiceUnavailable,
			"The data store is temporarily unavailable",
			apperror.ErrStoreUnavailable.HTTPStatus,
		)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return apperror.ErrConflict
	}

	return err
}
