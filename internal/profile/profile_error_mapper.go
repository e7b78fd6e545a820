package profile

import (
	"errors"

	profileerrors "talentflow/internal/profile/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return profileerrors.ErrProfileNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return profileerrors.ErrProfileAlreadyExists
		case "23503":
			return profileerrors.ErrInvalidReference
		}
	}

	return err
}
