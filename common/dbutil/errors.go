package dbutil

import (
	"github.com/Aidin1998/rosterhub/pkg/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// WrapError classifies a gorm error.
func WrapError(err error) error {
	var pgErr *pgconn.PgError

	if err == nil {
		return nil
	} else if _, ok := err.(*errors.Error); ok {
		return err
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.NotFound.Wrap(err)
	} else if errors.As(err, &pgErr) {
		return errors.Internal.
			Explain("postgres error %s on %s", pgErr.Code, pgErr.ConstraintName).
			Wrap(err)
	}

	return errors.Internal.Wrap(err)
}
