package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// postgres sqlstate codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgCodeUniqueViolation     = "23505"
	pgCodeForeignKeyViolation = "23503"
)

// IsUniqueViolationError reports a duplicate key, e.g. creating a client whose id is taken.
func IsUniqueViolationError(err error) bool {
	return hasPgCode(err, pgCodeUniqueViolation)
}

// IsForeignKeyViolationError reports a missing parent row, e.g. a measurement
// or goal referencing a client that does not exist.
func IsForeignKeyViolationError(err error) bool {
	return hasPgCode(err, pgCodeForeignKeyViolation)
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
