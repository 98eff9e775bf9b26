package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgCodeForeignKeyViolation = "23503"
	pgCodeUniqueViolation     = "23505"
)

func pgError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}
	return nil
}

// IsUniqueViolationError reports a duplicate name in the catalog tables
func IsUniqueViolationError(err error) bool {
	pgErr := pgError(err)
	return pgErr != nil && pgErr.Code == pgCodeUniqueViolation
}

// IsForeignKeyViolationError reports an entry pointing at a missing session
// or catalog row
func IsForeignKeyViolationError(err error) bool {
	pgErr := pgError(err)
	return pgErr != nil && pgErr.Code == pgCodeForeignKeyViolation
}

// PgConstraintName returns the violated constraint, empty for any other error.
func PgConstraintName(err error) string {
	if pgErr := pgError(err); pgErr != nil {
		return pgErr.ConstraintName
	}
	return ""
}
