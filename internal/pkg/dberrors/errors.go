package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the warehouse loader distinguishes
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeUndefinedTable      = "42P01"
	codeInvalidSchemaName   = "3F000"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint. An empty constraintName matches any unique violation.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation &&
		(constraintName == "" || pgErr.ConstraintName == constraintName)
}

// IsForeignKeyError reports a row that references a missing parent row
func IsForeignKeyError(err error) bool {
	return hasCode(err, codeForeignKeyViolation)
}

// IsMissingRelationError reports a table or schema that does not exist,
// which usually means the migrations have not been applied.
func IsMissingRelationError(err error) bool {
	return hasCode(err, codeUndefinedTable) || hasCode(err, codeInvalidSchemaName)
}

// Constraint returns the name of the violated constraint, if any
func Constraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
