package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClass is the result of [ErrorClassificator.Classify]: the kind of
// constraint a failed statement tripped over, if any.
type ErrorClass int

const (
	// ClassOther covers every error that is not a known constraint violation.
	ClassOther ErrorClass = iota

	// ClassUniqueViolation is a duplicate key in a UNIQUE or PRIMARY KEY index.
	ClassUniqueViolation

	// ClassForeignKeyViolation is a reference to a row that does not exist.
	ClassForeignKeyViolation
)

// ErrorClassificator maps driver-specific errors onto [ErrorClass] values so
// repositories stay independent of the SQL dialect in use.
type ErrorClassificator interface {
	Classify(err error) ErrorClass
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. If err is nil or is not
// a PostgreSQL driver error, [ClassOther] is returned.
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClass {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return ClassOther
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return ClassUniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ClassForeignKeyViolation
	}

	return ClassOther
}

// SQLiteErrorClassifier implements [ErrorClassificator] for mattn/go-sqlite3
// using the extended result codes.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClass {
	var sqliteErr sqlite3.Error
	if err == nil || !errors.As(err, &sqliteErr) {
		return ClassOther
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return ClassUniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ClassForeignKeyViolation
	}

	return ClassOther
}
