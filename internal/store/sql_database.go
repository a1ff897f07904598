package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB is a database handle bound to one SQL dialect: its squirrel statement
// builder uses the dialect's placeholder format and errorClassificator
// understands the dialect's driver errors.
type DB struct {
	*sql.DB
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	dialect            string
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// classify maps err through the dialect classifier. Handles built in tests
// without a classifier treat everything as [ClassOther].
func (db *DB) classify(err error) ErrorClass {
	if db.errorClassificator == nil {
		return ClassOther
	}
	return db.errorClassificator.Classify(err)
}
