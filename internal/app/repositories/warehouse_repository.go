package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/yigit/student360/internal/db"
	"github.com/yigit/student360/internal/export"
	"github.com/yigit/student360/internal/pkg/dberrors"
)

// WarehouseRepository bulk loads exported tables into PostgreSQL
type WarehouseRepository struct {
	db     *db.PostgresDB
	logger zerolog.Logger
}

// NewWarehouseRepository creates a new warehouse repository
func NewWarehouseRepository(database *db.PostgresDB, logger zerolog.Logger) *WarehouseRepository {
	return &WarehouseRepository{
		db:     database,
		logger: logger,
	}
}

// Load replaces the contents of every table in a single transaction and
// returns the copied row count per qualified table name.
func (r *WarehouseRepository) Load(ctx context.Context, tables []export.Table) (map[string]int64, error) {
	counts := make(map[string]int64, len(tables))

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for _, t := range tables {
			ident := tableIdentifier(t)
			if _, err := tx.Exec(ctx, "TRUNCATE TABLE "+ident.Sanitize()); err != nil {
				return loadError("truncating", t, err)
			}

			n, err := tx.CopyFrom(ctx, ident, t.Header(), copySource(t))
			if err != nil {
				return loadError("copying", t, err)
			}
			counts[qualifiedName(t)] = n
			r.logger.Debug().Str("table", qualifiedName(t)).Int64("rows", n).Msg("Table loaded")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info().Int("tables", len(tables)).Msg("Warehouse load complete")
	return counts, nil
}

// loadError names the table and adds a hint for the failures an operator can fix
func loadError(op string, t export.Table, err error) error {
	switch {
	case dberrors.IsMissingRelationError(err):
		return fmt.Errorf("error %s %s (run the migrations first): %w", op, qualifiedName(t), err)
	case dberrors.IsDuplicateConstraintError(err, ""):
		return fmt.Errorf("error %s %s: duplicate key violates %s: %w", op, qualifiedName(t), dberrors.Constraint(err), err)
	case dberrors.IsForeignKeyError(err):
		return fmt.Errorf("error %s %s: missing parent row for %s: %w", op, qualifiedName(t), dberrors.Constraint(err), err)
	}
	return fmt.Errorf("error %s %s: %w", op, qualifiedName(t), err)
}

func tableIdentifier(t export.Table) pgx.Identifier {
	return pgx.Identifier{t.Schema(), t.Name}
}

func qualifiedName(t export.Table) string {
	return t.Schema() + "." + t.Name
}

// copySource converts a table's rows to the values pgx expects for each column
func copySource(t export.Table) pgx.CopyFromSource {
	return pgx.CopyFromSlice(len(t.Rows), func(i int) ([]any, error) {
		return warehouseRow(t, i)
	})
}

func warehouseRow(t export.Table, i int) ([]any, error) {
	row := t.Rows[i]
	if len(row) != len(t.Columns) {
		return nil, fmt.Errorf("%s row %d has %d values, want %d", qualifiedName(t), i, len(row), len(t.Columns))
	}
	out := make([]any, len(row))
	for j, col := range t.Columns {
		out[j] = export.WarehouseValue(col, row[j])
	}
	return out, nil
}
