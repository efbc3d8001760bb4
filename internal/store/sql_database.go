package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/migrations"
	"github.com/MKhiriev/scholarship-portal/models"
	sq "github.com/Masterminds/squirrel"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DB is a relational store handle shared by all SQL repositories.
// builder carries the placeholder format of the dialect and classify maps
// driver errors onto the package sentinels.
type DB struct {
	*sql.DB
	builder  sq.StatementBuilderType
	dialect  string
	classify func(error) error
	logger   *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Close closes the connection pool.
func (db *DB) Close(_ context.Context) error {
	if err := db.DB.Close(); err != nil {
		return fmt.Errorf("error closing database: %w", err)
	}

	db.logger.Info().Str("func", "*DB.Close").Str("dialect", db.dialect).Msg("database closed")
	return nil
}

func (db *DB) dbError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if db.classify != nil {
		return db.classify(err)
	}

	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

// selectAll runs q and scans every row. The result is never nil.
func selectAll[T any](ctx context.Context, db *DB, q sq.SelectBuilder, scan func(rowScanner) (T, error)) ([]T, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, db.dbError(err))
	}
	defer rows.Close()

	results := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, db.dbError(err))
	}

	return results, nil
}

// selectOne runs q limited to one row. No row yields ErrNotFound.
func selectOne[T any](ctx context.Context, db *DB, q sq.SelectBuilder, scan func(rowScanner) (T, error)) (T, error) {
	var zero T

	query, args, err := q.Limit(1).ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scan(db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, db.dbError(err)
		}
		return zero, fmt.Errorf("%w: %w", ErrExecutingQuery, db.dbError(err))
	}

	return item, nil
}

// execStatement runs a DML statement and returns the affected row count.
func execStatement(ctx context.Context, db *DB, q sq.Sqlizer) (int64, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, db.dbError(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

// insertRow inserts values under a freshly generated id. columns excludes
// the id column.
func insertRow(ctx context.Context, db *DB, table string, columns []string, values []any) (models.InsertResult, error) {
	id := primitive.NewObjectID()

	q := db.builder.Insert(table).
		Columns(append([]string{"id"}, columns...)...).
		Values(append([]any{id.Hex()}, values...)...)

	if _, err := execStatement(ctx, db, q); err != nil {
		return models.InsertResult{}, err
	}

	return models.NewInsertResult(id), nil
}

func updateRow(ctx context.Context, db *DB, table string, id primitive.ObjectID, set map[string]any) (models.UpdateResult, error) {
	q := db.builder.Update(table).
		SetMap(set).
		Where(sq.Eq{"id": id.Hex()})

	affected, err := execStatement(ctx, db, q)
	if err != nil {
		return models.UpdateResult{}, err
	}

	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  affected,
		ModifiedCount: affected,
	}, nil
}

func deleteRow(ctx context.Context, db *DB, table string, id primitive.ObjectID) (models.DeleteResult, error) {
	q := db.builder.Delete(table).
		Where(sq.Eq{"id": id.Hex()})

	affected, err := execStatement(ctx, db, q)
	if err != nil {
		return models.DeleteResult{}, err
	}

	return models.DeleteResult{Acknowledged: true, DeletedCount: affected}, nil
}

// byEmail narrows q to rows owned by filter.UserEmail.
func byEmail(q sq.SelectBuilder, filter models.ListFilter) sq.SelectBuilder {
	if filter.IsEmpty() {
		return q
	}

	return q.Where(sq.Eq{"user_email": filter.UserEmail})
}
