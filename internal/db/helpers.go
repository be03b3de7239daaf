package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain/models"
)

// Querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// NullIfEmpty helps store optional strings without wiping existing data.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// WithConn checks one connection out of pool for the duration of fn and always returns it,
// whether fn succeeds, fails or the context expires.
func WithConn(ctx context.Context, pool *sql.DB, fn func(conn *sql.Conn) error) error {
	if pool == nil {
		return errors.New("database not connected")
	}
	conn, err := pool.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()
	return fn(conn)
}

// ResultSet is one tabular result of a query or stored procedure call.
type ResultSet struct {
	Columns []string
	Rows    [][]any
}

// Records converts every row into an ordered record keyed by the raw column name.
func (rs ResultSet) Records() []models.Record {
	out := make([]models.Record, 0, len(rs.Rows))
	for _, row := range rs.Rows {
		out = append(out, models.NewRecord(rs.Columns, row))
	}
	return out
}

// First returns the first row as a record.
func (rs ResultSet) First() (models.Record, bool) {
	if len(rs.Rows) == 0 {
		return models.Record{}, false
	}
	return models.NewRecord(rs.Columns, rs.Rows[0]), true
}

// Int64 reads column (case-insensitive) of the first row; 0 when absent.
func (rs ResultSet) Int64(column string) int64 {
	rec, ok := rs.First()
	if !ok {
		return 0
	}
	return rec.Int64(column)
}

// QuerySets runs query and drains every result set it produces. Sets without columns
// (the status packet MySQL appends to CALL) are skipped.
func QuerySets(ctx context.Context, q Querier, query string, args ...any) ([]ResultSet, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sets []ResultSet
	for {
		cols, err := rows.Columns()
		if err != nil {
			return nil, err
		}
		set := ResultSet{Columns: cols}
		for rows.Next() {
			vals := make([]any, len(cols))
			ptrs := make([]any, len(cols))
			for i := range vals {
				ptrs[i] = &vals[i]
			}
			if err := rows.Scan(ptrs...); err != nil {
				return nil, err
			}
			for i, v := range vals {
				if b, ok := v.([]byte); ok {
					vals[i] = string(b)
				}
			}
			set.Rows = append(set.Rows, vals)
		}
		if err := rows.Err(); err != nil {
			return nil, err
		}
		if len(cols) > 0 {
			sets = append(sets, set)
		}
		if !rows.NextResultSet() {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sets, nil
}

// Call runs a stored procedure with positional arguments and returns its result sets.
func Call(ctx context.Context, q Querier, procedure string, args ...any) ([]ResultSet, error) {
	return QuerySets(ctx, q, CallStatement(procedure, len(args)), args...)
}

// CallStatement renders "CALL name(?, ?, ...)".
func CallStatement(procedure string, argc int) string {
	marks := make([]string, argc)
	for i := range marks {
		marks[i] = "?"
	}
	return "CALL " + procedure + "(" + strings.Join(marks, ", ") + ")"
}

// SetAt returns sets[i] or an empty set.
func SetAt(sets []ResultSet, i int) ResultSet {
	if i < 0 || i >= len(sets) {
		return ResultSet{}
	}
	return sets[i]
}
