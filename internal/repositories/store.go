package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	intdb "github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/db"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/metrics"
)

var errNoPool = errors.New("database not connected")

// mysqlDuplicateEntry is ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

// call runs a stored procedure and maps failures to domain errors.
func call(ctx context.Context, q intdb.Querier, procedure string, args ...any) ([]intdb.ResultSet, error) {
	sets, err := intdb.Call(ctx, q, procedure, args...)
	if err != nil {
		return nil, storeError(ctx, procedure, err)
	}
	metrics.ObserveStore(procedure, metrics.OutcomeOK)
	return sets, nil
}

// exec runs a plain statement; op labels metrics and errors.
func exec(ctx context.Context, q intdb.Querier, op, query string, args ...any) (sql.Result, error) {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, storeError(ctx, op, err)
	}
	metrics.ObserveStore(op, metrics.OutcomeOK)
	return res, nil
}

// withConn scopes one pooled connection to fn. Errors already mapped by fn pass through.
func withConn(ctx context.Context, pool *sql.DB, op string, fn func(conn *sql.Conn) error) error {
	err := intdb.WithConn(ctx, pool, fn)
	if err == nil {
		return nil
	}
	if domain.IsDataAccess(err) || domain.IsTimeout(err) || domain.IsConflict(err) {
		return err
	}
	return storeError(ctx, op, err)
}

func storeError(ctx context.Context, op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		metrics.ObserveStore(op, metrics.OutcomeTimeout)
		return domain.TimeoutError{Op: op, Err: err}
	}
	metrics.ObserveStore(op, metrics.OutcomeError)
	return domain.DataAccessError{Op: op, Err: err}
}

func isDuplicateEntry(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry
}

// affectedRows reads the affected_rows counter procedures report in their first result set.
func affectedRows(sets []intdb.ResultSet) int64 {
	return intdb.SetAt(sets, 0).Int64("affected_rows")
}
