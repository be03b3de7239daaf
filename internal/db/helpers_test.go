package db

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallStatement(t *testing.T) {
	assert.Equal(t, "CALL sp_x()", CallStatement("sp_x", 0))
	assert.Equal(t, "CALL sp_x(?, ?, ?)", CallStatement("sp_x", 3))
}

func TestQuerySetsDrainsEverySet(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("CALL sp_two(?)")).WithArgs(int64(1)).
		WillReturnRows(
			sqlmock.NewRows([]string{"name"}).AddRow([]byte("bytes become text")).AddRow(nil),
			sqlmock.NewRows([]string{"TOTAL"}).AddRow(int64(9)),
		)

	sets, err := Call(context.Background(), db, "sp_two", int64(1))
	require.NoError(t, err)
	require.Len(t, sets, 2)

	recs := sets[0].Records()
	require.Len(t, recs, 2)
	v, _ := recs[0].Get("name")
	assert.Equal(t, "bytes become text", v)
	v, _ = recs[1].Get("name")
	assert.Nil(t, v)
	assert.EqualValues(t, 9, sets[1].Int64("total"))

	assert.Empty(t, SetAt(sets, 5).Rows)
	assert.Zero(t, SetAt(sets, 5).Int64("total"))
}

func TestWithConnReleasesConnection(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(int64(1)))

	err = WithConn(context.Background(), db, func(conn *sql.Conn) error {
		_, err := QuerySets(context.Background(), conn, "SELECT 1")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 0, db.Stats().InUse)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithConnReleasesOnEveryExit(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	early := errors.New("stop before querying")
	exits := map[string]func(*sql.Conn) error{
		"success":      func(*sql.Conn) error { return nil },
		"early return": func(*sql.Conn) error { return early },
		"panic": func(*sql.Conn) error {
			panic("boom")
		},
	}
	for name, fn := range exits {
		t.Run(name, func(t *testing.T) {
			func() {
				defer func() { _ = recover() }()
				_ = WithConn(context.Background(), db, fn)
			}()
			assert.Equal(t, 0, db.Stats().InUse)

			// The only connection must be available again within a short deadline.
			ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()
			require.NoError(t, WithConn(ctx, db, func(*sql.Conn) error { return nil }))
		})
	}

	err = WithConn(context.Background(), db, func(*sql.Conn) error { return early })
	assert.ErrorIs(t, err, early)
}

func TestWithConnWithoutPool(t *testing.T) {
	err := WithConn(context.Background(), nil, func(*sql.Conn) error { return nil })
	assert.Error(t, err)
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, NullIfEmpty(""))
	assert.Equal(t, "x", NullIfEmpty("x"))
}
