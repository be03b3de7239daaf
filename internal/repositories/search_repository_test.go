package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain/models"
)

var masterSearchCall = regexp.QuoteMeta("CALL sp_master_search(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")

func newMock(t *testing.T) (SearchRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return SearchRepository{DB: db}, mock
}

func TestMasterSearchReadsBothResultSets(t *testing.T) {
	repo, mock := newMock(t)

	key := "ram"
	dept := int64(3)
	present := true
	f := models.FilterCriteria{SearchKey: &key, DepartmentID: &dept, IsPresent: &present, Page: 2, Limit: 10}

	page := sqlmock.NewRows([]string{"REG_ID", "FULL_NAME", "IS_PRESENT"}).
		AddRow(int64(11), "Ram Lal", "YES").
		AddRow(int64(12), "Ramesh", "NO")
	count := sqlmock.NewRows([]string{"TOTAL_RECORDS"}).AddRow(int64(25))

	mock.ExpectQuery(masterSearchCall).
		WithArgs("ram", int64(3), nil, nil, nil, nil, 1, nil, int64(2), int64(10)).
		WillReturnRows(page, count)

	records, total, err := repo.MasterSearch(context.Background(), f)
	require.NoError(t, err)
	assert.EqualValues(t, 25, total)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"REG_ID", "FULL_NAME", "IS_PRESENT"}, records[0].Keys())
	assert.Equal(t, "Ramesh", records[1].Text("FULL_NAME"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMasterSearchMissingCountIsZero(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(masterSearchCall).
		WillReturnRows(sqlmock.NewRows([]string{"REG_ID"}).AddRow(int64(1)))

	records, total, err := repo.MasterSearch(context.Background(), models.FilterCriteria{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Zero(t, total)
}

func TestMasterSearchStoreFailure(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(masterSearchCall).WillReturnError(errors.New("connection reset"))

	_, _, err := repo.MasterSearch(context.Background(), models.FilterCriteria{Page: 1, Limit: 10})
	require.Error(t, err)
	assert.True(t, domain.IsDataAccess(err))
	assert.NotContains(t, err.Error(), "connection reset")
}

func TestMasterSearchDeadline(t *testing.T) {
	repo, _ := newMock(t)
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, _, err := repo.MasterSearch(ctx, models.FilterCriteria{Page: 1, Limit: 10})
	assert.True(t, domain.IsTimeout(err), "got %v", err)
}

func TestMasterSearchWithoutPool(t *testing.T) {
	_, _, err := SearchRepository{}.MasterSearch(context.Background(), models.FilterCriteria{})
	assert.True(t, domain.IsDataAccess(err))
}

func TestApproveReadsAffectedRows(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("CALL sp_update_IsApproved(?, ?)")).
		WithArgs(int64(42), 1).
		WillReturnRows(sqlmock.NewRows([]string{"affected_rows"}).AddRow(int64(1)))

	n, err := repo.Approve(context.Background(), 42)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSelectedUser(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE registration_tbl")).
		WithArgs(1, 0, int64(4), nil, int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateSelectedUser(context.Background(), models.SelectedUserUpdate{
		RegID:        models.Int(9),
		IsPresent:    models.Flag(true),
		PassEntry:    models.Flag(false),
		DepartmentID: models.Int(4),
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSewaLocations(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("CALL sp_get_sewalocation_by_id(?)")).
		WithArgs(0).
		WillReturnRows(sqlmock.NewRows([]string{"sewa_location_id", "sewa_location_name"}).
			AddRow(int64(1), "Delhi").AddRow(int64(2), "Samalkha"))

	list, err := repo.SewaLocations(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestMasterSearchReleasesConnectionAfterFailure(t *testing.T) {
	repo, mock := newMock(t)
	repo.DB.SetMaxOpenConns(1)

	mock.ExpectQuery(masterSearchCall).WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectQuery(masterSearchCall).
		WillReturnRows(
			sqlmock.NewRows([]string{"REG_ID"}).AddRow(int64(1)),
			sqlmock.NewRows([]string{"TOTAL_RECORDS"}).AddRow(int64(1)),
		)

	_, _, err := repo.MasterSearch(context.Background(), models.FilterCriteria{Page: 1, Limit: 10})
	require.True(t, domain.IsDataAccess(err), "first call: %v", err)

	// With a single connection in the pool the second call only gets one if the first released it.
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	records, total, err := repo.MasterSearch(ctx, models.FilterCriteria{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, 0, repo.DB.Stats().InUse)
	require.NoError(t, mock.ExpectationsWereMet())
}
