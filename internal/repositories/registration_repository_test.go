package repositories

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain/models"
)

func TestDropdownDataUsesOneConnection(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("CALL sp_get_state_details(?)")).WithArgs(nil).
		WillReturnRows(sqlmock.NewRows([]string{"state_id", "state_name"}).AddRow(int64(1), "Punjab"))
	mock.ExpectQuery(regexp.QuoteMeta("CALL sp_get_department_by_id(?)")).WithArgs(0).
		WillReturnRows(sqlmock.NewRows([]string{"department_id", "department_name"}).AddRow(int64(2), "Dental"))
	mock.ExpectQuery(regexp.QuoteMeta("CALL sp_get_qualification_by_id(?)")).WithArgs(0).
		WillReturnRows(sqlmock.NewRows([]string{"qualification_id"}))
	mock.ExpectQuery(regexp.QuoteMeta("CALL sp_get_sewalocation_by_id(?)")).WithArgs(0).
		WillReturnRows(sqlmock.NewRows([]string{"sewa_location_id"}).AddRow(int64(1)).AddRow(int64(2)))

	data, err := RegistrationRepository{DB: db}.DropdownData(context.Background())
	require.NoError(t, err)
	assert.Len(t, data.States, 1)
	assert.Len(t, data.Departments, 1)
	assert.Empty(t, data.Qualifications)
	assert.Len(t, data.SewaLocations, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmailExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queryEmailExists)).WithArgs("a@b.co").
		WillReturnRows(sqlmock.NewRows([]string{"reg_id"}).AddRow(int64(5)))
	mock.ExpectQuery(regexp.QuoteMeta(queryMobileExists)).WithArgs("9876543210").
		WillReturnRows(sqlmock.NewRows([]string{"reg_id"}))

	repo := RegistrationRepository{DB: db}
	taken, err := repo.EmailExists(context.Background(), "a@b.co")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.MobileExists(context.Background(), "9876543210")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestSaveUserProfileDuplicateIsConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	in := models.UserProfileInput{Action: "insert", FullName: "Asha", Email: "a@b.co"}
	mock.ExpectExec(regexp.QuoteMeta("CALL sp_save_user_profile(")).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@b.co' for key 'email'"})

	err = RegistrationRepository{DB: db}.SaveUserProfile(context.Background(), in)
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
}

func TestSaveUserProfilePassesEveryArgument(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	in := models.UserProfileInput{Action: "insert", FullName: "Asha"}
	args := in.Args()
	require.Len(t, args, 34)

	matchers := make([]driver.Value, len(args))
	for i := range matchers {
		matchers[i] = sqlmock.AnyArg()
	}
	mock.ExpectExec(regexp.QuoteMeta("CALL sp_save_user_profile(")).
		WithArgs(matchers...).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, RegistrationRepository{DB: db}.SaveUserProfile(context.Background(), in))
	require.NoError(t, mock.ExpectationsWereMet())
}
