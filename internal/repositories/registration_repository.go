package repositories

import (
	"context"
	"database/sql"

	intdb "github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/db"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain/models"
)

// RegistrationRepository serves the public registration flow.
type RegistrationRepository struct {
	DB *sql.DB
}

const (
	procStates         = "sp_get_state_details"
	procDepartments    = "sp_get_department_by_id"
	procQualifications = "sp_get_qualification_by_id"
	procCities         = "sp_get_city_details"
	procSaveProfile    = "sp_save_user_profile"
	opEmailExists      = "email_exists"
	opMobileExists     = "mobile_exists"
	queryEmailExists   = "SELECT reg_id FROM registration_tbl WHERE email = ? AND is_deleted = 0"
	queryMobileExists  = "SELECT reg_id FROM registration_tbl WHERE mobile_no = ? AND is_deleted = 0"
)

// DropdownData loads the four lookup lists on one connection.
func (r RegistrationRepository) DropdownData(ctx context.Context) (models.DropdownData, error) {
	var out models.DropdownData
	err := withConn(ctx, r.DB, "dropdown_data", func(conn *sql.Conn) error {
		lists := []struct {
			proc string
			arg  any
			dst  *[]models.Record
		}{
			{procStates, nil, &out.States},
			{procDepartments, 0, &out.Departments},
			{procQualifications, 0, &out.Qualifications},
			{procSewaLocations, 0, &out.SewaLocations},
		}
		for _, l := range lists {
			sets, err := call(ctx, conn, l.proc, l.arg)
			if err != nil {
				return err
			}
			*l.dst = intdb.SetAt(sets, 0).Records()
		}
		return nil
	})
	return out, err
}

func (r RegistrationRepository) Cities(ctx context.Context, stateID int64) ([]models.Record, error) {
	var out []models.Record
	err := withConn(ctx, r.DB, procCities, func(conn *sql.Conn) error {
		sets, err := call(ctx, conn, procCities, stateID)
		if err != nil {
			return err
		}
		out = intdb.SetAt(sets, 0).Records()
		return nil
	})
	return out, err
}

func (r RegistrationRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, opEmailExists, queryEmailExists, email)
}

func (r RegistrationRepository) MobileExists(ctx context.Context, mobile string) (bool, error) {
	return r.exists(ctx, opMobileExists, queryMobileExists, mobile)
}

func (r RegistrationRepository) exists(ctx context.Context, op, query string, arg any) (bool, error) {
	if r.DB == nil {
		return false, storeError(ctx, op, errNoPool)
	}
	sets, err := intdb.QuerySets(ctx, r.DB, query, arg)
	if err != nil {
		return false, storeError(ctx, op, err)
	}
	return len(intdb.SetAt(sets, 0).Rows) > 0, nil
}

// SaveUserProfile inserts the registration through sp_save_user_profile.
// A duplicate key from the store is reported as a conflict.
func (r RegistrationRepository) SaveUserProfile(ctx context.Context, in models.UserProfileInput) error {
	if r.DB == nil {
		return storeError(ctx, procSaveProfile, errNoPool)
	}
	_, err := r.DB.ExecContext(ctx, intdb.CallStatement(procSaveProfile, len(in.Args())), in.Args()...)
	if err == nil {
		return nil
	}
	if isDuplicateEntry(err) {
		return domain.ConflictError{Resource: "user", Msg: "Email or mobile number already registered", Err: err}
	}
	return storeError(ctx, procSaveProfile, err)
}
