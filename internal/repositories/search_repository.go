package repositories

import (
	"context"
	"database/sql"

	intdb "github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/db"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain/models"
)

// SearchRepository wraps the master search procedures used by the admin grid.
type SearchRepository struct {
	DB *sql.DB
}

const (
	procMasterSearch  = "sp_master_search"
	procApprove       = "sp_update_IsApproved"
	procSewaLocations = "sp_get_sewalocation_by_id"
	opUpdateSelected  = "update_selected_user"
)

const queryUpdateSelected = `UPDATE registration_tbl
		SET is_present = ?, pass_entry = ?, department_id = ?, qualification_id = ?
		WHERE reg_id = ?`

// MasterSearch returns one page of raw records plus the total match count. The procedure
// yields the page first and a single TOTAL_RECORDS row second; a missing count reads as 0.
func (r SearchRepository) MasterSearch(ctx context.Context, f models.FilterCriteria) ([]models.Record, int64, error) {
	var (
		records []models.Record
		total   int64
	)
	err := withConn(ctx, r.DB, procMasterSearch, func(conn *sql.Conn) error {
		sets, err := call(ctx, conn, procMasterSearch, f.StoreArgs()...)
		if err != nil {
			return err
		}
		records = intdb.SetAt(sets, 0).Records()
		total = intdb.SetAt(sets, 1).Int64("TOTAL_RECORDS")
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// Approve flips is_approved for regID and returns the affected row count.
func (r SearchRepository) Approve(ctx context.Context, regID int64) (int64, error) {
	var affected int64
	err := withConn(ctx, r.DB, procApprove, func(conn *sql.Conn) error {
		sets, err := call(ctx, conn, procApprove, regID, 1)
		if err != nil {
			return err
		}
		affected = affectedRows(sets)
		return nil
	})
	return affected, err
}

// UpdateSelectedUser writes one row of a bulk edit.
func (r SearchRepository) UpdateSelectedUser(ctx context.Context, u models.SelectedUserUpdate) error {
	if r.DB == nil {
		return storeError(ctx, opUpdateSelected, errNoPool)
	}
	_, err := exec(ctx, r.DB, opUpdateSelected, queryUpdateSelected,
		u.IsPresent.Arg(), u.PassEntry.Arg(), u.DepartmentID.Arg(), u.QualificationID.Arg(), u.RegID.Arg())
	return err
}

// SewaLocations lists every sewa location (id 0 means all).
func (r SearchRepository) SewaLocations(ctx context.Context) ([]models.Record, error) {
	var out []models.Record
	err := withConn(ctx, r.DB, procSewaLocations, func(conn *sql.Conn) error {
		sets, err := call(ctx, conn, procSewaLocations, 0)
		if err != nil {
			return err
		}
		out = intdb.SetAt(sets, 0).Records()
		return nil
	})
	return out, err
}
