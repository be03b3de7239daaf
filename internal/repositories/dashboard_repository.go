package repositories

import (
	"context"
	"database/sql"

	intdb "github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/db"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain/models"
)

// DashboardRepository reads dashboard counters and the caller's profile.
type DashboardRepository struct {
	DB *sql.DB
}

const (
	procDashboardStats     = "sp_get_dashboard_stats"
	procDeptCount          = "sp_dashboard_dept_count"
	procUserProfile        = "sp_get_user_profile"
	procCheckEmailUpdate   = "sp_check_email_for_update"
	procUpdateUserProfile  = "sp_update_user_profile"
	procUpdateUserPresence = "sp_update_user_presence"
	procAdminSummary       = "sp_get_admin_summary"
)

// Totals holds the two counters sp_get_dashboard_stats returns in separate result sets.
type Totals struct {
	TotalUsers          int64
	RecentRegistrations int64
}

// Stats returns the overall counters and the per-department rows.
func (r DashboardRepository) Stats(ctx context.Context) (Totals, []models.Record, error) {
	var (
		totals Totals
		depts  []models.Record
	)
	err := withConn(ctx, r.DB, procDashboardStats, func(conn *sql.Conn) error {
		sets, err := call(ctx, conn, procDashboardStats)
		if err != nil {
			return err
		}
		totals.TotalUsers = intdb.SetAt(sets, 0).Int64("total_users")
		totals.RecentRegistrations = intdb.SetAt(sets, 1).Int64("recent_registrations")

		sets, err = call(ctx, conn, procDeptCount)
		if err != nil {
			return err
		}
		depts = intdb.SetAt(sets, 0).Records()
		return nil
	})
	return totals, depts, err
}

// UserProfile returns the raw profile row; ok is false when the user does not exist.
func (r DashboardRepository) UserProfile(ctx context.Context, userID int64) (models.Record, bool, error) {
	var (
		row models.Record
		ok  bool
	)
	err := withConn(ctx, r.DB, procUserProfile, func(conn *sql.Conn) error {
		sets, err := call(ctx, conn, procUserProfile, userID)
		if err != nil {
			return err
		}
		row, ok = intdb.SetAt(sets, 0).First()
		return nil
	})
	return row, ok, err
}

// EmailTaken reports whether email belongs to a user other than userID.
func (r DashboardRepository) EmailTaken(ctx context.Context, email string, userID int64) (bool, error) {
	var taken bool
	err := withConn(ctx, r.DB, procCheckEmailUpdate, func(conn *sql.Conn) error {
		sets, err := call(ctx, conn, procCheckEmailUpdate, email, userID)
		if err != nil {
			return err
		}
		taken = intdb.SetAt(sets, 0).Int64("email_exists") > 0
		return nil
	})
	return taken, err
}

// UpdateProfile writes the editable profile fields; absent fields are passed as NULL.
func (r DashboardRepository) UpdateProfile(ctx context.Context, userID int64, in models.ProfileUpdate) (int64, error) {
	var affected int64
	err := withConn(ctx, r.DB, procUpdateUserProfile, func(conn *sql.Conn) error {
		sets, err := call(ctx, conn, procUpdateUserProfile,
			userID,
			textOrNull(in.FullName),
			textOrNull(in.Email),
			textOrNull(in.MobileNo),
			textOrNull(in.Address),
			idOrNull(in.StateID),
			idOrNull(in.CityID),
			idOrNull(in.DepartmentID),
			idOrNull(in.QualificationID),
		)
		if err != nil {
			return err
		}
		affected = affectedRows(sets)
		return nil
	})
	return affected, err
}

func (r DashboardRepository) UpdatePresence(ctx context.Context, userID int64, in models.PresenceUpdate) (int64, error) {
	var affected int64
	err := withConn(ctx, r.DB, procUpdateUserPresence, func(conn *sql.Conn) error {
		sets, err := call(ctx, conn, procUpdateUserPresence, userID, in.IsPresent.Arg(), in.PassEntry.Arg())
		if err != nil {
			return err
		}
		affected = affectedRows(sets)
		return nil
	})
	return affected, err
}

// AdminSummary returns the single counters row; missing means all zero.
func (r DashboardRepository) AdminSummary(ctx context.Context) (models.Record, error) {
	var row models.Record
	err := withConn(ctx, r.DB, procAdminSummary, func(conn *sql.Conn) error {
		sets, err := call(ctx, conn, procAdminSummary)
		if err != nil {
			return err
		}
		row, _ = intdb.SetAt(sets, 0).First()
		return nil
	})
	return row, err
}

// textOrNull passes blank strings as NULL so the procedure keeps the stored value.
func textOrNull(s models.FlexString) any {
	if p := s.Trimmed(); p != nil {
		return *p
	}
	return nil
}

// idOrNull treats 0 as "unchanged".
func idOrNull(v models.FlexInt) any {
	if !v.Valid || v.Value == 0 {
		return nil
	}
	return v.Value
}
