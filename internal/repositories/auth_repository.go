package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	intdb "github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/db"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain/models"
)

// AuthRepository reads credentials and runs the password procedures.
type AuthRepository struct {
	DB *sql.DB
}

const (
	opFindLogin        = "find_login_account"
	opAccountSummary   = "account_summary"
	procValidateLogin  = "sp_validate_login"
	procForgotPassword = "sp_checkupdate_forgotpassword"
	procUpdatePassword = "sp_update_password"
)

const (
	queryFindLoginByID = `SELECT reg_id, password, user_type, is_approved, is_deleted
		FROM registration_tbl
		WHERE (email = ? OR mobile_no = ?) AND is_deleted = 0 AND is_approved = 1`
	queryAccountSummary = `SELECT reg_id, login_id, user_type, full_name, email, profile_img_path
		FROM registration_tbl WHERE reg_id = ?`
)

// FindLoginAccount looks up an approved, active account by email or mobile number.
func (r AuthRepository) FindLoginAccount(ctx context.Context, loginID string) (models.LoginAccount, bool, error) {
	if r.DB == nil {
		return models.LoginAccount{}, false, storeError(ctx, opFindLogin, errNoPool)
	}
	var (
		acc      models.LoginAccount
		hash     sql.NullString
		userType sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, queryFindLoginByID, loginID, loginID).
		Scan(&acc.RegID, &hash, &userType, &acc.IsApproved, &acc.IsDeleted)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LoginAccount{}, false, nil
	}
	if err != nil {
		return models.LoginAccount{}, false, storeError(ctx, opFindLogin, err)
	}
	acc.PasswordHash = hash.String
	acc.UserType = userType.String
	return acc, true, nil
}

// ValidateLogin runs sp_validate_login and returns the matched reg_id.
func (r AuthRepository) ValidateLogin(ctx context.Context, userType, loginID, hash string) (int64, bool, error) {
	var (
		regID int64
		found bool
	)
	err := withConn(ctx, r.DB, procValidateLogin, func(conn *sql.Conn) error {
		sets, err := call(ctx, conn, procValidateLogin, userType, loginID, hash)
		if err != nil {
			return err
		}
		row, ok := intdb.SetAt(sets, 0).First()
		if ok {
			regID, found = row.Int64("reg_id"), true
		}
		return nil
	})
	return regID, found, err
}

func (r AuthRepository) AccountSummary(ctx context.Context, regID int64) (models.AccountSummary, error) {
	if r.DB == nil {
		return models.AccountSummary{}, storeError(ctx, opAccountSummary, errNoPool)
	}
	var a models.AccountSummary
	var loginID, userType, name, email, imgPath sql.NullString
	err := r.DB.QueryRowContext(ctx, queryAccountSummary, regID).
		Scan(&a.RegID, &loginID, &userType, &name, &email, &imgPath)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AccountSummary{}, domain.NotFoundError{Resource: "user", Msg: "User not found"}
	}
	if err != nil {
		return models.AccountSummary{}, storeError(ctx, opAccountSummary, err)
	}
	a.LoginID = loginID.String
	a.UserType = userType.String
	a.FullName = name.String
	a.Email = email.String
	a.ProfileImgPath = imgPath.String
	return a, nil
}

// CheckForgotPassword compares the security answers; ok is false when the procedure returned no row.
func (r AuthRepository) CheckForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (models.ForgotPasswordResult, bool, error) {
	var (
		res models.ForgotPasswordResult
		ok  bool
	)
	err := withConn(ctx, r.DB, procForgotPassword, func(conn *sql.Conn) error {
		sets, err := call(ctx, conn, procForgotPassword,
			strings.TrimSpace(req.Email),
			strings.TrimSpace(req.MobileNo),
			optionalText(req.FavoriteFood),
			optionalText(req.ChildhoodNickname),
			optionalText(req.MotherMaidenName),
			optionalText(req.Hobbies),
		)
		if err != nil {
			return err
		}
		row, found := intdb.SetAt(sets, 0).First()
		if !found {
			return nil
		}
		ok = true
		res.Status = row.Text("status")
		res.MatchedAnswers = row.Int64("matched_answers")
		res.RegID = row.Int64("v_reg_id", "reg_id")
		return nil
	})
	return res, ok, err
}

// UpdatePassword stores hash for regID and returns the procedure status text.
func (r AuthRepository) UpdatePassword(ctx context.Context, regID int64, hash, status string) (string, error) {
	var out string
	err := withConn(ctx, r.DB, procUpdatePassword, func(conn *sql.Conn) error {
		sets, err := call(ctx, conn, procUpdatePassword, regID, hash, status)
		if err != nil {
			return err
		}
		if row, ok := intdb.SetAt(sets, 0).First(); ok {
			out = row.Text("status")
		}
		return nil
	})
	return out, err
}

// optionalText trims s and maps blank to SQL NULL.
func optionalText(s string) any {
	return intdb.NullIfEmpty(strings.TrimSpace(s))
}
