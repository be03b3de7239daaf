package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mssola/useragent"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/auth"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain/models"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/utils"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/validation"
)

// DefaultProfilePic is returned for accounts without an uploaded picture.
const DefaultProfilePic = "/uploads/default_profile.png"

type AuthStore interface {
	FindLoginAccount(ctx context.Context, loginID string) (models.LoginAccount, bool, error)
	ValidateLogin(ctx context.Context, userType, loginID, hash string) (int64, bool, error)
	AccountSummary(ctx context.Context, regID int64) (models.AccountSummary, error)
	CheckForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (models.ForgotPasswordResult, bool, error)
	UpdatePassword(ctx context.Context, regID int64, hash, status string) (string, error)
}

type AuthService struct {
	Repo      AuthStore
	Tokens    *auth.TokenManager
	RequestID string
	Timeout   time.Duration
	// Cost overrides BcryptCost; tests use bcrypt.MinCost.
	Cost int
}

// RoleName is the display name of a user type.
func RoleName(userType string) string {
	if userType == domain.UserTypeAdmin {
		return "Administrator"
	}
	return "Medical Staff"
}

// Login authenticates by email or mobile number. Role "admin" logs in as an administrator,
// anything else as medical staff.
func (s AuthService) Login(ctx context.Context, req models.LoginRequest, userAgent string) (models.LoginResult, error) {
	if err := validation.Struct(req); err != nil {
		return models.LoginResult{}, err
	}
	loginID := strings.TrimSpace(req.Email)
	userType := domain.UserTypeMedicalStaff
	if strings.EqualFold(strings.TrimSpace(req.Role), domain.UserTypeAdmin) {
		userType = domain.UserTypeAdmin
	}

	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	acc, found, err := s.Repo.FindLoginAccount(ctx, loginID)
	if err != nil {
		utils.LogFailure(s.RequestID, "auth", "login_lookup", err)
		return models.LoginResult{}, err
	}
	if !found {
		return models.LoginResult{}, domain.UnauthorizedError{Msg: "Invalid loginID or password"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(req.Password)); err != nil {
		return models.LoginResult{}, domain.UnauthorizedError{Msg: "Invalid password"}
	}
	if acc.IsApproved != 1 {
		return models.LoginResult{}, domain.ForbiddenError{Msg: "Your account is not yet approved. Please contact the administrator for approval."}
	}
	if acc.IsDeleted == 1 {
		return models.LoginResult{}, domain.ForbiddenError{Msg: "Your account has been deactivated. Please contact support for assistance."}
	}
	if acc.UserType != userType {
		return models.LoginResult{}, domain.ForbiddenError{
			Msg: fmt.Sprintf("You are not authorized to login as %s. Please contact the administrator.", RoleName(userType)),
		}
	}

	regID, ok, err := s.Repo.ValidateLogin(ctx, userType, loginID, acc.PasswordHash)
	if err != nil {
		utils.LogFailure(s.RequestID, "auth", "validate_login", err)
		return models.LoginResult{}, err
	}
	if !ok {
		return models.LoginResult{}, domain.UnauthorizedError{Msg: "Invalid email or password"}
	}

	user, err := s.Repo.AccountSummary(ctx, regID)
	if err != nil {
		utils.LogFailure(s.RequestID, "auth", "account_summary", err)
		return models.LoginResult{}, err
	}

	token, err := s.Tokens.Issue(domain.Identity{UserID: domain.ID(user.RegID), Email: user.Email, UserType: user.UserType})
	if err != nil {
		return models.LoginResult{}, domain.InternalError{Msg: "Failed to issue token", Err: err}
	}

	utils.LogEvent(s.RequestID, "auth", "login", "login success",
		append(clientFields(userAgent), zap.Int64("reg_id", user.RegID), zap.String("user_type", user.UserType))...)

	pic := user.ProfileImgPath
	if pic == "" {
		pic = DefaultProfilePic
	}
	return models.LoginResult{
		Token: token,
		User: models.LoginUser{
			ID:         user.RegID,
			Name:       user.FullName,
			Email:      user.Email,
			UserType:   user.UserType,
			Role:       RoleName(user.UserType),
			ProfilePic: pic,
		},
	}, nil
}

// ValidateForgotPassword checks the security answers. Wrong answers are an unsuccessful
// Outcome, not an error.
func (s AuthService) ValidateForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (Outcome, error) {
	if err := validation.Struct(req); err != nil {
		return Outcome{}, err
	}
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	res, ok, err := s.Repo.CheckForgotPassword(ctx, req)
	if err != nil {
		utils.LogFailure(s.RequestID, "auth", "forgot_password", err)
		return Outcome{}, err
	}
	if !ok {
		return Outcome{}, domain.InternalError{Msg: "Unexpected database response"}
	}

	switch res.Status {
	case models.ForgotStatusInvalid:
		return Outcome{Success: false, Message: "Invalid email or mobile number.", Data: res}, nil
	case models.ForgotStatusFail:
		return Outcome{
			Success: false,
			Message: fmt.Sprintf("Only %d answer(s) matched. Please try again.", res.MatchedAnswers),
			Data:    res,
		}, nil
	}
	utils.LogEvent(s.RequestID, "auth", "forgot_password", fmt.Sprintf("reg_id=%d status=%s", res.RegID, res.Status))
	return Outcome{
		Success: true,
		Message: "Validation successful. You may proceed to reset your password.",
		Data:    res,
	}, nil
}

// ResetPassword stores a new password after a successful security check.
func (s AuthService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (Outcome, error) {
	if err := validation.Struct(req); err != nil {
		return Outcome{}, err
	}
	if req.Status != models.ForgotStatusPass {
		return Outcome{}, domain.ForbiddenError{Msg: "You are not authorized to reset the password."}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.cost())
	if err != nil {
		return Outcome{}, domain.InternalError{Msg: "Failed to hash password", Err: err}
	}

	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	status, err := s.Repo.UpdatePassword(ctx, req.RegID.Value, string(hash), req.Status)
	if err != nil {
		utils.LogFailure(s.RequestID, "auth", "reset_password", err)
		return Outcome{}, err
	}
	if status == "INVALID USER" {
		return Outcome{Success: false, Message: "Invalid user ID or operation not permitted."}, nil
	}
	utils.LogEvent(s.RequestID, "auth", "reset_password", fmt.Sprintf("reg_id=%d", req.RegID.Value))
	return Outcome{Success: true, Message: "Password updated successfully. You can now log in."}, nil
}

func (s AuthService) cost() int {
	if s.Cost > 0 {
		return s.Cost
	}
	return BcryptCost
}

// clientFields describes the caller's browser for login events.
func clientFields(raw string) []zap.Field {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	ua := useragent.New(raw)
	browser, version := ua.Browser()
	return []zap.Field{
		zap.String("browser", strings.TrimSpace(browser+" "+version)),
		zap.String("os", ua.OS()),
		zap.String("platform", ua.Platform()),
		zap.Bool("mobile", ua.Mobile()),
	}
}
