package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/auth"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain/models"
)

type fakeAuthStore struct {
	account   models.LoginAccount
	found     bool
	validID   int64
	valid     bool
	summary   models.AccountSummary
	forgot    models.ForgotPasswordResult
	updStatus string
	gotHash   string
}

func (f *fakeAuthStore) FindLoginAccount(context.Context, string) (models.LoginAccount, bool, error) {
	return f.account, f.found, nil
}

func (f *fakeAuthStore) ValidateLogin(context.Context, string, string, string) (int64, bool, error) {
	return f.validID, f.valid, nil
}

func (f *fakeAuthStore) AccountSummary(context.Context, int64) (models.AccountSummary, error) {
	return f.summary, nil
}

func (f *fakeAuthStore) CheckForgotPassword(context.Context, models.ForgotPasswordRequest) (models.ForgotPasswordResult, bool, error) {
	return f.forgot, true, nil
}

func (f *fakeAuthStore) UpdatePassword(_ context.Context, _ int64, hash, _ string) (string, error) {
	f.gotHash = hash
	return f.updStatus, nil
}

func hashFor(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func approvedStore(t *testing.T, userType string) *fakeAuthStore {
	return &fakeAuthStore{
		account: models.LoginAccount{RegID: 7, PasswordHash: hashFor(t, "secret123"), UserType: userType, IsApproved: 1},
		found:   true,
		validID: 7,
		valid:   true,
		summary: models.AccountSummary{RegID: 7, FullName: "Asha Rao", Email: "asha@example.com", UserType: userType},
	}
}

func TestLoginSuccess(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	svc := AuthService{Repo: approvedStore(t, domain.UserTypeAdmin), Tokens: tm, Cost: bcrypt.MinCost}

	res, err := svc.Login(context.Background(), models.LoginRequest{Role: "Admin", Email: "asha@example.com", Password: "secret123"},
		"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36")
	require.NoError(t, err)

	assert.Equal(t, "Administrator", res.User.Role)
	assert.Equal(t, DefaultProfilePic, res.User.ProfilePic)
	assert.EqualValues(t, 7, res.User.ID)

	claims, err := tm.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.ID(7), claims.Identity().UserID)
	assert.True(t, claims.Identity().IsAdmin())
}

func TestLoginFailures(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	req := models.LoginRequest{Role: "ms", Email: "asha@example.com", Password: "secret123"}

	cases := []struct {
		name  string
		store func() *fakeAuthStore
		req   models.LoginRequest
		check func(error) bool
		msg   string
	}{
		{"unknown account", func() *fakeAuthStore { return &fakeAuthStore{} }, req, domain.IsUnauthorized, "Invalid loginID or password"},
		{"wrong password", func() *fakeAuthStore { return approvedStore(t, "ms") },
			models.LoginRequest{Email: "asha@example.com", Password: "nope"}, domain.IsUnauthorized, "Invalid password"},
		{"not approved", func() *fakeAuthStore {
			s := approvedStore(t, "ms")
			s.account.IsApproved = 0
			return s
		}, req, domain.IsForbidden, ""},
		{"deleted", func() *fakeAuthStore {
			s := approvedStore(t, "ms")
			s.account.IsDeleted = 1
			return s
		}, req, domain.IsForbidden, ""},
		{"role mismatch", func() *fakeAuthStore { return approvedStore(t, "ms") },
			models.LoginRequest{Role: "admin", Email: "asha@example.com", Password: "secret123"}, domain.IsForbidden,
			"You are not authorized to login as Administrator. Please contact the administrator."},
		{"procedure rejects", func() *fakeAuthStore {
			s := approvedStore(t, "ms")
			s.valid = false
			return s
		}, req, domain.IsUnauthorized, "Invalid email or password"},
		{"missing fields", func() *fakeAuthStore { return &fakeAuthStore{} }, models.LoginRequest{}, domain.IsValidation, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := AuthService{Repo: tc.store(), Tokens: tm}
			_, err := svc.Login(context.Background(), tc.req, "")
			require.Error(t, err)
			assert.True(t, tc.check(err), "unexpected error kind %T", err)
			if tc.msg != "" {
				assert.Equal(t, tc.msg, err.Error())
			}
		})
	}
}

func TestValidateForgotPassword(t *testing.T) {
	req := models.ForgotPasswordRequest{Email: "a@b.co", MobileNo: "9876543210"}

	out, err := AuthService{Repo: &fakeAuthStore{forgot: models.ForgotPasswordResult{Status: models.ForgotStatusFail, MatchedAnswers: 2}}}.
		ValidateForgotPassword(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, "Only 2 answer(s) matched. Please try again.", out.Message)

	out, err = AuthService{Repo: &fakeAuthStore{forgot: models.ForgotPasswordResult{Status: models.ForgotStatusPass, RegID: 9, MatchedAnswers: 4}}}.
		ValidateForgotPassword(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, models.ForgotPasswordResult{RegID: 9, MatchedAnswers: 4, Status: "PASS"}, out.Data)

	_, err = AuthService{Repo: &fakeAuthStore{}}.ValidateForgotPassword(context.Background(), models.ForgotPasswordRequest{})
	assert.True(t, domain.IsValidation(err))
}

func TestResetPassword(t *testing.T) {
	ok := models.ResetPasswordRequest{RegID: models.Int(9), NewPassword: "newsecret1", ConfirmPassword: "newsecret1", Status: "PASS"}

	store := &fakeAuthStore{updStatus: "SUCCESS"}
	out, err := AuthService{Repo: store, Cost: bcrypt.MinCost}.ResetPassword(context.Background(), ok)
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(store.gotHash), []byte("newsecret1")))

	out, err = AuthService{Repo: &fakeAuthStore{updStatus: "INVALID USER"}, Cost: bcrypt.MinCost}.ResetPassword(context.Background(), ok)
	require.NoError(t, err)
	assert.False(t, out.Success)

	mismatch := ok
	mismatch.ConfirmPassword = "other"
	_, err = AuthService{Repo: &fakeAuthStore{}}.ResetPassword(context.Background(), mismatch)
	assert.EqualError(t, err, "Passwords do not match.")

	notPassed := ok
	notPassed.Status = "FAIL"
	_, err = AuthService{Repo: &fakeAuthStore{}}.ResetPassword(context.Background(), notPassed)
	assert.True(t, domain.IsForbidden(err))
	assert.False(t, errors.Is(err, context.Canceled))
}
