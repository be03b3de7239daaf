package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain/models"
)

func validRegistration() models.RegistrationForm {
	return models.RegistrationForm{
		FullName:        "Asha Rao",
		Email:           "asha@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		MobileNo:        "9876543210",
		DateOfBirth:     "1990-05-17",
	}
}

func TestStructAcceptsValidRegistration(t *testing.T) {
	require.NoError(t, Struct(validRegistration()))
}

func TestStructListsMissingFieldsInOrder(t *testing.T) {
	f := validRegistration()
	f.FullName = ""
	f.MobileNo = ""
	err := Struct(f)
	assert.EqualError(t, err, "Missing required fields: fullName, mobileNo")
	assert.True(t, domain.IsValidation(err))

	var verrs validator.ValidationErrors
	assert.True(t, errors.As(err, &verrs), "validator errors stay reachable through Unwrap")
}

func TestStructRuleMessages(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.RegistrationForm)
		want   string
	}{
		{"email", func(f *models.RegistrationForm) { f.Email = "asha@example" }, "Invalid email format"},
		{"mobile leading zero", func(f *models.RegistrationForm) { f.MobileNo = "0876543210" }, "Mobile number must be 10 digits"},
		{"mobile short", func(f *models.RegistrationForm) { f.MobileNo = "98765" }, "Mobile number must be 10 digits"},
		{"password length", func(f *models.RegistrationForm) {
			f.Password, f.ConfirmPassword = "short", "short"
		}, "Password must be at least 8 characters long"},
		{"mismatch", func(f *models.RegistrationForm) { f.ConfirmPassword = "different1" }, "Passwords do not match"},
		{"date", func(f *models.RegistrationForm) { f.DateOfBirth = "17/05/1990" }, "dateOfBirth: must be YYYY-MM-DD"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validRegistration()
			tc.mutate(&f)
			assert.EqualError(t, Struct(f), tc.want)
		})
	}
}

func TestStructUsesRequestMissingMessage(t *testing.T) {
	assert.EqualError(t, Struct(models.LoginRequest{Email: "   ", Password: "x"}), "Email and password are required")
	assert.EqualError(t, Struct(models.ForgotPasswordRequest{Email: "a@b.co"}), "Email and mobile number are required")
	assert.EqualError(t, Struct(models.RoleUpdateRequest{}), "Registration ID is required.")
	assert.NoError(t, Struct(models.RoleUpdateRequest{RegID: "3,4"}))
}

func TestStructFlexValues(t *testing.T) {
	reset := models.ResetPasswordRequest{RegID: models.Int(9), NewPassword: "newsecret1", ConfirmPassword: "newsecret1"}
	require.NoError(t, Struct(reset))

	absent := reset
	absent.RegID = models.FlexInt{}
	assert.EqualError(t, Struct(absent), "Registration ID is required.")

	zero := reset
	zero.RegID = models.Int(0)
	assert.EqualError(t, Struct(zero), "Registration ID is required.")

	negative := reset
	negative.RegID = models.Int(-4)
	assert.EqualError(t, Struct(negative), "regId must be a positive integer")

	assert.NoError(t, Struct(models.ProfileUpdate{}))
	assert.NoError(t, Struct(models.ProfileUpdate{Email: models.String(" new@example.com ")}))
	assert.EqualError(t, Struct(models.ProfileUpdate{Email: models.String("bad")}), "Invalid email format")
	assert.EqualError(t, Struct(models.ProfileUpdate{MobileNo: models.String("12345")}), "Mobile number must be 10 digits")
}

func TestVar(t *testing.T) {
	assert.NoError(t, Var("asha@example.com", "emailaddr", "Invalid email format"))
	for _, bad := range []string{"asha@example", "a b@c.d", ""} {
		err := Var(bad, "emailaddr", "Invalid email format")
		assert.EqualError(t, err, "Invalid email format", bad)
	}
}
