package models

type LoginRequest struct {
	Role     string `json:"role"`
	Email    string `json:"email" validate:"notblank"`
	Password string `json:"password" validate:"required"`
}

func (LoginRequest) MissingMessage([]string) string { return "Email and password are required" }

// LoginAccount is the registration row consulted before a password check.
type LoginAccount struct {
	RegID        int64
	PasswordHash string
	UserType     string
	IsApproved   int64
	IsDeleted    int64
}

// AccountSummary is what the token and the login response are built from.
type AccountSummary struct {
	RegID          int64
	LoginID        string
	UserType       string
	FullName       string
	Email          string
	ProfileImgPath string
}

type LoginUser struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	UserType   string `json:"userType"`
	Role       string `json:"role"`
	ProfilePic string `json:"profilePic"`
}

type LoginResult struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

type ForgotPasswordRequest struct {
	Email             string `json:"email" validate:"notblank"`
	MobileNo          string `json:"mobileNo" validate:"notblank"`
	FavoriteFood      string `json:"favoriteFood"`
	ChildhoodNickname string `json:"childhoodNickname"`
	MotherMaidenName  string `json:"motherMaidenName"`
	Hobbies           string `json:"hobbies"`
}

func (ForgotPasswordRequest) MissingMessage([]string) string {
	return "Email and mobile number are required"
}

// Security-answer check statuses returned by sp_checkupdate_forgotpassword.
const (
	ForgotStatusPass    = "PASS"
	ForgotStatusFail    = "FAIL"
	ForgotStatusInvalid = "INVALID EMAIL OR MOBILE NO"
)

type ForgotPasswordResult struct {
	RegID          int64  `json:"reg_id"`
	MatchedAnswers int64  `json:"matched_answers"`
	Status         string `json:"status"`
}

type ResetPasswordRequest struct {
	RegID           FlexInt `json:"regId" validate:"required,gt=0" msg:"regId must be a positive integer"`
	NewPassword     string  `json:"newPassword" validate:"min=8" msg:"Password must be at least 8 characters long"`
	ConfirmPassword string  `json:"confirmPassword" validate:"eqfield=NewPassword" msg:"Passwords do not match."`
	Status          string  `json:"status"`
}

func (ResetPasswordRequest) MissingMessage([]string) string { return "Registration ID is required." }
