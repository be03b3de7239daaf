package models

// RegistrationForm is the multipart registration body. Every field arrives as text.
type RegistrationForm struct {
	UserType          string `form:"userType" json:"userType"`
	LoginID           string `form:"loginId" json:"loginId"`
	Title             string `form:"title" json:"title"`
	FullName          string `form:"fullName" json:"fullName" validate:"required"`
	Email             string `form:"email" json:"email" validate:"required,emailaddr"`
	Password          string `form:"password" json:"password" validate:"required,min=8" msg:"Password must be at least 8 characters long"`
	ConfirmPassword   string `form:"confirmPassword" json:"confirmPassword" validate:"required,eqfield=Password" msg:"Passwords do not match"`
	MobileNo          string `form:"mobileNo" json:"mobileNo" validate:"required,mobile"`
	DateOfBirth       string `form:"dateOfBirth" json:"dateOfBirth" validate:"required,isodate" msg:"dateOfBirth: must be YYYY-MM-DD"`
	Gender            string `form:"gender" json:"gender"`
	Address           string `form:"address" json:"address"`
	StateID           string `form:"stateId" json:"stateId"`
	CityID            string `form:"cityId" json:"cityId"`
	QualificationID   string `form:"qualificationId" json:"qualificationId"`
	DepartmentID      string `form:"departmentId" json:"departmentId"`
	AvailableDayID    string `form:"availableDayId" json:"availableDayId"`
	ShiftTimeID       string `form:"shiftTimeId" json:"shiftTimeId"`
	IsPresent         string `form:"isPresent" json:"isPresent"`
	PassEntry         string `form:"passEntry" json:"passEntry"`
	SewaLocationID    string `form:"sewaLocationId" json:"sewaLocationId"`
	Remark            string `form:"remark" json:"remark"`
	Experience        string `form:"experience" json:"experience"`
	LastSewa          string `form:"lastSewa" json:"lastSewa"`
	RecommendedBy     string `form:"recommendedBy" json:"recommendedBy"`
	SamagamHeldIn     string `form:"samagamHeldIn" json:"samagamHeldIn"`
	IsDeleted         string `form:"isDeleted" json:"isDeleted"`
	FavoriteFood      string `form:"favoriteFood" json:"favoriteFood"`
	ChildhoodNickname string `form:"childhoodNickname" json:"childhoodNickname"`
	MotherMaidenName  string `form:"motherMaidenName" json:"motherMaidenName"`
	Hobbies           string `form:"hobbies" json:"hobbies"`
	IsApproved        string `form:"isAaproved" json:"isAaproved"`
}

// IsEmpty reports whether no field was submitted at all.
func (f RegistrationForm) IsEmpty() bool {
	return f == RegistrationForm{}
}

// UserProfileInput is the argument list of sp_save_user_profile, already parsed.
type UserProfileInput struct {
	Action            string
	ID                int64
	UserType          string
	LoginID           string
	Title             string
	FullName          string
	Email             string
	PasswordHash      string
	MobileNo          string
	DateOfBirth       string
	Gender            int64
	Address           string
	StateID           int64
	CityID            int64
	QualificationID   int64
	DepartmentID      int64
	AvailableDayID    int64
	ShiftTimeID       int64
	ProfileImgPath    string
	CertificatePath   string
	IsPresent         int64
	PassEntry         int64
	SewaLocationID    int64
	Remark            string
	TotalExperience   float64
	PrevSewaPerform   string
	RecommendedBy     string
	SamagamHeldIn     string
	IsDeleted         int64
	FavoriteFood      string
	ChildhoodNickname string
	MotherMaidenName  string
	Hobbies           string
	IsApproved        int64
}

// Args lists the 34 procedure arguments in positional order.
func (p UserProfileInput) Args() []any {
	return []any{
		p.Action, p.ID, p.UserType, p.LoginID, p.Title, p.FullName, p.Email, p.PasswordHash,
		p.MobileNo, p.DateOfBirth, p.Gender, p.Address, p.StateID, p.CityID, p.QualificationID,
		p.DepartmentID, p.AvailableDayID, p.ShiftTimeID, p.ProfileImgPath, p.CertificatePath,
		p.IsPresent, p.PassEntry, p.SewaLocationID, p.Remark, p.TotalExperience, p.PrevSewaPerform,
		p.RecommendedBy, p.SamagamHeldIn, p.IsDeleted, p.FavoriteFood, p.ChildhoodNickname,
		p.MotherMaidenName, p.Hobbies, p.IsApproved,
	}
}

type RegistrationResult struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	UserType     string `json:"userType"`
	LoginID      string `json:"loginId"`
	ProfileImage string `json:"profileImage"`
	Certificate  string `json:"certificate"`
	IsApproved   int64  `json:"isAaproved"`
}

type DropdownData struct {
	States         []Record `json:"states"`
	Departments    []Record `json:"departments"`
	Qualifications []Record `json:"qualifications"`
	SewaLocations  []Record `json:"sewaLocations"`
}

type CheckEmailRequest struct {
	Email string `json:"email"`
}
