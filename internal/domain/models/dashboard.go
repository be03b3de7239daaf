package models

import "time"

type DepartmentStat struct {
	Title string `json:"title"`
	Value int64  `json:"value"`
	Color string `json:"color"`
}

type DashboardStats struct {
	TotalUsers          int64            `json:"totalUsers"`
	RecentRegistrations int64            `json:"recentRegistrations"`
	Stats               []DepartmentStat `json:"stats"`
	DepartmentStats     []DepartmentStat `json:"departmentStats"`
	LastUpdated         time.Time        `json:"lastUpdated"`
	FetchedBy           int64            `json:"fetchedBy"`
}

// Profile is the shaped view of sp_get_user_profile.
type Profile struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Title         string  `json:"title"`
	Email         string  `json:"email"`
	Role          string  `json:"role"`
	Qualification string  `json:"qualification"`
	Department    string  `json:"department"`
	ProfileImage  *string `json:"profileImage"`
	JoinedDate    any     `json:"joinedDate"`
	Location      string  `json:"location"`
	Mobile        string  `json:"mobile"`
	Address       string  `json:"address"`
	Age           *int    `json:"age"`
	Gender        string  `json:"gender"`
	DateOfBirth   *string `json:"dateOfBirth"`
	Experience    any     `json:"experience"`
	PreviousSewa  string  `json:"previousSewa"`
	RecommendedBy string  `json:"recommendedBy"`
}

type ProfileUpdate struct {
	FullName        FlexString `json:"fullName"`
	Email           FlexString `json:"email" validate:"omitempty,emailaddr"`
	MobileNo        FlexString `json:"mobileNo" validate:"omitempty,mobile"`
	Address         FlexString `json:"address"`
	StateID         FlexInt    `json:"stateId"`
	CityID          FlexInt    `json:"cityId"`
	DepartmentID    FlexInt    `json:"departmentId"`
	QualificationID FlexInt    `json:"qualificationId"`
}

type PresenceUpdate struct {
	IsPresent FlexFlag `json:"isPresent"`
	PassEntry FlexFlag `json:"passEntry"`
}

type AdminSummary struct {
	TotalUsers          int64     `json:"totalUsers"`
	RecentRegistrations int64     `json:"recentRegistrations"`
	PresentUsers        int64     `json:"presentUsers"`
	UsersWithPass       int64     `json:"usersWithPass"`
	AdminUsers          int64     `json:"adminUsers"`
	MedicalStaff        int64     `json:"medicalStaff"`
	LastUpdated         time.Time `json:"lastUpdated"`
}
