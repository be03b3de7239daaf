package domain

import "strings"

// ID is used across domain entities.
type ID int64

// User types stored in registration_tbl.user_type.
const (
	UserTypeAdmin        = "admin"
	UserTypeMedicalStaff = "ms"
)

// Sort directions understood by the search pipeline.
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// Identity carries the authenticated caller decoded from the bearer token.
type Identity struct {
	UserID   ID     `json:"userId"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
}

func (i Identity) IsAdmin() bool {
	return strings.EqualFold(strings.TrimSpace(i.UserType), UserTypeAdmin)
}
