package services

import (
	"strings"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain/models"
)

const (
	DefaultPage   = 1
	DefaultLimit  = 10
	DefaultSortBy = "fullName"
)

// BindFilter applies defaults to a search body: page 1, limit 10, sortBy fullName, ASC.
// Blank text and absent ids mean "no filter". Page and limit below 1 or an unknown sort
// direction are rejected before the store is called.
func BindFilter(in models.FilterInput) (models.FilterCriteria, error) {
	f := models.FilterCriteria{
		SearchKey:       in.SearchKey.Trimmed(),
		DepartmentID:    in.DepartmentID.Ptr(),
		QualificationID: in.QualificationID.Ptr(),
		SewaLocationID:  in.SewaLocationID.Ptr(),
		CityID:          in.CityID.Ptr(),
		StateID:         in.StateID.Ptr(),
		IsPresent:       flagPtr(in.IsPresent),
		PassEntry:       flagPtr(in.PassEntry),
		Page:            DefaultPage,
		Limit:           DefaultLimit,
		SortBy:          DefaultSortBy,
		SortOrder:       domain.SortAsc,
	}

	if in.Page.Valid {
		if in.Page.Value < 1 {
			return models.FilterCriteria{}, domain.ValidationError{Field: "page", Msg: "must be at least 1"}
		}
		f.Page = in.Page.Value
	}
	if in.Limit.Valid {
		if in.Limit.Value < 1 {
			return models.FilterCriteria{}, domain.ValidationError{Field: "limit", Msg: "must be at least 1"}
		}
		f.Limit = in.Limit.Value
	}
	if p := in.SortBy.Trimmed(); p != nil {
		f.SortBy = *p
	}
	if p := in.SortOrder.Trimmed(); p != nil {
		order := strings.ToUpper(*p)
		if order != domain.SortAsc && order != domain.SortDesc {
			return models.FilterCriteria{}, domain.ValidationError{Field: "sortOrder", Msg: "must be ASC or DESC"}
		}
		f.SortOrder = order
	}
	return f, nil
}

func flagPtr(f models.FlexFlag) *bool {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}
