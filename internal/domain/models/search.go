package models

// FilterInput is the loosely typed search body as sent by the admin UI.
type FilterInput struct {
	SearchKey       FlexString `json:"searchKey"`
	DepartmentID    FlexInt    `json:"departmentId"`
	QualificationID FlexInt    `json:"qualificationId"`
	SewaLocationID  FlexInt    `json:"sewaLocationId"`
	CityID          FlexInt    `json:"cityId"`
	StateID         FlexInt    `json:"stateId"`
	IsPresent       FlexFlag   `json:"isPresent"`
	PassEntry       FlexFlag   `json:"passEntry"`
	Page            FlexInt    `json:"page"`
	Limit           FlexInt    `json:"limit"`
	SortBy          FlexString `json:"sortBy"`
	SortOrder       FlexString `json:"sortOrder"`
}

// FilterCriteria is the validated search. Nil pointers mean "no filter on this dimension".
type FilterCriteria struct {
	SearchKey       *string
	DepartmentID    *int64
	QualificationID *int64
	SewaLocationID  *int64
	CityID          *int64
	StateID         *int64
	IsPresent       *bool
	PassEntry       *bool
	Page            int64
	Limit           int64
	SortBy          string
	SortOrder       string
}

// WithPage returns a copy pointing at another page and page size.
func (f FilterCriteria) WithPage(page, limit int64) FilterCriteria {
	f.Page = page
	f.Limit = limit
	return f
}

// StoreArgs lists the sp_master_search arguments in positional order.
func (f FilterCriteria) StoreArgs() []any {
	return []any{
		strArg(f.SearchKey),
		intArg(f.DepartmentID),
		intArg(f.QualificationID),
		intArg(f.SewaLocationID),
		intArg(f.CityID),
		intArg(f.StateID),
		boolArg(f.IsPresent),
		boolArg(f.PassEntry),
		f.Page,
		f.Limit,
	}
}

func strArg(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func intArg(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

func boolArg(p *bool) any {
	if p == nil {
		return nil
	}
	if *p {
		return 1
	}
	return 0
}

// Pagination describes one page of a search.
type Pagination struct {
	CurrentPage      int64 `json:"current"`
	TotalPages       int64 `json:"total"`
	PageRecordCount  int64 `json:"count"`
	TotalRecordCount int64 `json:"totalRecords"`
}

// NewPagination derives the descriptor; totalPages = ceil(total/limit).
func NewPagination(page, limit, pageCount, total int64) Pagination {
	var pages int64
	if limit > 0 && total > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{
		CurrentPage:      page,
		TotalPages:       pages,
		PageRecordCount:  pageCount,
		TotalRecordCount: total,
	}
}

// SearchPage is the result of one master search call.
type SearchPage struct {
	Records    []Record   `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// SelectedUserUpdate is one row of a bulk edit from the search grid.
type SelectedUserUpdate struct {
	RegID           FlexInt  `json:"reg_id"`
	IsPresent       FlexFlag `json:"is_present"`
	PassEntry       FlexFlag `json:"pass_entry"`
	DepartmentID    FlexInt  `json:"department_id"`
	QualificationID FlexInt  `json:"qualification_id"`
}

type BulkUpdateRequest struct {
	Users []SelectedUserUpdate `json:"users"`
}

// ApproveResult reports the outcome of sp_update_IsApproved.
type ApproveResult struct {
	RegID        int64 `json:"regId"`
	AffectedRows int64 `json:"affectedRows"`
}
