package models

// RoleUpdateRequest edits one or several registrations at once; RegID may be a list.
type RoleUpdateRequest struct {
	RegID          IDList     `json:"regId" validate:"required"`
	IsPresent      FlexFlag   `json:"isPresent"`
	PassEntry      FlexFlag   `json:"passEntry"`
	IsDeleted      FlexFlag   `json:"isDeleted"`
	IsAdmin        FlexFlag   `json:"isAdmin"`
	Remark         FlexString `json:"remark"`
	SewaLocationID FlexInt    `json:"sewaLocationId"`
	SamagamHeldIn  FlexString `json:"samagamHeldIn"`
}

func (RoleUpdateRequest) MissingMessage([]string) string { return "Registration ID is required." }

// Args lists the sp_update_master_user_role arguments in positional order.
func (r RoleUpdateRequest) Args() []any {
	return []any{
		r.RegID.String(),
		r.IsPresent.Arg(),
		r.PassEntry.Arg(),
		r.IsDeleted.Arg(),
		r.IsAdmin.Arg(),
		r.Remark.Arg(),
		r.SewaLocationID.Arg(),
		r.SamagamHeldIn.Arg(),
	}
}

type RoleUpdateResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	AffectedRows int64  `json:"affectedRows"`
}
