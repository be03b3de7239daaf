package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf16"

	"go.uber.org/zap"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain/models"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/repositories"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/utils"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/validation"
)

type DashboardStore interface {
	Stats(ctx context.Context) (repositories.Totals, []models.Record, error)
	UserProfile(ctx context.Context, userID int64) (models.Record, bool, error)
	EmailTaken(ctx context.Context, email string, userID int64) (bool, error)
	UpdateProfile(ctx context.Context, userID int64, in models.ProfileUpdate) (int64, error)
	UpdatePresence(ctx context.Context, userID int64, in models.PresenceUpdate) (int64, error)
	AdminSummary(ctx context.Context) (models.Record, error)
}

var departmentPalette = []string{
	"#EC4899", "#3B82F6", "#F59E0B", "#10B981", "#8B5CF6", "#06B6D4",
	"#EF4444", "#84CC16", "#F97316", "#6366F1", "#EC4899", "#14B8A6",
}

type DashboardService struct {
	Repo      DashboardStore
	RequestID string
	Timeout   time.Duration
	Now       func() time.Time
}

func (s DashboardService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Stats returns overall counters and one coloured entry per department.
func (s DashboardService) Stats(ctx context.Context, userID int64) (models.DashboardStats, error) {
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	totals, depts, err := s.Repo.Stats(ctx)
	if err != nil {
		utils.LogFailure(s.RequestID, "dashboard", "stats", err)
		return models.DashboardStats{}, err
	}

	stats := make([]models.DepartmentStat, 0, len(depts))
	for i, d := range depts {
		title := d.Text("title")
		if title == "" {
			title = fmt.Sprintf("Department %d", i+1)
		}
		stats = append(stats, models.DepartmentStat{
			Title: title,
			Value: d.Int64("value"),
			Color: DepartmentColor(title),
		})
	}
	return models.DashboardStats{
		TotalUsers:          totals.TotalUsers,
		RecentRegistrations: totals.RecentRegistrations,
		Stats:               stats,
		DepartmentStats:     stats,
		LastUpdated:         s.now().UTC(),
		FetchedBy:           userID,
	}, nil
}

// DepartmentColor picks a palette entry from the 32-bit "h*31 + c" hash of name's UTF-16 units,
// so a department keeps its colour across requests and clients.
func DepartmentColor(name string) string {
	var h int32
	for _, u := range utf16.Encode([]rune(name)) {
		h = (h << 5) - h + int32(u)
	}
	n := int64(h)
	if n < 0 {
		n = -n
	}
	return departmentPalette[n%int64(len(departmentPalette))]
}

// Profile returns the shaped profile of userID.
func (s DashboardService) Profile(ctx context.Context, userID int64) (models.Profile, error) {
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	row, ok, err := s.Repo.UserProfile(ctx, userID)
	if err != nil {
		utils.LogFailure(s.RequestID, "dashboard", "profile", err, zap.Int64("user_id", userID))
		return models.Profile{}, err
	}
	if !ok {
		return models.Profile{}, domain.NotFoundError{Resource: "user", Msg: "User not found"}
	}
	return ShapeProfile(row, s.now()), nil
}

// ShapeProfile derives the display profile from a sp_get_user_profile row.
func ShapeProfile(row models.Record, now time.Time) models.Profile {
	p := models.Profile{
		ID:            row.Int64("reg_id"),
		Name:          row.Text("full_name"),
		Title:         textOr(row, "Mr/Ms", "title"),
		Email:         row.Text("email"),
		Role:          "Medical Sewadar",
		Qualification: textOr(row, "Not specified", "qualification_name"),
		Department:    textOr(row, "Not assigned", "department_name"),
		Mobile:        row.Text("mobile_no"),
		Address:       textOr(row, "Not provided", "address"),
		PreviousSewa:  textOr(row, "None", "prev_sewa_perform"),
		RecommendedBy: textOr(row, "Not specified", "recom_by"),
		Experience:    int64(0),
	}
	if row.Text("user_type") == domain.UserTypeAdmin {
		p.Role = "Medical Administrator"
	}
	if img := row.Text("profile_img_path"); img != "" {
		p.ProfileImage = &img
	}
	if v, ok := row.Lookup("created_datetime"); ok {
		p.JoinedDate = v
	}
	if v, ok := row.Lookup("total_exp"); ok && v != nil && models.ScalarText(v) != "0" {
		p.Experience = v
	}

	city, state := row.Text("city_name"), row.Text("state_name")
	switch {
	case city != "" && state != "":
		p.Location = city + ", " + state
	case state != "":
		p.Location = state
	default:
		p.Location = "Not specified"
	}

	switch row.Int64("gender") {
	case 1:
		p.Gender = "Male"
	case 2:
		p.Gender = "Female"
	default:
		p.Gender = "Other"
	}

	if birth, ok := row.Time("dob", "date_of_birth"); ok {
		age := utils.AgeOn(birth, now)
		dob := utils.FormatDate(birth)
		p.Age = &age
		p.DateOfBirth = &dob
	}
	return p
}

func textOr(row models.Record, fallback string, keys ...string) string {
	if v := strings.TrimSpace(row.Text(keys...)); v != "" {
		return v
	}
	return fallback
}

// UpdateProfile edits the caller's own profile. A new email must not belong to someone else.
func (s DashboardService) UpdateProfile(ctx context.Context, userID int64, in models.ProfileUpdate) error {
	if err := validation.Struct(in); err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	if email := in.Email.Trimmed(); email != nil {
		taken, err := s.Repo.EmailTaken(ctx, *email, userID)
		if err != nil {
			utils.LogFailure(s.RequestID, "dashboard", "check_email_for_update", err)
			return err
		}
		if taken {
			return domain.ConflictError{Resource: "email", Msg: "Email address already taken"}
		}
	}

	affected, err := s.Repo.UpdateProfile(ctx, userID, in)
	if err != nil {
		utils.LogFailure(s.RequestID, "dashboard", "update_profile", err, zap.Int64("user_id", userID))
		return err
	}
	if affected == 0 {
		return domain.NotFoundError{Resource: "user", Msg: "User not found or no changes made"}
	}
	utils.LogEvent(s.RequestID, "dashboard", "update_profile", fmt.Sprintf("user_id=%d", userID))
	return nil
}

// UpdatePresence sets the presence and pass-entry flags of another user.
func (s DashboardService) UpdatePresence(ctx context.Context, userID int64, in models.PresenceUpdate) error {
	if userID <= 0 {
		return domain.ValidationError{Field: "userId", Msg: "must be a positive integer"}
	}
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	affected, err := s.Repo.UpdatePresence(ctx, userID, in)
	if err != nil {
		utils.LogFailure(s.RequestID, "dashboard", "update_presence", err, zap.Int64("user_id", userID))
		return err
	}
	if affected == 0 {
		return domain.NotFoundError{Resource: "user", Msg: "User not found"}
	}
	return nil
}

func (s DashboardService) AdminSummary(ctx context.Context) (models.AdminSummary, error) {
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	row, err := s.Repo.AdminSummary(ctx)
	if err != nil {
		utils.LogFailure(s.RequestID, "dashboard", "admin_summary", err)
		return models.AdminSummary{}, err
	}
	return models.AdminSummary{
		TotalUsers:          row.Int64("totalUsers", "total_users"),
		RecentRegistrations: row.Int64("recentRegistrations", "recent_registrations"),
		PresentUsers:        row.Int64("presentUsers", "present_users"),
		UsersWithPass:       row.Int64("usersWithPass", "users_with_pass"),
		AdminUsers:          row.Int64("adminUsers", "admin_users"),
		MedicalStaff:        row.Int64("medicalStaff", "medical_staff"),
		LastUpdated:         s.now().UTC(),
	}, nil
}

// ProfileCard renders the caller's profile as a one-page PDF.
func (s DashboardService) ProfileCard(ctx context.Context, userID int64) ([]byte, string, error) {
	p, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	buf, name, err := buildProfileCardPDF(p, s.now())
	if err != nil {
		utils.LogFailure(s.RequestID, "dashboard", "profile_card", err)
		return nil, "", domain.InternalError{Msg: "Failed to generate profile card", Err: err}
	}
	utils.LogEvent(s.RequestID, "dashboard", "profile_card", fmt.Sprintf("user_id=%d", userID))
	return buf, name, nil
}
