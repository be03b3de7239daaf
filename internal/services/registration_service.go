package services

import (
	"context"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain/models"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/utils"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/validation"
)

type RegistrationStore interface {
	DropdownData(ctx context.Context) (models.DropdownData, error)
	Cities(ctx context.Context, stateID int64) ([]models.Record, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	MobileExists(ctx context.Context, mobile string) (bool, error)
	SaveUserProfile(ctx context.Context, in models.UserProfileInput) error
}

// FileStore persists uploads and returns their public path.
type FileStore interface {
	Save(field string, fh *multipart.FileHeader) (string, error)
	Remove(publicPath string) error
}

// Upload field names accepted by the registration endpoints.
const (
	FieldProfilePic   = "profilePic"
	FieldProfileImage = "profileImage"
	FieldCertificate  = "certificate"
)

type RegistrationService struct {
	Repo      RegistrationStore
	Files     FileStore
	RequestID string
	Timeout   time.Duration
	Cost      int
	Now       func() time.Time
}

func (s RegistrationService) DropdownData(ctx context.Context) (models.DropdownData, error) {
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()
	data, err := s.Repo.DropdownData(ctx)
	if err != nil {
		utils.LogFailure(s.RequestID, "registration", "dropdown_data", err)
	}
	return data, err
}

func (s RegistrationService) Cities(ctx context.Context, stateID int64) ([]models.Record, error) {
	if stateID <= 0 {
		return nil, domain.ValidationError{Msg: "Valid state ID is required"}
	}
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()
	cities, err := s.Repo.Cities(ctx, stateID)
	if err != nil {
		utils.LogFailure(s.RequestID, "registration", "cities", err)
		return nil, err
	}
	if cities == nil {
		cities = []models.Record{}
	}
	return cities, nil
}

// CheckEmail reports whether an active registration already uses email.
func (s RegistrationService) CheckEmail(ctx context.Context, email string) (bool, error) {
	if strings.TrimSpace(email) == "" {
		return false, domain.ValidationError{Msg: "Email is required"}
	}
	clean := utils.SanitizeInput(strings.ToLower(email))
	if err := validation.Var(clean, "emailaddr", "Invalid email format"); err != nil {
		return false, err
	}
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()
	exists, err := s.Repo.EmailExists(ctx, clean)
	if err != nil {
		utils.LogFailure(s.RequestID, "registration", "check_email", err)
	}
	return exists, err
}

// Upload stores a single file posted to the standalone upload endpoints.
func (s RegistrationService) Upload(field string, fh *multipart.FileHeader) (string, error) {
	p, err := s.Files.Save(field, fh)
	if err != nil {
		utils.LogFailure(s.RequestID, "registration", "upload", err)
		return "", err
	}
	utils.LogEvent(s.RequestID, "registration", "upload", "stored "+p)
	return p, nil
}

// Register validates the form, rejects duplicate email/mobile, stores the optional
// profilePic/certificate files and saves the profile. Stored files are removed again
// when saving fails.
func (s RegistrationService) Register(ctx context.Context, form models.RegistrationForm, files map[string]*multipart.FileHeader) (models.RegistrationResult, error) {
	if form.IsEmpty() {
		return models.RegistrationResult{}, domain.ValidationError{Msg: "No registration data provided"}
	}
	form = sanitizeForm(form)
	if err := validation.Struct(form); err != nil {
		return models.RegistrationResult{}, err
	}

	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	if err := s.checkDuplicates(ctx, form.Email, form.MobileNo); err != nil {
		return models.RegistrationResult{}, err
	}

	var stored []string
	cleanup := func() {
		for _, p := range stored {
			_ = s.Files.Remove(p)
		}
	}
	paths := map[string]string{}
	for _, field := range []string{FieldProfilePic, FieldCertificate} {
		fh := files[field]
		if fh == nil {
			continue
		}
		p, err := s.Files.Save(field, fh)
		if err != nil {
			cleanup()
			return models.RegistrationResult{}, err
		}
		stored = append(stored, p)
		paths[field] = p
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), s.cost())
	if err != nil {
		cleanup()
		return models.RegistrationResult{}, domain.InternalError{Msg: "Failed to hash password", Err: err}
	}

	in := s.profileInput(form, string(hash), paths[FieldProfilePic], paths[FieldCertificate])
	if err := s.Repo.SaveUserProfile(ctx, in); err != nil {
		cleanup()
		utils.LogFailure(s.RequestID, "registration", "register", err)
		return models.RegistrationResult{}, err
	}

	utils.LogEvent(s.RequestID, "registration", "register", "registered "+in.LoginID)
	return models.RegistrationResult{
		FullName:     in.FullName,
		Email:        in.Email,
		UserType:     in.UserType,
		LoginID:      in.LoginID,
		ProfileImage: in.ProfileImgPath,
		Certificate:  in.CertificatePath,
		IsApproved:   in.IsApproved,
	}, nil
}

// checkDuplicates looks up email and mobile concurrently.
func (s RegistrationService) checkDuplicates(ctx context.Context, email, mobile string) error {
	var emailTaken, mobileTaken bool
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		emailTaken, err = s.Repo.EmailExists(gctx, email)
		return err
	})
	g.Go(func() error {
		var err error
		mobileTaken, err = s.Repo.MobileExists(gctx, mobile)
		return err
	})
	if err := g.Wait(); err != nil {
		utils.LogFailure(s.RequestID, "registration", "duplicate_check", err)
		return err
	}
	if emailTaken {
		return domain.ConflictError{Resource: "email", Msg: "Email already registered"}
	}
	if mobileTaken {
		return domain.ConflictError{Resource: "mobile", Msg: "Mobile number already registered"}
	}
	return nil
}

func (s RegistrationService) profileInput(f models.RegistrationForm, hash, profilePath, certPath string) models.UserProfileInput {
	userType := f.UserType
	if userType == "" {
		userType = domain.UserTypeMedicalStaff
	}
	title := f.Title
	if title == "" {
		title = "Mr"
	}
	loginID := f.LoginID
	if loginID == "" {
		loginID = s.generateLoginID(userType)
	}
	return models.UserProfileInput{
		Action:            "insert",
		ID:                0,
		UserType:          userType,
		LoginID:           loginID,
		Title:             title,
		FullName:          f.FullName,
		Email:             f.Email,
		PasswordHash:      hash,
		MobileNo:          f.MobileNo,
		DateOfBirth:       f.DateOfBirth,
		Gender:            ParseGender(f.Gender),
		Address:           f.Address,
		StateID:           intOr(f.StateID, 0),
		CityID:            intOr(f.CityID, 0),
		QualificationID:   intOr(f.QualificationID, 0),
		DepartmentID:      intOr(f.DepartmentID, 0),
		AvailableDayID:    intOr(f.AvailableDayID, 1),
		ShiftTimeID:       intOr(f.ShiftTimeID, 1),
		ProfileImgPath:    profilePath,
		CertificatePath:   certPath,
		IsPresent:         intOr(f.IsPresent, 0),
		PassEntry:         intOr(f.PassEntry, 0),
		SewaLocationID:    intOr(f.SewaLocationID, 1),
		Remark:            f.Remark,
		TotalExperience:   floatOr(f.Experience, 0),
		PrevSewaPerform:   f.LastSewa,
		RecommendedBy:     f.RecommendedBy,
		SamagamHeldIn:     f.SamagamHeldIn,
		IsDeleted:         intOr(f.IsDeleted, 0),
		FavoriteFood:      f.FavoriteFood,
		ChildhoodNickname: f.ChildhoodNickname,
		MotherMaidenName:  f.MotherMaidenName,
		Hobbies:           f.Hobbies,
		IsApproved:        intOr(f.IsApproved, 0),
	}
}

// generateLoginID builds "<userType>_<unixMillis>_<5 chars>".
func (s RegistrationService) generateLoginID(userType string) string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:5]
	return userType + "_" + strconv.FormatInt(now().UnixMilli(), 10) + "_" + suffix
}

func (s RegistrationService) cost() int {
	if s.Cost > 0 {
		return s.Cost
	}
	return BcryptCost
}

// ParseGender maps form text to the stored code: female 2, other/others 3, anything else 1.
// Numeric codes pass through.
func ParseGender(raw string) int64 {
	switch v := strings.ToLower(strings.TrimSpace(raw)); v {
	case "female", "2":
		return 2
	case "other", "others", "3":
		return 3
	default:
		return 1
	}
}

func sanitizeForm(f models.RegistrationForm) models.RegistrationForm {
	f.FullName = utils.SanitizeInput(f.FullName)
	f.Email = utils.SanitizeInput(strings.ToLower(f.Email))
	f.MobileNo = utils.SanitizeInput(f.MobileNo)
	f.Address = utils.SanitizeInput(f.Address)
	f.UserType = utils.SanitizeInput(f.UserType)
	f.Title = utils.SanitizeInput(f.Title)
	f.LoginID = utils.SanitizeInput(f.LoginID)
	f.DateOfBirth = strings.TrimSpace(f.DateOfBirth)
	f.LastSewa = utils.SanitizeInput(f.LastSewa)
	f.RecommendedBy = utils.SanitizeInput(f.RecommendedBy)
	f.SamagamHeldIn = utils.SanitizeInput(f.SamagamHeldIn)
	f.Remark = utils.SanitizeInput(f.Remark)
	f.FavoriteFood = utils.SanitizeInput(f.FavoriteFood)
	f.ChildhoodNickname = utils.SanitizeInput(f.ChildhoodNickname)
	f.MotherMaidenName = utils.SanitizeInput(f.MotherMaidenName)
	f.Hobbies = utils.SanitizeInput(f.Hobbies)
	return f
}

// intOr parses s; blank, unparseable and zero values fall back to def.
func intOr(s string, def int64) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n == 0 {
		return def
	}
	return n
}

func floatOr(s string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f == 0 {
		return def
	}
	return f
}
