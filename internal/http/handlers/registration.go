package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain/models"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/services"
)

// GET /api/registration/dropdown-data
func (a *API) DropdownData(c *gin.Context) {
	data, err := a.registrationService(c).DropdownData(c.Request.Context())
	if err != nil {
		a.fail(c, err, "Failed to fetch dropdown data")
		return
	}
	respond(c, http.StatusOK, true, "Dropdown data fetched successfully", data)
}

// GET /api/registration/cities/:stateId
func (a *API) Cities(c *gin.Context) {
	stateID, ok := positiveParam(c, "stateId")
	if !ok {
		RespondError(c, http.StatusBadRequest, "Valid state ID is required", nil)
		return
	}
	cities, err := a.registrationService(c).Cities(c.Request.Context(), stateID)
	if err != nil {
		a.fail(c, err, "Unable to fetch cities for the given state")
		return
	}
	msg := "Cities fetched successfully"
	if len(cities) == 0 {
		msg = "No cities found"
	}
	respond(c, http.StatusOK, true, msg, gin.H{"cities": cities, "count": len(cities)})
}

// POST /api/registration/check-email
func (a *API) CheckEmail(c *gin.Context) {
	var req models.CheckEmailRequest
	if !bindJSON(c, &req) {
		return
	}
	exists, err := a.registrationService(c).CheckEmail(c.Request.Context(), req.Email)
	if err != nil {
		a.fail(c, err, "Failed to check email")
		return
	}
	msg := "Email available"
	if exists {
		msg = "Email already exists"
	}
	respond(c, http.StatusOK, true, msg, gin.H{"exists": exists})
}

// POST /api/registration/register (multipart/form-data or JSON)
func (a *API) Register(c *gin.Context) {
	var form models.RegistrationForm
	if err := c.ShouldBind(&form); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid registration data", err)
		return
	}
	files := map[string]*multipart.FileHeader{}
	for _, field := range []string{services.FieldProfilePic, services.FieldCertificate} {
		fh, err := c.FormFile(field)
		if err == nil {
			files[field] = fh
		}
	}
	res, err := a.registrationService(c).Register(c.Request.Context(), form, files)
	if err != nil {
		a.fail(c, err, "User registration failed")
		return
	}
	respond(c, http.StatusCreated, true, "User registered successfully!", res)
}

// POST /api/registration/upload-profile
func (a *API) UploadProfile(c *gin.Context) {
	a.upload(c, services.FieldProfileImage, "Profile image uploaded successfully")
}

// POST /api/registration/upload-certificate
func (a *API) UploadCertificate(c *gin.Context) {
	a.upload(c, services.FieldCertificate, "Certificate uploaded successfully")
}

func (a *API) upload(c *gin.Context, field, okMessage string) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			RespondError(c, http.StatusBadRequest, "No file uploaded", nil)
			return
		}
		RespondError(c, http.StatusBadRequest, "Invalid upload", err)
		return
	}
	p, err := a.registrationService(c).Upload(field, fh)
	if err != nil {
		a.fail(c, err, "Upload failed")
		return
	}
	respond(c, http.StatusOK, true, okMessage, gin.H{"filePath": p})
}
