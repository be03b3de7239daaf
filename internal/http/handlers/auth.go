package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain/models"
)

// POST /api/auth/login
func (a *API) Login(c *gin.Context) {
	var req models.LoginRequest
	if !requireJSON(c, &req) {
		return
	}
	res, err := a.authService(c).Login(c.Request.Context(), req, c.Request.UserAgent())
	if err != nil {
		a.fail(c, err, "Login failed")
		return
	}
	respond(c, http.StatusOK, true, "Login successful", res)
}

// POST /api/auth/forgot-password-validate
func (a *API) ValidateForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if !requireJSON(c, &req) {
		return
	}
	out, err := a.authService(c).ValidateForgotPassword(c.Request.Context(), req)
	if err != nil {
		a.fail(c, err, "Password validation failed")
		return
	}
	respond(c, http.StatusOK, out.Success, out.Message, out.Data)
}

// POST /api/auth/reset-password
func (a *API) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if !requireJSON(c, &req) {
		return
	}
	out, err := a.authService(c).ResetPassword(c.Request.Context(), req)
	if err != nil {
		a.fail(c, err, "Password reset failed")
		return
	}
	respond(c, http.StatusOK, out.Success, out.Message, out.Data)
}
