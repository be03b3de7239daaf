package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain/models"
)

// GET /api/dashboard/stats
func (a *API) DashboardStats(c *gin.Context) {
	id, ok := currentIdentity(c)
	if !ok {
		return
	}
	stats, err := a.dashboardService(c).Stats(c.Request.Context(), int64(id.UserID))
	if err != nil {
		a.fail(c, err, "Failed to fetch dashboard statistics")
		return
	}
	respond(c, http.StatusOK, true, "Dashboard statistics fetched successfully", stats)
}

// GET /api/dashboard/profile
func (a *API) Profile(c *gin.Context) {
	id, ok := currentIdentity(c)
	if !ok {
		return
	}
	p, err := a.dashboardService(c).Profile(c.Request.Context(), int64(id.UserID))
	if err != nil {
		a.fail(c, err, "Failed to fetch profile")
		return
	}
	respond(c, http.StatusOK, true, "Profile fetched successfully", p)
}

// GET /api/dashboard/profile/card
func (a *API) ProfileCard(c *gin.Context) {
	id, ok := currentIdentity(c)
	if !ok {
		return
	}
	buf, filename, err := a.dashboardService(c).ProfileCard(c.Request.Context(), int64(id.UserID))
	if err != nil {
		a.fail(c, err, "Failed to generate profile card")
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", buf)
}

// PUT /api/dashboard/profile
func (a *API) UpdateProfile(c *gin.Context) {
	id, ok := currentIdentity(c)
	if !ok {
		return
	}
	var in models.ProfileUpdate
	if !requireJSON(c, &in) {
		return
	}
	if err := a.dashboardService(c).UpdateProfile(c.Request.Context(), int64(id.UserID), in); err != nil {
		a.fail(c, err, "Failed to update profile")
		return
	}
	respond(c, http.StatusOK, true, "Profile updated successfully", nil)
}

// PUT /api/dashboard/users/:userId/presence
func (a *API) UpdatePresence(c *gin.Context) {
	userID, ok := positiveParam(c, "userId")
	if !ok {
		RespondError(c, http.StatusBadRequest, "Valid user ID is required", nil)
		return
	}
	var in models.PresenceUpdate
	if !bindJSON(c, &in) {
		return
	}
	if err := a.dashboardService(c).UpdatePresence(c.Request.Context(), userID, in); err != nil {
		a.fail(c, err, "Failed to update presence")
		return
	}
	respond(c, http.StatusOK, true, "User presence updated successfully", nil)
}

// GET /api/dashboard/summary
func (a *API) AdminSummary(c *gin.Context) {
	summary, err := a.dashboardService(c).AdminSummary(c.Request.Context())
	if err != nil {
		a.fail(c, err, "Failed to fetch admin summary")
		return
	}
	respond(c, http.StatusOK, true, "Admin summary fetched successfully", summary)
}
