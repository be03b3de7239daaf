package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain/models"
)

// PUT /api/user/update-role
func (a *API) UpdateUserRole(c *gin.Context) {
	var req models.RoleUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := a.userService(c).UpdateRole(c.Request.Context(), req)
	if err != nil {
		a.fail(c, err, "Failed to update user role")
		return
	}
	respond(c, http.StatusOK, true, res.Message, res)
}
