package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain/models"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/http/middleware"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/services"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/utils"
)

// POST /api/search/master
func (a *API) MasterSearch(c *gin.Context) {
	var in models.FilterInput
	if !bindJSON(c, &in) {
		return
	}
	f, err := services.BindFilter(in)
	if err != nil {
		utils.LogFailure(middleware.GetRequestID(c), "search", "master_search_filter", err)
		a.fail(c, err, "Failed to perform master search")
		return
	}
	page, err := a.searchService(c).Search(c.Request.Context(), f)
	if err != nil {
		a.fail(c, err, "Failed to perform master search")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    fmt.Sprintf("Found %d record(s)", page.Pagination.TotalRecordCount),
		"data":       page.Records,
		"pagination": page.Pagination,
	})
}

// POST /api/search/export
func (a *API) ExportSearch(c *gin.Context) {
	var in models.FilterInput
	if !bindJSON(c, &in) {
		return
	}
	f, err := services.BindFilter(in)
	if err != nil {
		utils.LogFailure(middleware.GetRequestID(c), "search", "export_filter", err)
		a.fail(c, err, "Export failed")
		return
	}
	records, err := a.searchService(c).SearchAll(c.Request.Context(), f)
	if err != nil {
		a.fail(c, err, "Export failed")
		return
	}
	buf, err := services.ExportService{RequestID: middleware.GetRequestID(c)}.Build(records)
	if domain.IsEmptyResult(err) {
		c.String(http.StatusNotFound, "No data to export")
		return
	}
	if err != nil {
		a.fail(c, err, "Export failed")
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+services.ExportFilename)
	c.Data(http.StatusOK, services.XLSXContentType, buf)
}

// POST /api/search/approve/:regId
func (a *API) ApproveUser(c *gin.Context) {
	regID, ok := positiveParam(c, "regId")
	if !ok {
		RespondError(c, http.StatusBadRequest, "Valid registration ID is required", nil)
		return
	}
	res, err := a.searchService(c).Approve(c.Request.Context(), regID)
	if err != nil {
		a.fail(c, err, "Approval failed")
		return
	}
	respond(c, http.StatusOK, true, "User approved successfully", res)
}

type batchFailureDTO struct {
	RegID int64  `json:"regId"`
	Error string `json:"error"`
}

// PUT /api/search/update
func (a *API) UpdateSelected(c *gin.Context) {
	var req models.BulkUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	updated, err := a.searchService(c).UpdateSelected(c.Request.Context(), req.Users)
	if batch, ok := domain.AsPartialBatch(err); ok {
		failed := make([]batchFailureDTO, 0, len(batch.Failures))
		for _, f := range batch.Failures {
			msg := "update failed"
			if a.ExposeErrors {
				msg = f.Err.Error()
			}
			failed = append(failed, batchFailureDTO{RegID: f.ID, Error: msg})
		}
		status := http.StatusMultiStatus
		message := fmt.Sprintf("%d of %d users updated", updated, batch.Total)
		if batch.AllFailed() {
			status = http.StatusInternalServerError
			message = "Update failed"
		}
		respond(c, status, false, message, gin.H{"updated": updated, "failed": failed})
		return
	}
	if err != nil {
		a.fail(c, err, "Update failed")
		return
	}
	respond(c, http.StatusOK, true, "Users updated successfully", gin.H{"updated": updated})
}

// GET /api/search/sewa-locations
func (a *API) SewaLocations(c *gin.Context) {
	list, err := a.searchService(c).SewaLocations(c.Request.Context())
	if err != nil {
		a.fail(c, err, "Failed to fetch sewa locations")
		return
	}
	respond(c, http.StatusOK, true, "Sewa locations fetched successfully", list)
}
