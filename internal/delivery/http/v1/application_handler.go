package v1

import (
	"net/http"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	appUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, appUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{appUC: appUC}

	protected.POST("/jobs/:id/apply", handler.Apply)
	protected.GET("/jobs/:id/candidates", handler.ListApplicants)
}

type ApplyRequest struct {
	CandidateID string `json:"candidate_id" binding:"required,uuid"`
}

// Apply godoc
// @Summary      Apply a candidate to a job
// @Description  The candidate's active resume is linked to the job atomically.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id           path      string        true  "Job ID"
// @Param        application  body      ApplyRequest  true  "Application JSON"
// @Success      201          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Failure      409          {object}  response.Response
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if !bindJSON(c, &req) {
		return
	}

	actorID := c.GetString(string(domain.KeyUserID))
	app, err := h.appUC.ApplyToJob(c.Request.Context(), actorID, c.Param("id"), req.CandidateID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate applied", app)
}

// ListApplicants returns the candidates who applied to the caller's job.
func (h *ApplicationHandler) ListApplicants(c *gin.Context) {
	actorID := c.GetString(string(domain.KeyUserID))

	candidates, err := h.appUC.ListJobApplicants(c.Request.Context(), actorID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job applicants", candidates)
}
