package v1

import (
	"net/http"
	"time"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := protected.Group("/jobs")
	{
		jobs.POST("", handler.Create)
		jobs.GET("", handler.List)
		jobs.GET("/:id", handler.Get)
		jobs.PUT("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
	}
}

type CreateJobRequest struct {
	Title        string    `json:"title" binding:"required,min=2"`
	Description  string    `json:"description"`
	Type         string    `json:"type" binding:"required,oneof=FULL_TIME PART_TIME HYBRID REMOTE"`
	ShiftType    string    `json:"shift_type" binding:"required,oneof=DAY NIGHT MIXED"`
	DepartmentID string    `json:"department_id" binding:"required,uuid"`
	Location     string    `json:"location"`
	ExpiryDate   time.Time `json:"expiry_date" binding:"required"`
}

// UpdateJobRequest is patch-style: omitted fields keep their stored
// values. The department cannot be changed after creation.
type UpdateJobRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=2"`
	Description *string    `json:"description"`
	Type        *string    `json:"type" binding:"omitempty,oneof=FULL_TIME PART_TIME HYBRID REMOTE"`
	ShiftType   *string    `json:"shift_type" binding:"omitempty,oneof=DAY NIGHT MIXED"`
	Location    *string    `json:"location"`
	ExpiryDate  *time.Time `json:"expiry_date"`
}

// Create godoc
// @Summary      Create a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if !bindJSON(c, &req) {
		return
	}

	actorID := c.GetString(string(domain.KeyUserID))
	job := &domain.Job{
		Title:        req.Title,
		Description:  strPtr(req.Description),
		Type:         req.Type,
		ShiftType:    req.ShiftType,
		DepartmentID: req.DepartmentID,
		Location:     strPtr(req.Location),
		ExpiryDate:   req.ExpiryDate,
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), actorID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// List returns the caller's own jobs with departments attached.
func (h *JobHandler) List(c *gin.Context) {
	actorID := c.GetString(string(domain.KeyUserID))

	jobs, err := h.jobUC.ListMyJobs(c.Request.Context(), actorID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", jobs)
}

func (h *JobHandler) Get(c *gin.Context) {
	actorID := c.GetString(string(domain.KeyUserID))

	job, err := h.jobUC.GetJob(c.Request.Context(), actorID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

func (h *JobHandler) Update(c *gin.Context) {
	var req UpdateJobRequest
	if !bindJSON(c, &req) {
		return
	}

	actorID := c.GetString(string(domain.KeyUserID))
	patch := &domain.JobUpdate{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		ShiftType:   req.ShiftType,
		Location:    req.Location,
		ExpiryDate:  req.ExpiryDate,
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), actorID, c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

// Delete godoc
// @Summary      Delete a job
// @Description  Hard delete. Other jobs in the department are unaffected.
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	actorID := c.GetString(string(domain.KeyUserID))

	if err := h.jobUC.DeleteJob(c.Request.Context(), actorID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted", nil)
}
