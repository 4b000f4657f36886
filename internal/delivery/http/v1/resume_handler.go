package v1

import (
	"io"
	"net/http"
	"strconv"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"
	"go-ats-backend/pkg/logger"
	"go-ats-backend/pkg/security"
	"go-ats-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
	limiter  *security.UploadLimiter
}

func NewResumeHandler(protected *gin.RouterGroup, resumeUC domain.ResumeUsecase, limiter *security.UploadLimiter) {
	handler := &ResumeHandler{resumeUC: resumeUC, limiter: limiter}

	protected.POST("/resumes", handler.Upload)
	protected.POST("/jobs/:id/resumes/:resumeID", handler.AttachToJob)
}

// Upload godoc
// @Summary      Upload a resume PDF
// @Description  Multipart upload, max 5MB, field "file" plus "candidate_id".
// @Tags         resumes
// @Accept       multipart/form-data
// @Produce      json
// @Param        file          formData  file    true  "PDF file"
// @Param        candidate_id  formData  string  true  "Candidate ID"
// @Success      201           {object}  response.Response
// @Failure      400           {object}  response.Response
// @Failure      502           {object}  response.Response
// @Router       /resumes [post]
// @Security     BearerAuth
func (h *ResumeHandler) Upload(c *gin.Context) {
	actorID := c.GetString(string(domain.KeyUserID))
	allowed, retryAfter, err := h.limiter.AllowUpload(c.Request.Context(), c.ClientIP(), actorID)
	if err != nil {
		logger.Log.Warn("upload rate limit check degraded", "error", err)
	}
	if !allowed {
		c.Header("Retry-After", strconv.Itoa(retryAfter))
		response.Error(c, http.StatusTooManyRequests, "Too many uploads, slow down", nil)
		return
	}

	candidateID := c.PostForm("candidate_id")
	if candidateID == "" {
		c.Error(apperror.BadRequest("candidate_id is required"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("file is required"))
		return
	}
	if fileHeader.Size > storage.MaxResumeSize {
		c.Error(apperror.BadRequest("file exceeds the 5MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, storage.MaxResumeSize+1))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	resume, err := h.resumeUC.UploadResume(c.Request.Context(), candidateID, data)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Resume uploaded", resume)
}

// AttachToJob links an existing resume to one of the caller's jobs.
func (h *ResumeHandler) AttachToJob(c *gin.Context) {
	actorID := c.GetString(string(domain.KeyUserID))

	err := h.resumeUC.AttachToJob(c.Request.Context(), actorID, c.Param("id"), c.Param("resumeID"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume attached to job", nil)
}
