package v1

import (
	"net/http"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ShortListHandler struct {
	shortListUC domain.ShortListUsecase
}

func NewShortListHandler(protected *gin.RouterGroup, shortListUC domain.ShortListUsecase) {
	handler := &ShortListHandler{shortListUC: shortListUC}

	shortlists := protected.Group("/shortlists")
	{
		shortlists.POST("", handler.Create)
		shortlists.GET("", handler.List)
		shortlists.DELETE("/:id", handler.Delete)
	}
}

type ShortListRequest struct {
	CandidateID string `json:"candidate_id" binding:"required,uuid"`
	JobID       string `json:"job_id" binding:"required,uuid"`
}

// Create godoc
// @Summary      Shortlist a candidate for a job
// @Tags         shortlists
// @Accept       json
// @Produce      json
// @Param        shortlist  body      ShortListRequest  true  "Shortlist JSON"
// @Success      201        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Failure      409        {object}  response.Response
// @Router       /shortlists [post]
// @Security     BearerAuth
func (h *ShortListHandler) Create(c *gin.Context) {
	var req ShortListRequest
	if !bindJSON(c, &req) {
		return
	}

	actorID := c.GetString(string(domain.KeyUserID))
	entry, err := h.shortListUC.ShortListCandidate(c.Request.Context(), actorID, req.CandidateID, req.JobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate shortlisted", entry)
}

// List returns the caller's shortlist entries.
func (h *ShortListHandler) List(c *gin.Context) {
	actorID := c.GetString(string(domain.KeyUserID))

	entries, err := h.shortListUC.ListMyShortList(c.Request.Context(), actorID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Shortlist", entries)
}

func (h *ShortListHandler) Delete(c *gin.Context) {
	actorID := c.GetString(string(domain.KeyUserID))

	if err := h.shortListUC.RemoveFromShortList(c.Request.Context(), actorID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Removed from shortlist", nil)
}
