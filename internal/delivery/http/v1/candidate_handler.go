package v1

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(protected *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := protected.Group("/candidates")
	{
		candidates.POST("", handler.Create)
		candidates.GET("", handler.List)
		candidates.GET("/:id", handler.Get)
		candidates.PUT("/:id", handler.Update)
	}
}

type CandidateRequest struct {
	Name               string          `json:"name" binding:"required,min=2"`
	Email              string          `json:"email" binding:"omitempty,email"`
	Phone              string          `json:"phone" binding:"omitempty,valid_phone"`
	Address            string          `json:"address"`
	City               string          `json:"city"`
	State              string          `json:"state"`
	Country            string          `json:"country"`
	ZipCode            string          `json:"zip_code"`
	Age                *int            `json:"age" binding:"omitempty,gt=0"`
	Dob                *time.Time      `json:"dob"`
	Gender             string          `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER"`
	JobExperience      json.RawMessage `json:"job_experience"`
	TotalExperience    json.RawMessage `json:"total_experience"`
	RelevantExperience json.RawMessage `json:"relevant_experience"`
	Skills             json.RawMessage `json:"skills"`
	Pros               []string        `json:"pros"`
	Cons               []string        `json:"cons"`
	Score              *float64        `json:"score" binding:"omitempty,gt=0"`
}

func (r *CandidateRequest) toDomain() *domain.Candidate {
	return &domain.Candidate{
		Name:               r.Name,
		Email:              strPtr(r.Email),
		Phone:              strPtr(r.Phone),
		Address:            strPtr(r.Address),
		City:               strPtr(r.City),
		State:              strPtr(r.State),
		Country:            strPtr(r.Country),
		ZipCode:            strPtr(r.ZipCode),
		Age:                r.Age,
		Dob:                r.Dob,
		Gender:             strPtr(r.Gender),
		JobExperience:      r.JobExperience,
		TotalExperience:    r.TotalExperience,
		RelevantExperience: r.RelevantExperience,
		Skills:             r.Skills,
		Pros:               r.Pros,
		Cons:               r.Cons,
		Score:              r.Score,
	}
}

// UpdateCandidateRequest is patch-style: omitted fields keep their
// stored values.
type UpdateCandidateRequest struct {
	Name               *string         `json:"name" binding:"omitempty,min=2"`
	Email              *string         `json:"email" binding:"omitempty,email"`
	Phone              *string         `json:"phone" binding:"omitempty,valid_phone"`
	Address            *string         `json:"address"`
	City               *string         `json:"city"`
	State              *string         `json:"state"`
	Country            *string         `json:"country"`
	ZipCode            *string         `json:"zip_code"`
	Age                *int            `json:"age" binding:"omitempty,gt=0"`
	Dob                *time.Time      `json:"dob"`
	Gender             *string         `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER"`
	JobExperience      json.RawMessage `json:"job_experience"`
	TotalExperience    json.RawMessage `json:"total_experience"`
	RelevantExperience json.RawMessage `json:"relevant_experience"`
	Skills             json.RawMessage `json:"skills"`
	Pros               []string        `json:"pros"`
	Cons               []string        `json:"cons"`
	Score              *float64        `json:"score" binding:"omitempty,gt=0"`
}

func (r *UpdateCandidateRequest) toPatch() *domain.CandidateUpdate {
	return &domain.CandidateUpdate{
		Name:               r.Name,
		Email:              r.Email,
		Phone:              r.Phone,
		Address:            r.Address,
		City:               r.City,
		State:              r.State,
		Country:            r.Country,
		ZipCode:            r.ZipCode,
		Age:                r.Age,
		Dob:                r.Dob,
		Gender:             r.Gender,
		JobExperience:      r.JobExperience,
		TotalExperience:    r.TotalExperience,
		RelevantExperience: r.RelevantExperience,
		Skills:             r.Skills,
		Pros:               r.Pros,
		Cons:               r.Cons,
		Score:              r.Score,
	}
}

// Create godoc
// @Summary      Create a candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body      CandidateRequest  true  "Candidate JSON"
// @Success      201        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Router       /candidates [post]
// @Security     BearerAuth
func (h *CandidateHandler) Create(c *gin.Context) {
	var req CandidateRequest
	if !bindJSON(c, &req) {
		return
	}

	candidate := req.toDomain()
	if err := h.candidateUC.CreateCandidate(c.Request.Context(), candidate); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate created", candidate)
}

func (h *CandidateHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	candidates, total, err := h.candidateUC.ListCandidates(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate list", gin.H{
		"candidates": candidates,
		"total":      total,
		"page":       page,
		"page_size":  pageSize,
	})
}

// Get returns the candidate with all their resumes attached.
func (h *CandidateHandler) Get(c *gin.Context) {
	candidate, err := h.candidateUC.GetCandidate(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate details", candidate)
}

func (h *CandidateHandler) Update(c *gin.Context) {
	var req UpdateCandidateRequest
	if !bindJSON(c, &req) {
		return
	}

	candidate, err := h.candidateUC.UpdateCandidate(c.Request.Context(), c.Param("id"), req.toPatch())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate updated", candidate)
}
