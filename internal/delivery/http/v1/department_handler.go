package v1

import (
	"net/http"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type DepartmentHandler struct {
	deptUC domain.DepartmentUsecase
}

func NewDepartmentHandler(protected *gin.RouterGroup, deptUC domain.DepartmentUsecase) {
	handler := &DepartmentHandler{deptUC: deptUC}

	depts := protected.Group("/departments")
	{
		depts.POST("", handler.Create)
		depts.GET("", handler.List)
		depts.GET("/all", handler.ListAll)
		depts.GET("/:id", handler.Get)
		depts.PUT("/:id", handler.Update)
		depts.DELETE("/:id", handler.Delete)
	}
}

type CreateDepartmentRequest struct {
	Title       string `json:"title" binding:"required,min=2"`
	Description string `json:"description"`
}

// UpdateDepartmentRequest is patch-style: omitted fields keep their
// stored values.
type UpdateDepartmentRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=2"`
	Description *string `json:"description"`
}

// Create godoc
// @Summary      Create a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        department  body      CreateDepartmentRequest  true  "Department JSON"
// @Success      201         {object}  response.Response
// @Failure      400         {object}  response.Response
// @Router       /departments [post]
// @Security     BearerAuth
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req CreateDepartmentRequest
	if !bindJSON(c, &req) {
		return
	}

	actorID := c.GetString(string(domain.KeyUserID))
	dept := &domain.Department{
		Title:       req.Title,
		Description: strPtr(req.Description),
	}

	if err := h.deptUC.CreateDepartment(c.Request.Context(), actorID, dept); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Department created", dept)
}

// List returns the caller's own departments.
func (h *DepartmentHandler) List(c *gin.Context) {
	actorID := c.GetString(string(domain.KeyUserID))

	depts, err := h.deptUC.ListMyDepartments(c.Request.Context(), actorID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Department list", depts)
}

// ListAll returns every active department, for the job-creation dropdown.
// This is the one deliberately unscoped read.
func (h *DepartmentHandler) ListAll(c *gin.Context) {
	depts, err := h.deptUC.ListAllDepartments(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "All departments", depts)
}

// Get godoc
// @Summary      Get own department with its jobs
// @Tags         departments
// @Produce      json
// @Param        id   path      string  true  "Department ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /departments/{id} [get]
// @Security     BearerAuth
func (h *DepartmentHandler) Get(c *gin.Context) {
	actorID := c.GetString(string(domain.KeyUserID))

	dept, err := h.deptUC.GetDepartment(c.Request.Context(), actorID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Department details", dept)
}

func (h *DepartmentHandler) Update(c *gin.Context) {
	var req UpdateDepartmentRequest
	if !bindJSON(c, &req) {
		return
	}

	actorID := c.GetString(string(domain.KeyUserID))
	patch := &domain.DepartmentUpdate{
		Title:       req.Title,
		Description: req.Description,
	}

	dept, err := h.deptUC.UpdateDepartment(c.Request.Context(), actorID, c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Department updated", dept)
}

// Delete godoc
// @Summary      Soft-delete a department
// @Description  Marks the department deleted; its jobs keep their reference.
// @Tags         departments
// @Produce      json
// @Param        id   path      string  true  "Department ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /departments/{id} [delete]
// @Security     BearerAuth
func (h *DepartmentHandler) Delete(c *gin.Context) {
	actorID := c.GetString(string(domain.KeyUserID))

	if err := h.deptUC.DeleteDepartment(c.Request.Context(), actorID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Department deleted", nil)
}
