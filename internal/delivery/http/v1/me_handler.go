package v1

import (
	"net/http"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type MeHandler struct {
	authUC    domain.AuthUsecase
	profileUC domain.ProfileUsecase
}

func NewMeHandler(protected *gin.RouterGroup, authUC domain.AuthUsecase, profileUC domain.ProfileUsecase) {
	handler := &MeHandler{authUC: authUC, profileUC: profileUC}

	me := protected.Group("/me")
	{
		me.GET("", handler.GetMe)
		me.PUT("/profile", handler.UpdateProfile)
		me.PUT("/password", handler.ChangePassword)
	}
}

type UpdateProfileRequest struct {
	FirstName string `json:"first_name" binding:"required,min=3"`
	LastName  string `json:"last_name" binding:"omitempty,min_if_set"`
	Address   string `json:"address" binding:"omitempty,min_if_set"`
	City      string `json:"city" binding:"omitempty,min_if_set"`
	State     string `json:"state" binding:"omitempty,min_if_set"`
	Country   string `json:"country" binding:"omitempty,min_if_set"`
	ZipCode   string `json:"zip_code" binding:"omitempty,min_if_set"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// GetMe godoc
// @Summary      Current user
// @Description  Returns the authenticated user with their profile attached.
// @Tags         me
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /me [get]
// @Security     BearerAuth
func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Current user", user)
}

// UpdateProfile godoc
// @Summary      Upsert own profile
// @Description  Creates the profile on first call, updates it afterwards.
// @Tags         me
// @Accept       json
// @Produce      json
// @Param        profile  body      UpdateProfileRequest  true  "Profile JSON"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /me/profile [put]
// @Security     BearerAuth
func (h *MeHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	profile := &domain.Profile{
		FirstName: req.FirstName,
		LastName:  strPtr(req.LastName),
		Address:   strPtr(req.Address),
		City:      strPtr(req.City),
		State:     strPtr(req.State),
		Country:   strPtr(req.Country),
		ZipCode:   strPtr(req.ZipCode),
	}

	updated, err := h.profileUC.UpdateMyProfile(c.Request.Context(), userID, profile)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile saved", updated)
}

// ChangePassword godoc
// @Summary      Change own password
// @Description  Requires the current password; the new password must differ.
// @Tags         me
// @Accept       json
// @Produce      json
// @Param        passwords  body      ChangePasswordRequest  true  "Password JSON"
// @Success      200        {object}  response.Response
// @Failure      401        {object}  response.Response
// @Failure      409        {object}  response.Response
// @Router       /me/password [put]
// @Security     BearerAuth
func (h *MeHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if req.NewPassword != req.ConfirmPassword {
		c.Error(apperror.Conflict("New password and confirmation do not match"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.authUC.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Password updated", nil)
}
