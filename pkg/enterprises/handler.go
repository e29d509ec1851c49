package enterprises

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"launchbridge/pkg/response"
)

type ProfileHandler struct {
	service ProfileService
}

func NewProfileHandler(service ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/enterprise-profiles", h.createProfile)
	router.GET("/enterprise-profiles/:uuid", h.getProfile)
	router.PUT("/enterprise-profiles/:uuid", h.updateProfile)
}

type createProfileRequest struct {
	UserUUID             string   `json:"user_uuid" binding:"required"`
	CompanyName          string   `json:"company_name" binding:"required"`
	Industry             string   `json:"industry" binding:"required"`
	CompanySize          string   `json:"company_size"`
	Location             string   `json:"location"`
	InterestedIndustries []string `json:"interested_industries"`
	PreferredARRRanges   []string `json:"preferred_arr_ranges"`
	EngagementStage      string   `json:"engagement_stage"`
}

// @Summary      Create an enterprise profile
// @Description  Creates the company profile and discovery preferences for an enterprise user
// @Tags         enterprises
// @Accept       json
// @Produce      json
// @Param        request body createProfileRequest true "Profile creation request"
// @Success      201  {object}  response.APIResponse{data=Profile} "Profile created"
// @Failure      400  {object}  response.APIResponse "Invalid request payload"
// @Failure      409  {object}  response.APIResponse "Profile already exists"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /enterprise-profiles [post]
func (h *ProfileHandler) createProfile(c *gin.Context) {
	var req createProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	profile, err := h.service.CreateProfile(c.Request.Context(), Profile{
		UserUUID:             req.UserUUID,
		CompanyName:          req.CompanyName,
		Industry:             req.Industry,
		CompanySize:          req.CompanySize,
		Location:             req.Location,
		InterestedIndustries: req.InterestedIndustries,
		PreferredARRRanges:   req.PreferredARRRanges,
		EngagementStage:      req.EngagementStage,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidPreferences):
			response.SendAPIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
		case errors.Is(err, ErrProfileExists):
			response.SendAPIResponse(c, http.StatusConflict, false, err.Error(), nil)
		default:
			response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		}
		return
	}

	response.SendAPIResponse(c, http.StatusCreated, true, "profile created", profile)
}

// @Summary      Get an enterprise profile
// @Tags         enterprises
// @Produce      json
// @Param        uuid   path      string  true  "User UUID"
// @Success      200  {object}  response.APIResponse{data=Profile} "Profile retrieved"
// @Failure      404  {object}  response.APIResponse "Profile not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /enterprise-profiles/{uuid} [get]
func (h *ProfileHandler) getProfile(c *gin.Context) {
	profile, err := h.service.GetProfileByUser(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.SendAPIResponse(c, http.StatusNotFound, false, "profile not found", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "profile fetched", profile)
}

// @Summary      Update an enterprise profile
// @Description  Applies a partial update; omitted fields are left unchanged
// @Tags         enterprises
// @Accept       json
// @Produce      json
// @Param        uuid   path      string  true  "User UUID"
// @Param        request body ProfilePatch true "Profile patch"
// @Success      200  {object}  response.APIResponse{data=Profile} "Profile updated"
// @Failure      400  {object}  response.APIResponse "Invalid request payload"
// @Failure      404  {object}  response.APIResponse "Profile not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /enterprise-profiles/{uuid} [put]
func (h *ProfileHandler) updateProfile(c *gin.Context) {
	var patch ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), c.Param("uuid"), patch)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidPreferences):
			response.SendAPIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
		case errors.Is(err, ErrProfileNotFound):
			response.SendAPIResponse(c, http.StatusNotFound, false, "profile not found", nil)
		default:
			response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		}
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "profile updated", profile)
}
