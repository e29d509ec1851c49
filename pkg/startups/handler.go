package startups

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"launchbridge/pkg/response"
)

type StartupHandler struct {
	service StartupService
}

func NewStartupHandler(service StartupService) *StartupHandler {
	return &StartupHandler{service: service}
}

func (h *StartupHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/startups", h.createStartup)
	router.PUT("/startups/:id", h.updateStartup)
	router.GET("/startups", h.listStartups)
	router.GET("/startups/:id", h.getStartupByID)
	router.GET("/startups/owner/:uuid", h.getStartupByOwner)
}

type createStartupRequest struct {
	OwnerUUID    string `json:"owner_uuid" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Industry     string `json:"industry" binding:"required"`
	ARRRange     string `json:"arr_range" binding:"required"`
	Description  string `json:"description"`
	ContactEmail string `json:"contact_email"`
}

type updateStartupRequest struct {
	Name         string `json:"name" binding:"required"`
	Industry     string `json:"industry" binding:"required"`
	ARRRange     string `json:"arr_range" binding:"required"`
	Description  string `json:"description"`
	ContactEmail string `json:"contact_email"`
}

// @Summary      Create a startup profile
// @Description  Creates the startup profile for an owner; one profile per owner
// @Tags         startups
// @Accept       json
// @Produce      json
// @Param        request body createStartupRequest true "Startup creation request"
// @Success      201  {object}  response.APIResponse{data=Startup} "Startup created successfully"
// @Failure      400  {object}  response.APIResponse "Invalid request payload"
// @Failure      409  {object}  response.APIResponse "Startup already exists"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /startups [post]
func (h *StartupHandler) createStartup(c *gin.Context) {
	var req createStartupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	startup, err := h.service.CreateStartup(c.Request.Context(), Startup{
		OwnerUUID:    req.OwnerUUID,
		Name:         req.Name,
		Industry:     req.Industry,
		ARRRange:     req.ARRRange,
		Description:  req.Description,
		ContactEmail: req.ContactEmail,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidIndustry), errors.Is(err, ErrInvalidARRRange):
			response.SendAPIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
		case errors.Is(err, ErrStartupExists):
			response.SendAPIResponse(c, http.StatusConflict, false, err.Error(), nil)
		default:
			response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		}
		return
	}

	response.SendAPIResponse(c, http.StatusCreated, true, "startup created", startup)
}

// @Summary      Update a startup profile
// @Description  Updates an existing startup's profile fields
// @Tags         startups
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Startup ID"
// @Param        request body updateStartupRequest true "Startup update request"
// @Success      200  {object}  response.APIResponse{data=Startup} "Startup updated successfully"
// @Failure      400  {object}  response.APIResponse "Invalid request"
// @Failure      404  {object}  response.APIResponse "Startup not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /startups/{id} [put]
func (h *StartupHandler) updateStartup(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid startup id", nil)
		return
	}

	var req updateStartupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	startup, err := h.service.UpdateStartup(c.Request.Context(), Startup{
		ID:           id,
		Name:         req.Name,
		Industry:     req.Industry,
		ARRRange:     req.ARRRange,
		Description:  req.Description,
		ContactEmail: req.ContactEmail,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidIndustry), errors.Is(err, ErrInvalidARRRange):
			response.SendAPIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
		case errors.Is(err, ErrStartupNotFound):
			response.SendAPIResponse(c, http.StatusNotFound, false, "startup not found", nil)
		default:
			response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		}
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "startup updated", startup)
}

// @Summary      Get startup by ID
// @Description  Retrieves a single startup by its ID
// @Tags         startups
// @Produce      json
// @Param        id   path      int  true  "Startup ID"
// @Success      200  {object}  response.APIResponse{data=Startup} "Startup retrieved successfully"
// @Failure      400  {object}  response.APIResponse "Invalid startup ID"
// @Failure      404  {object}  response.APIResponse "Startup not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /startups/{id} [get]
func (h *StartupHandler) getStartupByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid startup id", nil)
		return
	}

	startup, err := h.service.GetStartupByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrStartupNotFound) {
			response.SendAPIResponse(c, http.StatusNotFound, false, "startup not found", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "startup fetched", startup)
}

// @Summary      Get startup by owner
// @Description  Retrieves the startup profile owned by the given user UUID
// @Tags         startups
// @Produce      json
// @Param        uuid   path      string  true  "Owner UUID"
// @Success      200  {object}  response.APIResponse{data=Startup} "Startup retrieved successfully"
// @Failure      404  {object}  response.APIResponse "Startup not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /startups/owner/{uuid} [get]
func (h *StartupHandler) getStartupByOwner(c *gin.Context) {
	ownerUUID := c.Param("uuid")

	startup, err := h.service.GetStartupByOwner(c.Request.Context(), ownerUUID)
	if err != nil {
		if errors.Is(err, ErrStartupNotFound) {
			response.SendAPIResponse(c, http.StatusNotFound, false, "startup not found", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "startup fetched", startup)
}

// @Summary      List all startups
// @Description  Retrieves a paginated list of all startups
// @Tags         startups
// @Produce      json
// @Param        page   query     int  false  "Page number" default(1)
// @Param        limit  query     int  false  "Items per page" default(10)
// @Success      200  {object}  response.APIResponse{data=StartupList} "Startups retrieved successfully"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /startups [get]
func (h *StartupHandler) listStartups(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	items, total, err := h.service.ListStartups(c.Request.Context(), page, limit)
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	data := StartupList{Items: items, Total: total, Page: page, Limit: limit}
	response.SendAPIResponse(c, http.StatusOK, true, "startups listed", data)
}
