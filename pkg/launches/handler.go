package launches

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"launchbridge/pkg/response"
)

type LaunchHandler struct {
	service LaunchService
}

func NewLaunchHandler(service LaunchService) *LaunchHandler {
	return &LaunchHandler{service: service}
}

func (h *LaunchHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/startups/:id/launches", h.createLaunch)
	router.GET("/startups/:id/launches", h.listLaunches)
	router.POST("/launches/:id/upvote", h.upvoteLaunch)
}

type createLaunchRequest struct {
	Title       string `json:"title" binding:"required"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
}

type upvoteRequest struct {
	UserUUID string `json:"user_uuid" binding:"required"`
}

// @Summary      Create a launch
// @Description  Records a product launch for a startup and recomputes its credibility
// @Tags         launches
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Startup ID"
// @Param        request body createLaunchRequest true "Launch creation request"
// @Success      201  {object}  response.APIResponse{data=Launch} "Launch created successfully"
// @Failure      400  {object}  response.APIResponse "Invalid request payload"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /startups/{id}/launches [post]
func (h *LaunchHandler) createLaunch(c *gin.Context) {
	startupID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || startupID <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid startup id", nil)
		return
	}

	var req createLaunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	launch, err := h.service.CreateLaunch(c.Request.Context(), Launch{
		StartupID:   startupID,
		Title:       req.Title,
		Tagline:     req.Tagline,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, ErrTitleRequired) {
			response.SendAPIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusCreated, true, "launch created", launch)
}

// @Summary      List launches for a startup
// @Description  Retrieves a startup's launches ordered by upvotes
// @Tags         launches
// @Produce      json
// @Param        id   path      int  true  "Startup ID"
// @Success      200  {object}  response.APIResponse{data=[]Launch} "Launches retrieved successfully"
// @Failure      400  {object}  response.APIResponse "Invalid startup ID"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /startups/{id}/launches [get]
func (h *LaunchHandler) listLaunches(c *gin.Context) {
	startupID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || startupID <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid startup id", nil)
		return
	}

	items, err := h.service.ListLaunchesByStartup(c.Request.Context(), startupID)
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "launches listed", items)
}

// @Summary      Upvote a launch
// @Description  Records a one-per-user upvote on a launch
// @Tags         launches
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Launch ID"
// @Param        request body upvoteRequest true "Upvote request"
// @Success      200  {object}  response.APIResponse{data=Launch} "Launch upvoted"
// @Failure      400  {object}  response.APIResponse "Invalid request"
// @Failure      404  {object}  response.APIResponse "Launch not found"
// @Failure      409  {object}  response.APIResponse "Already upvoted"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /launches/{id}/upvote [post]
func (h *LaunchHandler) upvoteLaunch(c *gin.Context) {
	launchID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || launchID <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid launch id", nil)
		return
	}

	var req upvoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	launch, err := h.service.UpvoteLaunch(c.Request.Context(), launchID, req.UserUUID)
	if err != nil {
		switch {
		case errors.Is(err, ErrLaunchNotFound):
			response.SendAPIResponse(c, http.StatusNotFound, false, "launch not found", nil)
		case errors.Is(err, ErrAlreadyUpvoted):
			response.SendAPIResponse(c, http.StatusConflict, false, "already upvoted", nil)
		default:
			response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		}
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "launch upvoted", launch)
}
