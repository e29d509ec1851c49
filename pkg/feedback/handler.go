package feedback

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"launchbridge/pkg/response"
)

type FeedbackHandler struct {
	service FeedbackService
}

func NewFeedbackHandler(service FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

func (h *FeedbackHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/startups/:id/feedback", h.submitFeedback)
	router.GET("/startups/:id/feedback", h.listFeedback)
	router.GET("/feedback/enterprise/:uuid", h.listByEnterprise)
}

type submitFeedbackRequest struct {
	EnterpriseUUID string `json:"enterprise_uuid" binding:"required"`
	Rating         int    `json:"rating" binding:"required"`
	Content        string `json:"content"`
}

// @Summary      Submit enterprise feedback
// @Description  Records a rated feedback entry for a startup and recomputes its credibility
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Startup ID"
// @Param        request body submitFeedbackRequest true "Feedback submission"
// @Success      201  {object}  response.APIResponse{data=Feedback} "Feedback submitted"
// @Failure      400  {object}  response.APIResponse "Invalid request payload"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /startups/{id}/feedback [post]
func (h *FeedbackHandler) submitFeedback(c *gin.Context) {
	startupID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || startupID <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid startup id", nil)
		return
	}

	var req submitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	fb, err := h.service.SubmitFeedback(c.Request.Context(), Feedback{
		StartupID:      startupID,
		EnterpriseUUID: req.EnterpriseUUID,
		Rating:         req.Rating,
		Content:        req.Content,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidRating) {
			response.SendAPIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusCreated, true, "feedback submitted", fb)
}

// @Summary      List feedback for a startup
// @Tags         feedback
// @Produce      json
// @Param        id   path      int  true  "Startup ID"
// @Success      200  {object}  response.APIResponse{data=[]Feedback} "Feedback retrieved"
// @Failure      400  {object}  response.APIResponse "Invalid startup ID"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /startups/{id}/feedback [get]
func (h *FeedbackHandler) listFeedback(c *gin.Context) {
	startupID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || startupID <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid startup id", nil)
		return
	}

	items, err := h.service.ListFeedbackByStartup(c.Request.Context(), startupID)
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "feedback listed", items)
}

// @Summary      List feedback submitted by an enterprise
// @Tags         feedback
// @Produce      json
// @Param        uuid   path      string  true  "Enterprise user UUID"
// @Success      200  {object}  response.APIResponse{data=[]Feedback} "Feedback retrieved"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /feedback/enterprise/{uuid} [get]
func (h *FeedbackHandler) listByEnterprise(c *gin.Context) {
	items, err := h.service.ListFeedbackByEnterprise(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "feedback listed", items)
}
