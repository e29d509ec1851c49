package discovery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"launchbridge/pkg/response"
)

type Handler struct {
	pipeline *Pipeline
	session  *SessionHandler
}

func NewHandler(pipeline *Pipeline, session *SessionHandler) *Handler {
	return &Handler{pipeline: pipeline, session: session}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/startups/discover", h.discover)
	if h.session != nil {
		router.GET("/ws/discover", h.session.HandleWebSocketGin)
	}
}

// @Summary      Discover startups
// @Description  Returns recommended and general startup tiers; pass user_id for personalized ranking
// @Tags         discovery
// @Produce      json
// @Param        user_id    query     string  false  "Enterprise user UUID for personalization"
// @Param        industry   query     string  false  "Filter by industry"
// @Param        arr_range  query     string  false  "Filter by ARR range"
// @Param        min_score  query     int     false  "Minimum credibility score (0-100)"
// @Param        sort       query     string  false  "Sort order: credibility or recent"
// @Success      200  {object}  response.APIResponse{data=Result} "Discovery results"
// @Failure      400  {object}  response.APIResponse "Invalid criteria"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /startups/discover [get]
func (h *Handler) discover(c *gin.Context) {
	userUUID := c.Query("user_id")
	if userUUID != "" {
		if _, err := uuid.Parse(userUUID); err != nil {
			response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid user_id, must be UUID", nil)
			return
		}
	}

	var criteria Criteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid query parameters", nil)
		return
	}

	result, err := h.pipeline.Discover(c.Request.Context(), userUUID, criteria)
	if err != nil {
		if errors.Is(err, ErrInvalidCriteria) {
			response.SendAPIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "discovery results", result)
}
