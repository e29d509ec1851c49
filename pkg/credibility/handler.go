package credibility

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"launchbridge/pkg/response"
)

type ScoreHandler struct {
	service ScoreService
}

func NewScoreHandler(service ScoreService) *ScoreHandler {
	return &ScoreHandler{service: service}
}

func (h *ScoreHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/startups/:id/credibility", h.getScore)
	router.POST("/startups/:id/credibility/recompute", h.recompute)
}

// @Summary      Get a startup's credibility score
// @Description  Returns the overall score with the per-category breakdown
// @Tags         credibility
// @Produce      json
// @Param        id   path      int  true  "Startup ID"
// @Success      200  {object}  response.APIResponse{data=Score} "Score retrieved"
// @Failure      400  {object}  response.APIResponse "Invalid startup id"
// @Failure      404  {object}  response.APIResponse "Startup not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /startups/{id}/credibility [get]
func (h *ScoreHandler) getScore(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid startup id", nil)
		return
	}

	score, err := h.service.ScoreFor(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrStartupNotFound) {
			response.SendAPIResponse(c, http.StatusNotFound, false, "startup not found", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "credibility score fetched", score)
}

// @Summary      Recompute a startup's credibility score
// @Description  Forces a recomputation from live signals
// @Tags         credibility
// @Produce      json
// @Param        id   path      int  true  "Startup ID"
// @Success      200  {object}  response.APIResponse "Score recomputed"
// @Failure      400  {object}  response.APIResponse "Invalid startup id"
// @Failure      404  {object}  response.APIResponse "Startup not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /startups/{id}/credibility/recompute [post]
func (h *ScoreHandler) recompute(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid startup id", nil)
		return
	}

	if err := h.service.Rescore(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrStartupNotFound) {
			response.SendAPIResponse(c, http.StatusNotFound, false, "startup not found", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "credibility score recomputed", nil)
}
