package reviews

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"launchbridge/pkg/response"
)

type ReviewHandler struct {
	service ReviewService
}

func NewReviewHandler(service ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

func (h *ReviewHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/startups/:id/reviews", h.createReview)
	router.GET("/startups/:id/reviews", h.listReviews)
	router.POST("/reviews/:id/verify", h.verifyReview)
}

type createReviewRequest struct {
	UserUUID     string `json:"user_uuid" binding:"required"`
	ReviewerRole string `json:"reviewer_role" binding:"required"`
	Content      string `json:"content" binding:"required"`
}

// @Summary      Create a review
// @Description  Records a peer review for a startup and recomputes its credibility
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Startup ID"
// @Param        request body createReviewRequest true "Review creation request"
// @Success      201  {object}  response.APIResponse{data=Review} "Review created successfully"
// @Failure      400  {object}  response.APIResponse "Invalid request payload"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /startups/{id}/reviews [post]
func (h *ReviewHandler) createReview(c *gin.Context) {
	startupID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || startupID <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid startup id", nil)
		return
	}

	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	review, err := h.service.CreateReview(c.Request.Context(), Review{
		StartupID:    startupID,
		UserUUID:     req.UserUUID,
		ReviewerRole: req.ReviewerRole,
		Content:      req.Content,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidRole) || errors.Is(err, ErrContentRequired) {
			response.SendAPIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusCreated, true, "review created", review)
}

// @Summary      List reviews for a startup
// @Tags         reviews
// @Produce      json
// @Param        id   path      int  true  "Startup ID"
// @Success      200  {object}  response.APIResponse{data=[]Review} "Reviews retrieved successfully"
// @Failure      400  {object}  response.APIResponse "Invalid startup ID"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /startups/{id}/reviews [get]
func (h *ReviewHandler) listReviews(c *gin.Context) {
	startupID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || startupID <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid startup id", nil)
		return
	}

	items, err := h.service.ListReviewsByStartup(c.Request.Context(), startupID)
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "reviews listed", items)
}

// @Summary      Verify a review
// @Description  Marks a review as verified, raising its credibility weight
// @Tags         reviews
// @Produce      json
// @Param        id   path      int  true  "Review ID"
// @Success      200  {object}  response.APIResponse{data=Review} "Review verified"
// @Failure      400  {object}  response.APIResponse "Invalid review ID"
// @Failure      404  {object}  response.APIResponse "Review not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /reviews/{id}/verify [post]
func (h *ReviewHandler) verifyReview(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid review id", nil)
		return
	}

	review, err := h.service.VerifyReview(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrReviewNotFound) {
			response.SendAPIResponse(c, http.StatusNotFound, false, "review not found", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "review verified", review)
}
