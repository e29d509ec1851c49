// Package response defines the JSON envelope every launchbridge endpoint
// returns, so credibility scores, discovery results, and entity payloads
// all share one shape.
package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// APIResponse wraps an endpoint payload. Data carries the typed body
// (a Score, a discovery Result, an entity) and is omitted on errors.
type APIResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Data      any       `json:"data,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

func SendAPIResponse(c *gin.Context, code int, success bool, message string, data any) {
	resp := APIResponse{
		Success:   success,
		Message:   message,
		Data:      data,
		CreatedAt: time.Now(),
	}

	c.JSON(code, resp)
}
