package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// errorResponse is the flat error body every endpoint returns.
// Example: { "error": "invalid content type" }
type errorResponse struct {
	Error string `json:"error"`
}

// JSONError sends the standard error response.
func JSONError(ctx *gin.Context, status int, msg string) {
	ctx.JSON(status, errorResponse{Error: msg})
}

// Convenience wrappers
func BadRequest(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusBadRequest, msg)
}

func NotFound(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusNotFound, msg)
}

func Internal(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusInternalServerError, msg)
}
