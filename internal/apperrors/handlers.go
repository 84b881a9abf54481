package apperrors

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the fixed wire shape for every error: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleError writes an AppError to the gin context.
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		log.Printf("Server error: %v", err)
	}
	c.JSON(err.HTTPCode, ErrorResponse{Error: err.Message})
}

// HandleAnyError converts arbitrary errors before writing. Unknown errors
// are masked as internal server errors.
func HandleAnyError(c *gin.Context, err error) {
	var appErr *AppError
	if As(err, &appErr) {
		HandleError(c, appErr)
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}
