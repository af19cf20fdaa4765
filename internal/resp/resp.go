package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the shape of every API response.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": msg})
}

// Unprocessable reports a recoverable, user-facing problem such as an
// empty cart. code lets clients pick their own wording.
func Unprocessable(c *gin.Context, code, msg, detail string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"success": false,
		"error":   msg,
		"code":    code,
		"detail":  detail,
	})
}

func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
}
