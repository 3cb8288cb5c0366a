package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes a success payload with the given status.
func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// OK writes a 200 payload.
func OK(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data)
}

// Created writes a 201 payload.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Error writes an error body. The client contract is a real HTTP
// status with an {"error": "<message>"} payload.
func Error(c *gin.Context, status int, msg string) {
	body := gin.H{"error": msg}
	if requestID := requestIDFrom(c); requestID != "" {
		body["request_id"] = requestID
	}
	c.JSON(status, body)
}

// BadRequest writes a 400 error.
func BadRequest(c *gin.Context, msg string) {
	Error(c, http.StatusBadRequest, msg)
}

// Unauthorized writes a 401 error.
func Unauthorized(c *gin.Context, msg string) {
	Error(c, http.StatusUnauthorized, msg)
}

// Forbidden writes a 403 error.
func Forbidden(c *gin.Context, msg string) {
	Error(c, http.StatusForbidden, msg)
}

// NotFound writes a 404 error.
func NotFound(c *gin.Context, msg string) {
	Error(c, http.StatusNotFound, msg)
}

// Internal writes a 500 error.
func Internal(c *gin.Context, msg string) {
	Error(c, http.StatusInternalServerError, msg)
}

func requestIDFrom(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if value, ok := c.Get("request_id"); ok {
		if id, ok := value.(string); ok {
			return id
		}
	}
	return ""
}
