package response

import (
	"github.com/gin-gonic/gin"
)

// APIError is the uniform error body. Detail carries the human-readable
// message; Errors optionally carries per-field validation details.
type APIError struct {
	Detail    string      `json:"detail"`
	RequestID string      `json:"request_id,omitempty"`
	Errors    interface{} `json:"errors,omitempty"`
}

// Error writes an error body with the given status.
func Error(c *gin.Context, status int, detail string, errs interface{}) {
	c.JSON(status, APIError{
		Detail:    detail,
		RequestID: c.GetString("request_id"),
		Errors:    errs,
	})
}

// AbortError writes an error body and aborts the handler chain; used by
// middleware.
func AbortError(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, APIError{
		Detail:    detail,
		RequestID: c.GetString("request_id"),
	})
}

// Message writes a plain {"message": ...} body.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}
