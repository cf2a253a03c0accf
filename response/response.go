package response

import "github.com/gin-gonic/gin"

// Error codes shared across all handlers.
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeForbidden      = "FORBIDDEN"
	CodeNotFound       = "NOT_FOUND"
	CodeDBError        = "DB_ERROR"
	CodeUploadFailed   = "UPLOAD_FAILED"
	CodeNotImplemented = "NOT_IMPLEMENTED"
	CodeInternal       = "INTERNAL_ERROR"
)

// FieldError attaches a message to the input field that caused it.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type errorBody struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// OK writes the success envelope: {success: true, data}.
func OK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// OKWithMeta writes the success envelope with a meta block (pagination etc).
func OKWithMeta(c *gin.Context, status int, data interface{}, meta interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data, "meta": meta})
}

// Error writes the failure envelope: {success: false, error: {code, message, details?}}.
func Error(c *gin.Context, status int, code, message string, details ...FieldError) {
	c.JSON(status, gin.H{"success": false, "error": errorBody{
		Code:    code,
		Message: message,
		Details: details,
	}})
}
