package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the common JSON envelope
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Stats      interface{} `json:"stats,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination describes the page window of a list response
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Success returns a 200 with data
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "OK",
		Data:    data,
	})
}

// SuccessWithMessage returns a 200 with data and a custom message
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessWithStats returns a 200 with data plus a stats block
func SuccessWithStats(c *gin.Context, data interface{}, stats interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "OK",
		Data:    data,
		Stats:   stats,
	})
}

// SuccessWithPagination returns a 200 with data and page info
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "OK",
		Data:    data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// BadRequest returns a 400 invalid-argument response
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: message,
	})
}

// ValidationError returns a 400 with the validation message
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: message,
	})
}

// Unauthorized returns a 401 when no usable identity is present
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Success: false,
		Message: "authentication required",
	})
}

// Forbidden returns a 403 when the identity lacks ownership or role
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Success: false,
		Message: "access denied",
	})
}

// NotFound returns a 404
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Success: false,
		Message: "not found",
	})
}

// Conflict returns a 409
func Conflict(c *gin.Context) {
	c.JSON(http.StatusConflict, Response{
		Success: false,
		Message: "conflict",
	})
}

// ConflictWithMessage returns a 409 with a custom message
func ConflictWithMessage(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Response{
		Success: false,
		Message: message,
	})
}

// ServerError returns a generic 500 with no internal detail
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Success: false,
		Message: "internal server error",
	})
}
