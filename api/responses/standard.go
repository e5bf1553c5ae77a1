// Package responses writes the JSON envelope every endpoint answers with.
// Success: {"success": true, "data"?: ..., "message"?: ...}
// Failure: {"success": false, "error": "..."}
package responses

import (
	"net/http"

	"github.com/Aidin1998/rosterhub/pkg/errors"
	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Internal server error"

// StandardResponse represents a successful API response
type StandardResponse struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty" example:"Player added"`
}

// ErrorResponse represents a failed API response
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Player not found"`
}

func optional(message []string) string {
	if len(message) > 0 {
		return message[0]
	}
	return ""
}

// Success sends a 200 response
func Success(c *gin.Context, data interface{}, message ...string) {
	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    data,
		Message: optional(message),
	})
}

// Created sends a 201 Created response
func Created(c *gin.Context, data interface{}, message ...string) {
	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    data,
		Message: optional(message),
	})
}

// Fail sends a failure envelope with the given status
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Success: false, Error: message})
}

// BadRequest sends a 400 Bad Request response
func BadRequest(c *gin.Context, detail string) {
	Fail(c, http.StatusBadRequest, detail)
}

// NotFound sends a 404 Not Found response
func NotFound(c *gin.Context, detail string) {
	Fail(c, http.StatusNotFound, detail)
}

// InternalServerError sends a 500 response without internal detail
func InternalServerError(c *gin.Context) {
	Fail(c, http.StatusInternalServerError, internalErrorMessage)
}

// Error maps err to its status. NotFound and Validation errors expose their
// message; anything else is reported as a generic internal error.
func Error(c *gin.Context, err error) {
	var e *errors.Error
	if !errors.As(err, &e) || e.Kind == errors.KindInternal {
		InternalServerError(c)
		return
	}
	Fail(c, e.Kind.Status(), e.Message)
}
