package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope every endpoint writes. Code is a stable
// machine-readable error kind; Field names the offending input on
// validation failures.
type Response struct {
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Field   string      `json:"field,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, &Response{Data: data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, &Response{Data: data})
}

func Unauthorized(c *gin.Context, code, message string) {
	c.JSON(http.StatusUnauthorized, &Response{Code: code, Error: message})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, &Response{Code: CodeValidationError, Error: message})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, &Response{Code: CodeNotFound, Error: message})
}

func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, &Response{Code: CodeConflict, Error: message})
}

func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, &Response{Code: CodeInternal, Error: message})
}

// FromError maps a usecase error to its response envelope. Anything
// unrecognized is a store or infrastructure failure and surfaces as a
// generic internal error.
func FromError(c *gin.Context, err error) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, &Response{
			Code:  CodeValidationError,
			Error: ve.Message,
			Field: ve.Field,
		})
	case errors.Is(err, ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, ErrConflict):
		Conflict(c, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		Unauthorized(c, CodeInvalidCredential, ErrInvalidCredentials.Error())
	case errors.Is(err, ErrUnauthenticated):
		Unauthorized(c, CodeUnauthenticated, ErrUnauthenticated.Error())
	default:
		TrackError("internal")
		InternalError(c, "internal server error")
	}
}
