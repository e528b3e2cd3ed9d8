package models

import (
	"github.com/gin-gonic/gin"
)

// Response is the JSON body of responses which are not rendered pages
type Response struct {
	Status int    `json:"status"`
	Err    string `json:"error"`
}

// APIError is a Response describing a failed request
type APIError Response

func (e *APIError) Error() string {
	return e.Err
}

// NewAPIError creates an APIError with given status and error message
func NewAPIError(status int, err string) APIError {
	return APIError{
		Status: status,
		Err:    err,
	}
}

// SendAPIError responds with the given status and error message as JSON and aborts the request
func SendAPIError(ctx *gin.Context, status int, err string) {
	ctx.JSON(status, NewAPIError(status, err))
	ctx.Abort()
}
