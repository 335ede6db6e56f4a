package utils

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/garagehq/shopapi/internal/shared/constants"
	"github.com/garagehq/shopapi/internal/shared/errors"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// DeletedBody confirms a delete.
type DeletedBody struct {
	Message string `json:"message"`
	Deleted uint   `json:"deleted"`
}

func OKResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// ListResponse writes items as a bare JSON array and the unpaginated total
// in the X-Total-Count header.
func ListResponse(c *gin.Context, items interface{}, total int64) {
	c.Header(constants.HeaderXTotalCount, strconv.FormatInt(total, 10))
	c.JSON(http.StatusOK, items)
}

func DeletedResponse(c *gin.Context, message string, id uint) {
	c.JSON(http.StatusOK, DeletedBody{Message: message, Deleted: id})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

// ErrorResponseWithError renders err with the status of its AppError type.
// Anything else becomes a 500 without internal details.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, ErrorBody{Error: appErr.Message, Details: appErr.Details})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: constants.ErrMsgInternalServerError})
}

// AbortWithError renders err and stops the handler chain.
func AbortWithError(c *gin.Context, err error) {
	ErrorResponseWithError(c, err)
	c.Abort()
}
