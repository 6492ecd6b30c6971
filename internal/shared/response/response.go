package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"newsforum-backend/internal/shared/apperror"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success responses
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

func OK(c *gin.Context, data interface{}) {
	Success(c, http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	Success(c, http.StatusCreated, data)
}

// NoContent writes 204 with an empty body
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error responses
func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

// Fail classifies err and writes the matching error envelope.
// Internal failures are logged with their cause; clients only see the generic message.
func Fail(c *gin.Context, err error) {
	appErr := apperror.Classify(err)

	event := log.Warn()
	if apperror.IsKind(appErr, apperror.KindInternal) {
		event = log.Error()
	}
	event.
		Err(appErr.Err).
		Str("request_id", c.GetString("request_id")).
		Str("path", c.Request.URL.Path).
		Str("kind", appErr.Kind.String()).
		Str("store_code", apperror.StoreCodeName(err)).
		Msg(appErr.Message)

	ErrorResponse(c, appErr.Status(), appErr.Kind.String(), appErr.Message)
	c.Abort()
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Fail(c, apperror.BadRequest(message))
}

func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, apperror.KindNotFound.String(), message)
}

func InternalServerError(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, apperror.KindInternal.String(), apperror.MsgInternal)
}
