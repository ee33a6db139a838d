package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/takahiko217/stack-watcher/internal/domain/dto"
	"github.com/takahiko217/stack-watcher/internal/logger"
)

// ErrorHandler drains errors that handlers attached to the context via
// c.Error and, when no response has been written yet, answers with a 500
// in the standard envelope. Validation failures are expected to be mapped
// to 4xx by the handlers themselves; anything reaching this middleware is
// an unexpected internal error.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().
		Err(err).
		Str("path", c.Request.URL.Path).
		Msg("request failed")

	if c.Writer.Written() {
		return
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("サーバー内部エラーが発生しました", err))
}

// AbortWithError stops the handler chain and writes the standard error
// envelope with the given status.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		logger.L().Warn().
			Err(err).
			Int("status", status).
			Str("path", c.Request.URL.Path).
			Msg(message)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
