package middleware

import (
	"log/slog"
	"net/http"

	"sport-rental/internal/handler/httperr"
	"sport-rental/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	internalErrorMessage = "Internal server error"
	stackLogLines        = 12
)

// ErrorHandler writes the last public error if the handler left the body empty.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]
			if !ginErr.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := ginErr.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			slog.Error("unhandled request error",
				"error", err,
				"stack", errs.ExtractStackLines(err, stackLogLines),
				"path", c.Request.URL.Path,
				"request_id", GetRequestID(c))
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, internalErrorMessage, nil))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"error", rec,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c))

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.NewResponse(http.StatusInternalServerError, internalErrorMessage, nil))
			}
		}()
		c.Next()
	}
}
