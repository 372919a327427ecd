package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/LucasLevingston/AneisDePoder/internal/errs"

	"github.com/gin-gonic/gin"
)

// ErrorTranslator is the single boundary that turns domain errors into HTTP
// responses. Handlers attach errors with c.Error and return; nothing else in
// the request path writes a failure body. Unexpected errors are logged and
// answered with a generic 500 so internals never leak.
func ErrorTranslator() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}

		var appErr *errs.Error
		if errors.As(last.Err, &appErr) {
			body := gin.H{"message": appErr.Message}
			if len(appErr.Fields) > 0 {
				body["errors"] = appErr.Fields
			}
			c.JSON(appErr.Status, body)
			return
		}

		log.Printf("unexpected error on %s %s: %v", c.Request.Method, c.Request.URL.Path, last.Err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}
