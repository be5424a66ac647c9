package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/gundex/core/internal/pkg/response"
)

const ajaxHeaderValue = "XMLHttpRequest"

// IsAJAX reports whether the caller declared itself an asynchronous client.
func IsAJAX(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == ajaxHeaderValue
}

// RequireAJAX rejects non-AJAX callers with 405. Update endpoints only
// accept asynchronous callers; a plain form POST there is a wrong caller
// type, not a validation problem.
func RequireAJAX() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAJAX(c) {
			response.MethodNotAllowedMsg(c, "use an AJAX POST for this endpoint")
			return
		}
		c.Next()
	}
}
