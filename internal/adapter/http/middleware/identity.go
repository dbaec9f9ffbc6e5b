package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"momentum/pkg/apierrors"
)

// CallerHeader carries the authenticated caller id. An upstream identity
// resolver sets it; this service trusts it and scopes every read and
// write by it.
const CallerHeader = "X-User-ID"

const callerContextKey = "caller_id"

func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID := c.GetHeader(CallerHeader)
		if callerID == "" {
			lang := GetLang(c)
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgMissingIdentity, lang),
			)
			return
		}
		c.Set(callerContextKey, callerID)
		c.Next()
	}
}

func GetCallerID(c *gin.Context) string {
	if value, exists := c.Get(callerContextKey); exists {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return ""
}
