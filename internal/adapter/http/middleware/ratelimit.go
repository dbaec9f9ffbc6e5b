package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"momentum/pkg/apierrors"
	"momentum/pkg/ratelimit"
	"momentum/pkg/telemetry"
)

// RateLimitMiddleware consults the injected limiter per caller before any
// write begins. The decision is immediate: permit or reject, never queue.
func RateLimitMiddleware(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter.IsLimited(GetCallerID(c)) {
			telemetry.RateLimitedTotal.Inc()
			lang := GetLang(c)
			c.AbortWithStatusJSON(
				http.StatusTooManyRequests,
				apierrors.CreateError(http.StatusTooManyRequests, apierrors.MsgRateLimited, lang),
			)
			return
		}
		c.Next()
	}
}
