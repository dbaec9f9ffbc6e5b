package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"momentum/internal/adapter/http/handlers"
	"momentum/internal/adapter/http/middleware"
	"momentum/pkg/ratelimit"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	taskHandler *handlers.TaskHandler,
	renegotiationHandler *handlers.RenegotiationHandler,
	limiter ratelimit.Limiter,
) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		authed := api.Group("")
		authed.Use(middleware.IdentityMiddleware())
		{
			authed.GET("/renegotiations", renegotiationHandler.ListNeedingAttention)

			// The limiter guards writes only; reads stay unthrottled.
			writes := authed.Group("")
			writes.Use(middleware.RateLimitMiddleware(limiter))
			{
				writes.POST("/tasks/:id/complete", taskHandler.CompleteTask)
				writes.PATCH("/tasks/:id", taskHandler.UpdateTaskStatus)
				writes.POST("/renegotiations", renegotiationHandler.Renegotiate)
			}
		}
	}
}
