package application

import (
	"go-recruit/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	applications := r.Group("/applications")
	applications.Use(middleware.AuthMiddleware())
	applications.Use(middleware.ExtractUserID())
	applications.Use(middleware.ContextLogger(logger))
	{
		applications.POST("",
			middleware.RateLimitByUser(0.2, 2),
			middleware.Idempotency(rdb),
			handler.Apply,
		)

		applications.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.ListMine,
		)

		applications.POST("/:id/withdraw",
			middleware.RateLimitByUser(0.5, 2),
			handler.Withdraw,
		)
	}

	// Employer-side view nested under the vacancy resource.
	vacancyApps := r.Group("/vacancies/:id/applications")
	vacancyApps.Use(middleware.AuthMiddleware())
	vacancyApps.Use(middleware.ExtractUserID())
	vacancyApps.Use(middleware.ContextLogger(logger))
	{
		vacancyApps.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.ListByVacancy,
		)
	}
}
