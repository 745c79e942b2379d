package vacancy

import (
	"go-recruit/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	// Candidate-facing listing stays outside the auth chain.
	r.GET("/vacancies/published",
		middleware.RateLimitByIP(10, 30),
		handler.GetPublished,
	)

	vacancies := r.Group("/vacancies")
	vacancies.Use(middleware.AuthMiddleware())
	vacancies.Use(middleware.ExtractUserID())
	vacancies.Use(middleware.ContextLogger(logger))
	{
		vacancies.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.List,
		)

		vacancies.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			handler.GetById,
		)

		vacancies.POST("",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RequireCompany(),
			middleware.RBACAuthorize(rbacService, "vacancy", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		vacancies.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequireCompany(),
			middleware.RBACAuthorize(rbacService, "vacancy", "update"),
			handler.Update,
		)

		vacancies.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RequireCompany(),
			middleware.RBACAuthorize(rbacService, "vacancy", "delete"),
			handler.Delete,
		)
	}
}
