package company

import (
	"go-recruit/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	companies := r.Group("/companies")
	companies.Use(middleware.AuthMiddleware())
	companies.Use(middleware.ExtractUserID())
	companies.Use(middleware.ContextLogger(logger))
	{
		companies.POST("",
			middleware.RateLimitByUser(0.1, 1),
			handler.Create,
		)

		companies.GET("/mine",
			middleware.RateLimitByUser(3, 10),
			handler.GetMine,
		)

		companies.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			handler.GetById,
		)

		companies.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			handler.Update,
		)
	}
}
