package app

import (
	"database/sql"
	"os"
	"path/filepath"

	"go-recruit/internal/application"
	"go-recruit/internal/company"
	"go-recruit/internal/messaging/kafka"
	"go-recruit/internal/rbac"
	"go-recruit/internal/rbac/infra"
	"go-recruit/internal/shared/counter"
	"go-recruit/internal/vacancy"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	vacancyRepo := vacancy.NewRepository(gormDB)
	applicationRepo := application.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	companyService := company.NewService(companyRepo)
	listScope := vacancy.ParseListScope(os.Getenv("VACANCY_LIST_SCOPE"))
	vacancyService := vacancy.NewService(vacancyRepo, companyRepo, counterRepo, rdb, listScope)
	applicationService := application.NewService(applicationRepo, vacancyRepo, companyRepo)

	// --- Handlers ---
	recorder := vacancy.NewOutboxEventRecorder(db, outboxRepo)
	companyHandler := company.NewHandler(companyService)
	vacancyHandler := vacancy.NewHandlerWithRedis(vacancyService, recorder, rdb)
	applicationHandler := application.NewHandlerWithRedis(applicationService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		company.RegisterRoutes(api, companyHandler, logger)
		vacancy.RegisterRoutes(api, vacancyHandler, rbacService, rdb, logger)
		application.RegisterRoutes(api, applicationHandler, rdb, logger)
	}

	return nil
}
