package app

import (
	"database/sql"
	"net/http"
	"time"

	"talentflow/internal/analytics"
	"talentflow/internal/careertrack"
	"talentflow/internal/config"
	"talentflow/internal/diagnostics"
	"talentflow/internal/messaging/kafka"
	"talentflow/internal/middleware"
	"talentflow/internal/notification"
	"talentflow/internal/onboarding"
	"talentflow/internal/profile"
	"talentflow/internal/rbac"
	"talentflow/internal/rbac/infra"
	"talentflow/internal/team"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const idempotencyTTL = 24 * time.Hour

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	diag *diagnostics.Service,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	teamRepo := team.NewRepository(gormDB)
	profileRepo := profile.NewRepository(gormDB)
	careerTrackRepo := careertrack.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	analyticsRepo := analytics.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)
	if err := rbacService.LoadPolicy(); err != nil {
		return err
	}

	// --- Services ---
	weights := analytics.Weights{
		Plan:        cfg.Engagement.PlanWeight,
		Achievement: cfg.Engagement.AchievementWeight,
		Competency:  cfg.Engagement.CompetencyWeight,
	}
	teamService := team.NewService(db, teamRepo, rdb, logger)
	profileService := profile.NewService(db, profileRepo, rdb, logger)
	analyticsService := analytics.NewService(analyticsRepo, profileService, rdb, weights, cfg.Analytics.CacheTTL, logger)
	notificationService := notification.NewService(notificationRepo, logger)
	draftStore := onboarding.NewRedisDraftStore(rdb, cfg.Onboarding.DraftTTL, cfg.Onboarding.LockTTL)
	onboardingService := onboarding.NewService(db, profileRepo, careerTrackRepo, outboxRepo, draftStore, rdb, diag)

	// --- Handlers ---
	teamHandler := team.NewHandler(teamService, logger)
	profileHandler := profile.NewHandler(profileService, logger)
	analyticsHandler := analytics.NewHandler(analyticsService, logger)
	notificationHandler := notification.NewHandler(notificationService, logger)
	onboardingHandler := onboarding.NewHandler(onboardingService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(
		middleware.AuthMiddleware(cfg.Auth.Secret),
		middleware.ExtractUserID(),
		middleware.ContextLogger(logger),
	)
	{
		team.RegisterRoutes(api, teamHandler, rbacService)
		profile.RegisterRoutes(api, profileHandler, rbacService)
		analytics.RegisterRoutes(api, analyticsHandler, rbacService)
		notification.RegisterRoutes(api, notificationHandler, rbacService)
		onboarding.RegisterRoutes(api, onboardingHandler, rbacService, middleware.Idempotency(rdb, idempotencyTTL, logger))
		rbac.RegisterRoutes(api, rbacHandler, rbacService)
	}

	return nil
}
