package app

import (
	"context"
	"database/sql"

	"talentflow/internal/analytics"
	"talentflow/internal/careertrack"
	"talentflow/internal/config"
	"talentflow/internal/diagnostics"
	"talentflow/internal/messaging/kafka"
	"talentflow/internal/notification"
	"talentflow/internal/profile"
	"talentflow/internal/shared/connection"
	"talentflow/internal/team"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects the infrastructure, migrates the schema and registers
// every module on router. The returned func releases the connections.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger, diag *diagnostics.Service) (func(), error) {
	log := logger.Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB.DSN(), cfg.DB.MaxRetries, logger)
	if err != nil {
		return nil, err
	}
	log.Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.MaxRetries, logger)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	log.Info("redis connection established")

	if err := Migrate(context.Background(), gormDB, sqlDB); err != nil {
		_ = rdb.Close()
		_ = sqlDB.Close()
		return nil, err
	}

	if err := registerModules(router, cfg, sqlDB, gormDB, rdb, diag, logger); err != nil {
		_ = rdb.Close()
		_ = sqlDB.Close()
		return nil, err
	}

	return func() {
		if err := rdb.Close(); err != nil {
			log.Warn("close redis failed", zap.Error(err))
		}
		if err := sqlDB.Close(); err != nil {
			log.Warn("close database failed", zap.Error(err))
		}
	}, nil
}

// Migrate creates the tables owned by the gorm entities and the outbox table.
func Migrate(ctx context.Context, gormDB *gorm.DB, sqlDB *sql.DB) error {
	if err := gormDB.WithContext(ctx).AutoMigrate(
		&team.Team{},
		&profile.Profile{},
		&careertrack.CareerTrack{},
		&notification.Notification{},
		&analytics.DevelopmentPlan{},
		&analytics.CompetencyRating{},
		&analytics.Achievement{},
	); err != nil {
		return err
	}
	_, err := sqlDB.ExecContext(ctx, kafka.OutboxSchema)
	return err
}
