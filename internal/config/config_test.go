package config_test

import (
	"testing"
	"time"

	"talentflow/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Load()

		assert.NoError(t, err)
		assert.Equal(t, "3000", cfg.HTTP.Port)
		assert.Equal(t, 15.0, cfg.Engagement.PlanWeight)
		assert.Equal(t, 10.0, cfg.Engagement.AchievementWeight)
		assert.Equal(t, 10.0, cfg.Engagement.CompetencyWeight)
		assert.Equal(t, 30*time.Second, cfg.Onboarding.LockTTL)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("overrides from environment", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "8080")
		t.Setenv("ENGAGEMENT_PLAN_WEIGHT", "20")
		t.Setenv("DB_HOST", "db")
		t.Setenv("DB_NAME", "hr")

		cfg, err := config.Load()

		assert.NoError(t, err)
		assert.Equal(t, "8080", cfg.HTTP.Port)
		assert.Equal(t, 20.0, cfg.Engagement.PlanWeight)
		assert.Contains(t, cfg.DB.DSN(), "host=db")
		assert.Contains(t, cfg.DB.DSN(), "dbname=hr")
	})

	t.Run("negative weight rejected", func(t *testing.T) {
		t.Setenv("ENGAGEMENT_COMPETENCY_WEIGHT", "-1")

		_, err := config.Load()

		assert.Error(t, err)
	})
}
