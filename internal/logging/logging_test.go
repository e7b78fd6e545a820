package logging_test

import (
	"testing"

	"talentflow/internal/logging"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Run("level override", func(t *testing.T) {
		logger, err := logging.New("development", "warn")

		assert.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zap.InfoLevel))
		assert.True(t, logger.Core().Enabled(zap.WarnLevel))
	})

	t.Run("production defaults to info", func(t *testing.T) {
		logger, err := logging.New("production", "")

		assert.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zap.DebugLevel))
		assert.True(t, logger.Core().Enabled(zap.InfoLevel))
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := logging.New("development", "loud")

		assert.Error(t, err)
	})
}
