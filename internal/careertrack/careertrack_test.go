package careertrack_test

import (
	"testing"
	"time"

	"talentflow/internal/careertrack"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewDefault(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	companyID, profileID := uuid.New(), uuid.New()

	track := careertrack.NewDefault(companyID, profileID, "junior", "Liderar um squad", now)

	assert.Equal(t, profileID, track.ProfileID)
	assert.Equal(t, "junior", track.CurrentLevel)
	assert.Equal(t, "pleno", track.TargetLevel)
	assert.Equal(t, careertrack.StatusActive, track.Status)
	assert.Equal(t, now, track.CreatedAt)

	top := careertrack.NewDefault(companyID, profileID, "principal", "", now)
	assert.Equal(t, "principal", top.TargetLevel)
}
