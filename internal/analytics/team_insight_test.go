package analytics_test

import (
	"testing"

	"talentflow/internal/analytics"

	"github.com/stretchr/testify/assert"
)

func TestAggregateByTeam(t *testing.T) {
	teamA := &analytics.TeamRef{ID: "t-a", Name: "A"}
	teamB := &analytics.TeamRef{ID: "t-b", Name: "B"}

	t.Run("groups by team name", func(t *testing.T) {
		records := []analytics.ProfileRecord{
			{ID: "1", Team: teamA, Level: "junior", Points: 10, HardSkills: []string{"go", "sql"}, SoftSkills: []string{"comunicacao"}},
			{ID: "2", Team: teamA, Level: "senior", Points: 30, HardSkills: []string{"go"}},
			{ID: "3", Team: teamB, Level: "junior", Points: 5},
		}
		metrics := []analytics.PerformanceMetric{
			{ProfileID: "1", EngagementScore: 50},
			{ProfileID: "2", EngagementScore: 70},
			{ProfileID: "3", EngagementScore: 20},
		}

		insights := analytics.AggregateByTeam(records, metrics)

		assert.Len(t, insights, 2)
		assert.Equal(t, 2, insights["A"].MemberCount)
		assert.Equal(t, 1, insights["B"].MemberCount)
		assert.Equal(t, "t-a", insights["A"].TeamID)
		assert.Equal(t, 20.0, insights["A"].AveragePoints)
		assert.Equal(t, 60.0, insights["A"].AveragePerformance)
		assert.Equal(t, 2, insights["A"].SkillDistribution["go"])
		assert.Equal(t, 1, insights["A"].SkillDistribution["comunicacao"])
		assert.Equal(t, map[string]int{"junior": 1, "senior": 1}, insights["A"].LevelDistribution)
	})

	t.Run("unassigned profiles go to the sentinel bucket", func(t *testing.T) {
		records := []analytics.ProfileRecord{
			{ID: "1"},
			{ID: "2", Team: &analytics.TeamRef{ID: "t-x"}},
			{ID: "3", Team: teamB},
		}

		insights := analytics.AggregateByTeam(records, nil)

		assert.Equal(t, 2, insights[analytics.NoTeamName].MemberCount)
		assert.Equal(t, 0.0, insights[analytics.NoTeamName].AveragePerformance)
	})

	t.Run("never drops a profile", func(t *testing.T) {
		records := make([]analytics.ProfileRecord, 0, 25)
		for i := 0; i < 25; i++ {
			r := analytics.ProfileRecord{ID: string(rune('a' + i))}
			switch i % 3 {
			case 0:
				r.Team = teamA
			case 1:
				r.Team = teamB
			}
			records = append(records, r)
		}

		insights := analytics.AggregateByTeam(records, nil)

		total := 0
		for _, in := range insights {
			total += len(in.Members)
		}
		assert.Equal(t, len(records), total)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, analytics.AggregateByTeam(nil, nil))
	})
}
