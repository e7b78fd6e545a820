package analytics

// AggregateByTeam groups records by team name (NoTeamName when unassigned).
// Every record lands in exactly one bucket. AveragePerformance is the mean
// engagement score of the members that have a metric.
func AggregateByTeam(records []ProfileRecord, metrics []PerformanceMetric) map[string]TeamInsight {
	scoreByProfile := make(map[string]float64, len(metrics))
	for _, m := range metrics {
		scoreByProfile[m.ProfileID] = m.EngagementScore
	}

	type accumulator struct {
		insight     TeamInsight
		pointsSum   int
		scoreSum    float64
		scoredCount int
	}

	buckets := make(map[string]*accumulator)
	for _, r := range records {
		name := r.TeamName()
		acc, ok := buckets[name]
		if !ok {
			acc = &accumulator{insight: TeamInsight{
				TeamName:          name,
				Members:           []MemberSummary{},
				SkillDistribution: map[string]int{},
				LevelDistribution: map[string]int{},
			}}
			if r.Team != nil {
				acc.insight.TeamID = r.Team.ID
			}
			buckets[name] = acc
		}

		acc.insight.Members = append(acc.insight.Members, MemberSummary{
			ProfileID: r.ID,
			FullName:  r.FullName,
			Level:     r.Level,
			Points:    r.Points,
		})
		acc.pointsSum += r.Points

		if score, ok := scoreByProfile[r.ID]; ok {
			acc.scoreSum += score
			acc.scoredCount++
		}
		for _, skill := range r.HardSkills {
			acc.insight.SkillDistribution[skill]++
		}
		for _, skill := range r.SoftSkills {
			acc.insight.SkillDistribution[skill]++
		}
		if r.Level != "" {
			acc.insight.LevelDistribution[r.Level]++
		}
	}

	out := make(map[string]TeamInsight, len(buckets))
	for name, acc := range buckets {
		in := acc.insight
		in.MemberCount = len(in.Members)
		in.AveragePoints = float64(acc.pointsSum) / float64(in.MemberCount)
		if acc.scoredCount > 0 {
			in.AveragePerformance = acc.scoreSum / float64(acc.scoredCount)
		}
		out[name] = in
	}
	return out
}
