package analytics

import (
	"cmp"
	"errors"
	"slices"
	"strings"
)

type MetricKey string

const (
	MetricEngagementScore     MetricKey = "engagement_score"
	MetricPoints              MetricKey = "points"
	MetricCompletedPlans      MetricKey = "completed_plans"
	MetricAchievements        MetricKey = "achievements"
	MetricAvgCompetencyRating MetricKey = "avg_competency_rating"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

var ErrUnknownMetric = errors.New("unknown metric key")

// ParseDirection defaults to Descending, the leaderboard order.
func ParseDirection(v string) Direction {
	if strings.EqualFold(strings.TrimSpace(v), string(Ascending)) {
		return Ascending
	}
	return Descending
}

func metricValue(key MetricKey) (func(PerformanceMetric) float64, error) {
	switch key {
	case MetricEngagementScore:
		return func(m PerformanceMetric) float64 { return m.EngagementScore }, nil
	case MetricPoints:
		return func(m PerformanceMetric) float64 { return float64(m.Points) }, nil
	case MetricCompletedPlans:
		return func(m PerformanceMetric) float64 { return float64(m.CompletedPlans) }, nil
	case MetricAchievements:
		return func(m PerformanceMetric) float64 { return float64(m.Achievements) }, nil
	case MetricAvgCompetencyRating:
		return func(m PerformanceMetric) float64 { return m.AvgCompetencyRating }, nil
	default:
		return nil, ErrUnknownMetric
	}
}

// RankByMetric returns a stably sorted copy of metrics. Equal values keep
// their input order in either direction.
func RankByMetric(metrics []PerformanceMetric, key MetricKey, dir Direction) ([]PerformanceMetric, error) {
	value, err := metricValue(key)
	if err != nil {
		return nil, err
	}

	ranked := slices.Clone(metrics)
	slices.SortStableFunc(ranked, func(a, b PerformanceMetric) int {
		if dir == Ascending {
			return cmp.Compare(value(a), value(b))
		}
		return cmp.Compare(value(b), value(a))
	})
	return ranked, nil
}
