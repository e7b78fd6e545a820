package analytics

import "math"

const maxEngagementScore = 100

// Weights scale each engagement component. Points always count as points/10.
type Weights struct {
	Plan        float64 `json:"plan"`
	Achievement float64 `json:"achievement"`
	Competency  float64 `json:"competency"`
}

func DefaultWeights() Weights {
	return Weights{Plan: 15, Achievement: 10, Competency: 10}
}

// ComputeEngagementScore returns
// min(100, points/10 + plans*w.Plan + achievements*w.Achievement + avgRating*w.Competency)
// clamped to [0, 100]. Negative and NaN inputs count as zero.
func ComputeEngagementScore(points, completedPlans, achievements int, avgRating float64, w Weights) float64 {
	score := float64(nonNegative(points))/10 +
		float64(nonNegative(completedPlans))*finite(w.Plan) +
		float64(nonNegative(achievements))*finite(w.Achievement) +
		finite(avgRating)*finite(w.Competency)

	return math.Max(0, math.Min(maxEngagementScore, score))
}

// AverageCompetencyRating takes the higher of self and manager rating per
// competency, missing ratings as 0, and averages them. Empty input yields 0.
func AverageCompetencyRating(scores []CompetencyScore) float64 {
	if len(scores) == 0 {
		return 0
	}

	var sum float64
	for _, s := range scores {
		sum += math.Max(ratingValue(s.Self), ratingValue(s.Manager))
	}
	return sum / float64(len(scores))
}

func ratingValue(r *float64) float64 {
	if r == nil {
		return 0
	}
	return finite(*r)
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// finite maps NaN, infinities and negatives to 0.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
