package analytics

// NoTeamName is the bucket for profiles without a team.
const NoTeamName = "Sem Time"

// TeamRef is the team join shape carried by a profile record.
type TeamRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ManagerRef is the manager join shape carried by a profile record.
type ManagerRef struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

// ProfileRecord is the read-only view of a profile the engine works on.
type ProfileRecord struct {
	ID         string      `json:"id"`
	FullName   string      `json:"full_name"`
	Email      string      `json:"email"`
	Role       string      `json:"role"`
	Level      string      `json:"level"`
	Status     string      `json:"status"`
	Points     int         `json:"points"`
	HardSkills []string    `json:"hard_skills"`
	SoftSkills []string    `json:"soft_skills"`
	Team       *TeamRef    `json:"team,omitempty"`
	Manager    *ManagerRef `json:"manager,omitempty"`
}

// TeamName returns the team bucket name of the record.
func (p ProfileRecord) TeamName() string {
	if p.Team == nil || p.Team.Name == "" {
		return NoTeamName
	}
	return p.Team.Name
}

// CompetencyScore is one competency assessed by the employee and/or manager.
// Nil means not rated.
type CompetencyScore struct {
	Self    *float64 `json:"self_rating,omitempty"`
	Manager *float64 `json:"manager_rating,omitempty"`
}

// PerformanceMetric is derived per profile and never persisted.
type PerformanceMetric struct {
	ProfileID           string  `json:"profile_id"`
	FullName            string  `json:"full_name"`
	TeamName            string  `json:"team_name"`
	Level               string  `json:"level"`
	Points              int     `json:"points"`
	CompletedPlans      int     `json:"completed_plans"`
	Achievements        int     `json:"achievements"`
	AvgCompetencyRating float64 `json:"avg_competency_rating"`
	EngagementScore     float64 `json:"engagement_score"`
}

// MemberSummary is a team member as listed in a TeamInsight.
type MemberSummary struct {
	ProfileID string `json:"profile_id"`
	FullName  string `json:"full_name"`
	Level     string `json:"level"`
	Points    int    `json:"points"`
}

type TeamInsight struct {
	TeamID             string          `json:"team_id,omitempty"`
	TeamName           string          `json:"team_name"`
	MemberCount        int             `json:"member_count"`
	Members            []MemberSummary `json:"members"`
	AveragePerformance float64         `json:"average_performance"`
	AveragePoints      float64         `json:"average_points"`
	SkillDistribution  map[string]int  `json:"skill_distribution"`
	LevelDistribution  map[string]int  `json:"level_distribution"`
}

type ManagerGroup struct {
	Manager ProfileRecord   `json:"manager"`
	Members []ProfileRecord `json:"members"`
}

type Hierarchy struct {
	Admins     []ProfileRecord `json:"admins"`
	HR         []ProfileRecord `json:"hr"`
	Managers   []ManagerGroup  `json:"managers"`
	Unassigned []ProfileRecord `json:"unassigned"`
	// OtherReports holds employees whose manager is an admin, hr or employee
	// profile rather than a manager.
	OtherReports []ProfileRecord `json:"other_reports"`
}
