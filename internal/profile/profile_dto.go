package profile

type Filter struct {
	Status string
	Role   string
	TeamID string
}

type UpdateProfileRequest struct {
	FullName   string   `json:"full_name" binding:"required,max=255"`
	Role       string   `json:"role" binding:"required,oneof=admin hr manager employee"`
	Level      string   `json:"level" binding:"required,oneof=estagiario junior pleno senior especialista principal"`
	TeamID     *string  `json:"team_id" binding:"omitempty,uuid"`
	ManagerID  *string  `json:"manager_id" binding:"omitempty,uuid"`
	Points     int      `json:"points" binding:"min=0"`
	Position   string   `json:"position"`
	Phone      string   `json:"phone"`
	Bio        string   `json:"bio"`
	Formation  string   `json:"formation"`
	HardSkills []string `json:"hard_skills"`
	SoftSkills []string `json:"soft_skills"`
}

type TeamResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ManagerResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

type ProfileResponse struct {
	ID          string           `json:"id"`
	CompanyID   string           `json:"company_id"`
	UserID      string           `json:"user_id"`
	FullName    string           `json:"full_name"`
	Email       string           `json:"email"`
	Role        string           `json:"role"`
	Level       string           `json:"level"`
	Status      string           `json:"status"`
	Points      int              `json:"points"`
	Position    string           `json:"position,omitempty"`
	Phone       string           `json:"phone,omitempty"`
	Bio         string           `json:"bio,omitempty"`
	Formation   string           `json:"formation,omitempty"`
	HardSkills  []string         `json:"hard_skills"`
	SoftSkills  []string         `json:"soft_skills"`
	IsOnboarded bool             `json:"is_onboarded"`
	OnboardedAt string           `json:"onboarded_at,omitempty"`
	Team        *TeamResponse    `json:"team,omitempty"`
	Manager     *ManagerResponse `json:"manager,omitempty"`
}
