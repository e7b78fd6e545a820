package onboarding

import (
	"strings"
	"time"
)

type Step int

const (
	StepPersonal Step = iota + 1
	StepProfessional
	StepSkills
	StepEmergency
	StepCareer

	FirstStep = StepPersonal
	LastStep  = StepCareer
)

var stepNames = map[Step]string{
	StepPersonal:     "personal",
	StepProfessional: "professional",
	StepSkills:       "skills",
	StepEmergency:    "emergency",
	StepCareer:       "career",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Draft holds every wizard field. Each step validates only its own fields.
type Draft struct {
	FullName  string `json:"full_name" validate:"required"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Phone     string `json:"phone" validate:"required"`

	Position  string `json:"position" validate:"required"`
	Level     string `json:"level" validate:"required,oneof=estagiario junior pleno senior especialista principal"`
	Formation string `json:"formation" validate:"required"`
	Bio       string `json:"bio" validate:"required"`

	HardSkills []string `json:"hard_skills" validate:"min=1,dive,required"`
	SoftSkills []string `json:"soft_skills" validate:"min=1,dive,required"`

	ShareEmergencyContact bool   `json:"share_emergency_contact"`
	EmergencyContactName  string `json:"emergency_contact_name" validate:"required_if=ShareEmergencyContact true"`
	EmergencyContactPhone string `json:"emergency_contact_phone" validate:"required_if=ShareEmergencyContact true"`

	CareerObjectives string `json:"career_objectives" validate:"required"`
	AcceptTerms      bool   `json:"accept_terms" validate:"eq=true"`
	AcceptPrivacy    bool   `json:"accept_privacy" validate:"eq=true"`
}

var stepFields = map[Step][]string{
	StepPersonal:     {"FullName", "BirthDate", "Phone"},
	StepProfessional: {"Position", "Level", "Formation", "Bio"},
	StepSkills:       {"HardSkills", "SoftSkills"},
	StepEmergency:    {"EmergencyContactName", "EmergencyContactPhone"},
	StepCareer:       {"CareerObjectives", "AcceptTerms", "AcceptPrivacy"},
}

// Normalize trims every text field and drops blank skills.
func (d Draft) Normalize() Draft {
	d.FullName = strings.TrimSpace(d.FullName)
	d.BirthDate = strings.TrimSpace(d.BirthDate)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Position = strings.TrimSpace(d.Position)
	d.Level = strings.ToLower(strings.TrimSpace(d.Level))
	d.Formation = strings.TrimSpace(d.Formation)
	d.Bio = strings.TrimSpace(d.Bio)
	d.HardSkills = trimAll(d.HardSkills)
	d.SoftSkills = trimAll(d.SoftSkills)
	d.EmergencyContactName = strings.TrimSpace(d.EmergencyContactName)
	d.EmergencyContactPhone = strings.TrimSpace(d.EmergencyContactPhone)
	d.CareerObjectives = strings.TrimSpace(d.CareerObjectives)
	return d
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// State is the checkpoint persisted after every move.
type State struct {
	Step      Step      `json:"current_step"`
	Status    Status    `json:"status"`
	Draft     Draft     `json:"draft"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewState(d Draft) State {
	return State{Step: FirstStep, Status: StatusInProgress, Draft: d}
}
