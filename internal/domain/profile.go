package domain

const (
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

var Roles = []string{RoleAdmin, RoleHR, RoleManager, RoleEmployee}

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Career levels, ordered from first to last stage.
const (
	LevelEstagiario   = "estagiario"
	LevelJunior       = "junior"
	LevelPleno        = "pleno"
	LevelSenior       = "senior"
	LevelEspecialista = "especialista"
	LevelPrincipal    = "principal"
)

var Levels = []string{
	LevelEstagiario,
	LevelJunior,
	LevelPleno,
	LevelSenior,
	LevelEspecialista,
	LevelPrincipal,
}

// LevelRank returns the position of level in the career ladder, or -1.
func LevelRank(level string) int {
	for i, l := range Levels {
		if l == level {
			return i
		}
	}
	return -1
}

func IsValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// NextLevel returns the level after level, level itself at the top of the
// ladder, and the first level for unknown input.
func NextLevel(level string) string {
	rank := LevelRank(level)
	switch {
	case rank < 0:
		return Levels[0]
	case rank == len(Levels)-1:
		return level
	default:
		return Levels[rank+1]
	}
}
