package rbac

import "talentflow/internal/domain"

type Permission struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

// roleInheritance lists child -> parent; a role gets every permission of its parent.
var roleInheritance = [][2]string{
	{domain.RoleManager, domain.RoleEmployee},
	{domain.RoleHR, domain.RoleManager},
	{domain.RoleAdmin, domain.RoleHR},
}

var rolePermissions = map[string][]Permission{
	domain.RoleEmployee: {
		{Resource: "team", Action: "read"},
		{Resource: "onboarding", Action: "write"},
		{Resource: "notification", Action: "read"},
		{Resource: "notification", Action: "update"},
		{Resource: "organization", Action: "read"},
	},
	domain.RoleManager: {
		{Resource: "profile", Action: "read"},
		{Resource: "analytics", Action: "read"},
	},
	domain.RoleHR: {
		{Resource: "profile", Action: "update"},
		{Resource: "profile", Action: "delete"},
		{Resource: "team", Action: "create"},
	},
	domain.RoleAdmin: {
		{Resource: "rbac", Action: "read"},
	},
}
