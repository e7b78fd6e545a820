package rbac

import (
	"testing"

	"talentflow/internal/domain"
	"talentflow/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) Service {
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)

	svc := NewService(enforcer, zap.NewNop())
	assert.NoError(t, svc.LoadPolicy())
	return svc
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{"employee reads teams", domain.RoleEmployee, "team", "read", true},
		{"employee drives onboarding", domain.RoleEmployee, "onboarding", "write", true},
		{"employee cannot read analytics", domain.RoleEmployee, "analytics", "read", false},
		{"manager inherits employee", domain.RoleManager, "notification", "read", true},
		{"manager reads analytics", domain.RoleManager, "analytics", "read", true},
		{"manager cannot edit profiles", domain.RoleManager, "profile", "update", false},
		{"hr edits profiles", domain.RoleHR, "profile", "update", true},
		{"admin inherits hr", domain.RoleAdmin, "team", "create", true},
		{"unknown role", "guest", "team", "read", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := svc.Enforce(domain.EnforceRequest{
				CompanyID: "company-1",
				Role:      tc.role,
				Resource:  tc.resource,
				Action:    tc.action,
			})
			assert.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}
}

func TestRBACService_PermissionsForRole(t *testing.T) {
	svc := newTestService(t)

	perms, err := svc.PermissionsForRole(domain.RoleManager)

	assert.NoError(t, err)
	assert.Contains(t, perms, Permission{Resource: "analytics", Action: "read"})
	assert.Contains(t, perms, Permission{Resource: "team", Action: "read"})
	assert.NotContains(t, perms, Permission{Resource: "team", Action: "create"})
}
