package roles

import (
	"context"
	"strings"
	"unidash-service/internal/pkg/constvars"
	"unidash-service/internal/pkg/exceptions"

	"github.com/casbin/casbin/v2"
)

type CasbinRoleUsecase struct {
	enforcer *casbin.Enforcer
	known    map[string]struct{}
}

func NewCasbinRoleUsecase(e *casbin.Enforcer) *CasbinRoleUsecase {
	known := make(map[string]struct{}, len(constvars.AllDashboardRoles))
	for _, role := range constvars.AllDashboardRoles {
		known[role] = struct{}{}
	}
	return &CasbinRoleUsecase{enforcer: e, known: known}
}

// ListRoles returns the roles a request may assert.
func (u *CasbinRoleUsecase) ListRoles(ctx context.Context) []string {
	out := make([]string, len(constvars.AllDashboardRoles))
	copy(out, constvars.AllDashboardRoles)
	return out
}

func (u *CasbinRoleUsecase) IsKnownRole(role string) bool {
	_, ok := u.known[role]
	return ok
}

// Authorize returns nil when role may call method on path. A trailing slash is ignored, as
// the router serves both forms.
func (u *CasbinRoleUsecase) Authorize(ctx context.Context, role, method, path string) error {
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	if role == "" {
		return exceptions.ErrRoleMissing()
	}
	if !u.IsKnownRole(role) {
		return exceptions.ErrRoleNotAllowed(role, method, path)
	}
	ok, err := u.enforcer.Enforce(role, method, path)
	if err != nil {
		return exceptions.ErrPolicyEnforcement(err)
	}
	if !ok {
		return exceptions.ErrRoleNotAllowed(role, method, path)
	}
	return nil
}
