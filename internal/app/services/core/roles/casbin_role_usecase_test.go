package roles

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"unidash-service/internal/pkg/constvars"
	"unidash-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRolePolicy(t *testing.T) {
	enforcer, err := NewEnforcer("/api/v1/")
	require.NoError(t, err)
	uc := NewCasbinRoleUsecase(enforcer)
	ctx := context.Background()

	allowed := func(role, method, path string) bool {
		return uc.Authorize(ctx, role, method, path) == nil
	}

	t.Run("Every Role Reads Timetables", func(t *testing.T) {
		for _, role := range constvars.AllDashboardRoles {
			assert.True(t, allowed(role, http.MethodGet, "/api/v1/timetable/slots"), role)
			assert.True(t, allowed(role, http.MethodPost, "/api/v1/timetable/match"), role)
			assert.True(t, allowed(role, http.MethodPost, "/api/v1/timetable/preview"), role)
			assert.True(t, allowed(role, http.MethodGet, "/api/v1/timetable/faculty/F-17"), role)
			assert.True(t, allowed(role, http.MethodGet, "/api/v1/timetable/faculty/F-17/export"), role)
		}
	})

	t.Run("Archive And Audit Need Registrar", func(t *testing.T) {
		for _, role := range []string{constvars.RoleDean, constvars.RoleProgramHead} {
			assert.False(t, allowed(role, http.MethodPost, "/api/v1/timetable/faculty/F-17/archive"), role)
			assert.False(t, allowed(role, http.MethodGet, "/api/v1/timetable/audit"), role)
		}
		for _, role := range []string{constvars.RoleRegistrar, constvars.RoleSuperAdmin} {
			assert.True(t, allowed(role, http.MethodPost, "/api/v1/timetable/faculty/F-17/archive"), role)
			assert.True(t, allowed(role, http.MethodGet, "/api/v1/timetable/audit"), role)
		}
	})

	t.Run("Trailing Slash", func(t *testing.T) {
		assert.True(t, allowed(constvars.RoleDean, http.MethodGet, "/api/v1/timetable/faculty/F-17/"))
		assert.True(t, allowed(constvars.RoleDean, http.MethodGet, "/api/v1/timetable/slots/"))
		assert.False(t, allowed(constvars.RoleDean, http.MethodGet, "/api/v1/timetable/audit/"))
	})

	t.Run("Method And Path Must Both Match", func(t *testing.T) {
		assert.False(t, allowed(constvars.RoleSuperAdmin, http.MethodDelete, "/api/v1/timetable/slots"))
		assert.False(t, allowed(constvars.RoleSuperAdmin, http.MethodGet, "/api/v2/timetable/slots"))
		assert.False(t, allowed(constvars.RoleDean, http.MethodGet, "/api/v1/timetable/faculty/F-17/extra"))
	})

	t.Run("Error Codes", func(t *testing.T) {
		var customErr *exceptions.CustomError

		err := uc.Authorize(ctx, "", http.MethodGet, "/api/v1/timetable/slots")
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusUnauthorized, customErr.StatusCode)

		err = uc.Authorize(ctx, "Janitor", http.MethodGet, "/api/v1/timetable/slots")
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusForbidden, customErr.StatusCode)

		err = uc.Authorize(ctx, roleViewer, http.MethodGet, "/api/v1/timetable/slots")
		require.True(t, errors.As(err, &customErr), "internal grouping role must not be accepted")
		assert.Equal(t, http.StatusForbidden, customErr.StatusCode)
	})

	t.Run("List Roles", func(t *testing.T) {
		roles := uc.ListRoles(ctx)
		assert.ElementsMatch(t, constvars.AllDashboardRoles, roles)
	})
}
