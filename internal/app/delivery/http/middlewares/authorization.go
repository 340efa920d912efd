package middlewares

import (
	"context"
	"net/http"
	"strings"
	"unidash-service/internal/pkg/constvars"
	"unidash-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// RoleFromHeader reads the role asserted by the upstream gateway. A role already set by
// APIKeyAuth wins.
func (m *Middlewares) RoleFromHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if utils.GetRole(r.Context()) != "" {
			next.ServeHTTP(w, r)
			return
		}

		role := strings.TrimSpace(r.Header.Get(constvars.HeaderXUserRole))
		if role == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_ROLE_KEY, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Authorize checks the request role against the route policy.
func (m *Middlewares) Authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := utils.GetRole(r.Context())

		if err := m.RoleUsecase.Authorize(r.Context(), role, r.Method, r.URL.Path); err != nil {
			m.Log.Warn("Middlewares.Authorize request rejected",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingRoleKey, role),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}
