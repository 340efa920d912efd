package roles

import (
	"fmt"
	"strings"
	"unidash-service/internal/pkg/constvars"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// rbacModel matches a role against "METHOD path" rules. Paths use keyMatch2 patterns so
// "/timetable/faculty/:facultyID" covers every faculty.
const rbacModel = `
[request_definition]
r = sub, act, obj

[policy_definition]
p = sub, act, obj

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.act == p.act && keyMatch2(r.obj, p.obj)
`

// roleViewer is an internal grouping role; it is never accepted from a request.
const roleViewer = "timetable:viewer"

var viewerRoutes = [][2]string{
	{constvars.MethodGet, "/timetable/slots"},
	{constvars.MethodPost, "/timetable/match"},
	{constvars.MethodPost, "/timetable/preview"},
	{constvars.MethodGet, "/timetable/faculty/:facultyID"},
	{constvars.MethodGet, "/timetable/faculty/:facultyID/export"},
}

var registrarRoutes = [][2]string{
	{constvars.MethodPost, "/timetable/faculty/:facultyID/archive"},
	{constvars.MethodGet, "/timetable/audit"},
}

// roleInheritance lists child, parent pairs.
var roleInheritance = [][]string{
	{constvars.RoleDean, roleViewer},
	{constvars.RoleProgramHead, roleViewer},
	{constvars.RoleRegistrar, roleViewer},
	{constvars.RoleSuperAdmin, constvars.RoleRegistrar},
}

// NewEnforcer builds the dashboard policy in memory. basePath is the router mount point,
// e.g. "/api/v1".
func NewEnforcer(basePath string) (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("load rbac model: %w", err)
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create enforcer: %w", err)
	}

	basePath = strings.TrimRight(basePath, "/")
	policies := make([][]string, 0, len(viewerRoutes)+len(registrarRoutes))
	for _, route := range viewerRoutes {
		policies = append(policies, []string{roleViewer, route[0], basePath + route[1]})
	}
	for _, route := range registrarRoutes {
		policies = append(policies, []string{constvars.RoleRegistrar, route[0], basePath + route[1]})
	}

	if _, err := e.AddPolicies(policies); err != nil {
		return nil, fmt.Errorf("add policies: %w", err)
	}
	if _, err := e.AddGroupingPolicies(roleInheritance); err != nil {
		return nil, fmt.Errorf("add role inheritance: %w", err)
	}
	return e, nil
}
