package contracts

import "context"

type RoleUsecase interface {
	ListRoles(ctx context.Context) []string
	Authorize(ctx context.Context, role, method, path string) error
}
