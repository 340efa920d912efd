package contracts

import "context"

// ServiceTokenSource yields the bearer token sent with every academic backend call.
type ServiceTokenSource interface {
	Token(ctx context.Context) (string, error)
}
