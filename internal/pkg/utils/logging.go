package utils

import (
	"context"
	"unidash-service/internal/pkg/constvars"
)

func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

func GetRole(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	role, _ := ctx.Value(constvars.CONTEXT_ROLE_KEY).(string)
	return role
}
