package middlewares

import (
	"unidash-service/internal/app/config"
	"unidash-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	RoleUsecase    contracts.RoleUsecase
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, roleUsecase contracts.RoleUsecase, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		RoleUsecase:    roleUsecase,
		InternalConfig: internalConfig,
	}
}
