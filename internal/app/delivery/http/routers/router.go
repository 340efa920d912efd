package routers

import (
	"fmt"
	"unidash-service/internal/app/config"
	"unidash-service/internal/app/delivery/http/controllers"
	"unidash-service/internal/app/delivery/http/middlewares"
	"unidash-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

// BasePath is the mount point of every versioned route, e.g. "/api/v1".
func BasePath(internalConfig *config.InternalConfig) string {
	return fmt.Sprintf("/%s/%s", internalConfig.App.EndpointPrefix, internalConfig.App.Version)
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	accessLog *logrus.Logger,
	timetableController *controllers.TimetableController,
) {

	corsOptions := cors.Options{
		AllowedOrigins: internalConfig.App.AllowedOrigins,
		AllowedMethods: []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodOptions},
		AllowedHeaders: []string{
			constvars.HeaderAccept,
			constvars.HeaderAuthorization,
			constvars.HeaderContentType,
			constvars.HeaderXRequestID,
			constvars.HeaderXUserRole,
			constvars.HeaderXAPIKey,
		},
		ExposedHeaders:   []string{constvars.HeaderXRequestID, constvars.HeaderContentDisposition},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middleware.StripSlashes)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.Logging(middlewares.Log))
	if accessLog != nil {
		router.Use(middlewares.RequestLogger(internalConfig.App, accessLog))
	}
	router.Use(middlewares.APIKeyAuth)

	normalLimiter, apiKeyLimiter := middlewares.CreateRateLimiters()
	router.Use(middlewares.ConditionalRateLimit(normalLimiter, apiKeyLimiter))

	router.Use(middlewares.RoleFromHeader)

	router.Route(BasePath(internalConfig), func(r chi.Router) {
		r.Route("/timetable", func(r chi.Router) {
			attachTimetableRoutes(r, internalConfig, middlewares, timetableController)
		})
	})
}
