package routers

import (
	"unidash-service/internal/app/config"
	"unidash-service/internal/app/delivery/http/controllers"
	"unidash-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachTimetableRoutes(router chi.Router, internalConfig *config.InternalConfig, m *middlewares.Middlewares, c *controllers.TimetableController) {
	exportLimiter := middlewares.NewRateLimiter(
		m.Log,
		internalConfig.App.ExportRateLimitPerMinute,
		internalConfig.App.ExportRateLimitBurst,
		internalConfig.App.ExportRateLimitBlock,
	)

	router.Group(func(r chi.Router) {
		r.Use(m.Authorize)

		r.Get("/slots", c.GetTimeSlots)
		r.Post("/match", c.MatchSchedule)
		r.Post("/preview", c.PreviewTimetable)
		r.Get("/audit", c.AuditTerm)

		r.Route("/faculty/{facultyID}", func(r chi.Router) {
			r.Get("/", c.GetFacultyTimetable)
			r.With(exportLimiter.Limit).Get("/export", c.ExportFacultyTimetable)
			r.With(exportLimiter.Limit).Post("/archive", c.ArchiveFacultyTimetable)
		})
	})
}
