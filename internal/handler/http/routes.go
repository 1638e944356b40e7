package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.cfg.MetricsEnabled {
		router.Use(h.withMetrics)
		router.Handle("/metrics", h.metrics.Handler())
	}

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/bios-profiles", http.StatusFound)
	})

	router.Group(func(r chi.Router) {
		if h.cfg.RequestTimeout > 0 {
			r.Use(middleware.Timeout(h.cfg.RequestTimeout))
		}

		// REST API
		r.Route("/api", func(r chi.Router) {
			r.Use(middleware.Compress(compressionLevel, "application/json"))

			r.Get("/version", h.getServerVersion)
			r.Get("/version/build", h.getBuildInfo)

			r.Route("/bios-profiles", func(r chi.Router) {
				r.Get("/", h.getAllProfiles)
				r.Post("/", h.createProfile)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.getProfileByID)
					r.Put("/", h.updateProfile)
					r.Delete("/", h.deleteProfile)

					r.Get("/settings", h.getSettings)
					r.Post("/settings", h.addSetting)
					r.Put("/settings/{settingID}", h.updateSettingValue)
					r.Delete("/settings/{settingID}", h.deleteSetting)

					r.Get("/logs", h.getLogs)
					r.Post("/logs", h.addLog)
				})
			})

			r.Route("/devenv-audit", func(r chi.Router) {
				r.Get("/", h.getAuditReport)
				r.Get("/components", h.getDetectedComponents)
				r.Get("/env-vars", h.getEnvironmentVariables)
				r.Get("/issues", h.getIdentifiedIssues)
			})

			r.Route("/system-inventory", func(r chi.Router) {
				r.Get("/", h.getInstalledSoftware)
				r.Get("/host", h.getHostSummary)
				r.Get("/firmware", h.getFirmwareSnapshot)
			})
		})

		// server-rendered pages
		r.Route("/bios-profiles", func(r chi.Router) {
			r.Get("/", h.pageProfiles)
			r.Post("/", h.pageSaveProfile)
			r.Get("/new", h.pageNewProfile)
			r.Get("/edit/{id}", h.pageEditProfile)
			r.Get("/delete/{id}", h.pageDeleteProfile)
			r.Get("/{id}", h.pageProfileDetail)
			r.Post("/{id}/settings", h.pageAddSetting)
			r.Post("/{id}/logs", h.pageAddLog)
		})
		r.Get("/devenv-audit", h.pageDevEnvAudit)
		r.Get("/system-inventory", h.pageSystemInventory)
	})

	return router
}
