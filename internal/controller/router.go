package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (c controller) GetMux() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(c.requestIdMw)
	r.Use(c.requestLoggingMw)
	r.Use(cors.AllowAll().Handler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
		})

		r.Route("/state", func(r chi.Router) {
			r.Get("/", c.getState)
			r.Post("/save", c.saveState)
			r.Post("/load", c.loadState)
			r.Post("/reconcile", c.reconcileState)
		})

		r.Route("/cells", func(r chi.Router) {
			r.Post("/", c.addCell)
			r.Route("/{cell-id}", func(r chi.Router) {
				r.Delete("/", c.removeCell)
				r.Post("/move", c.moveCell)
				r.Post("/resize", c.resizeCell)
				r.Put("/content", c.assignContent)
				r.Delete("/content", c.clearContent)
				r.Post("/activate", c.activateCell)
				r.Post("/deactivate", c.deactivateCell)
				r.Put("/player", c.updatePlayerState)
			})
		})

		r.Route("/pool", func(r chi.Router) {
			r.Get("/", c.getPool)
			r.Delete("/", c.clearPool)
		})
		r.Put("/player/mute-others", c.setMuteOthers)

		r.Route("/presets", func(r chi.Router) {
			r.Get("/", c.listPresets)
			r.Post("/", c.savePreset)
			r.Route("/{preset-id}", func(r chi.Router) {
				r.Post("/apply", c.applyPreset)
				r.Delete("/", c.deletePreset)
			})
		})

		r.Route("/layout", func(r chi.Router) {
			r.Get("/encoded", c.encodeLayout)
			r.Post("/decode", c.decodeLayout)
			r.Post("/import", c.importLayout)
			r.Get("/validate", c.validateLayout)
		})

		r.Route("/gesture", func(r chi.Router) {
			r.Post("/start", c.startGesture)
			r.Post("/stop", c.stopGesture)
		})

		r.Post("/metadata", c.fetchMetadata)

		r.Get("/ws/events", c.streamEvents)
	})

	return r
}
