package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/roadnet-api/internal/api"
	apiMiddleware "github.com/phrazzld/roadnet-api/internal/api/middleware"
)

// setupRouter registers middleware and every API route.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	roadHandler := api.NewRoadHandler(app.roadService, app.logger)
	healthHandler := api.NewHealthHandler(app.db, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/nodes/{node_id}", roadHandler.GetNode)
		r.Get("/closest-node/{longitude}/{latitude}", roadHandler.ClosestNodes)
		r.Get("/links/{link_dir}", roadHandler.GetLink)
		r.Get("/link-nodes/{from_node_id}/{to_node_id}", roadHandler.LinksBetweenNodes)
		r.Post("/link-nodes", roadHandler.LinksBetweenMultiNodes)
		r.Post("/travel-data", roadHandler.TravelData)
		r.Post("/travel-data-file", roadHandler.TravelDataFile)
	})

	r.Get("/health", healthHandler.Health)

	return r
}
