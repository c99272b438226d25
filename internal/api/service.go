package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	"github.com/weatherdesk/server/internal/api/schema"
	"github.com/weatherdesk/server/internal/config"
	"github.com/weatherdesk/server/internal/storage"
	"github.com/weatherdesk/server/internal/weather"
)

// Service represents the weather query API service
type Service struct {
	server *http.Server

	Config  *config.Config
	Storage storage.Driver
	Weather *weather.Client

	writer *schema.Writer
}

// Startup starts up the API server.
// It blocks until the server terminates.
func (service *Service) Startup() error {
	server := &http.Server{
		Addr:    service.Config.ListenAddress,
		Handler: service.handler(),
	}
	service.server = server
	return server.ListenAndServe()
}

// Shutdown shuts down the API server
func (service *Service) Shutdown() {
	if service.server != nil {
		service.server.Close()
		service.server = nil
	}
}

func (service *Service) handler() http.Handler {
	// Create the HTTP schema writer
	service.writer = &schema.Writer{
		InternalErrorHook: func(err error) {
			log.Error().Err(err).Msg("the API experienced an unexpected error")
		},
	}

	// Create the HTTP router
	router := chi.NewRouter()
	router.Use(middleware.RedirectSlashes)
	router.Use(service.middlewareRequestLogger)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://*", "https://*"},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	router.NotFound(func(writer http.ResponseWriter, _ *http.Request) {
		service.writer.WriteError(writer, http.StatusNotFound, "Resource not found.")
	})
	router.MethodNotAllowed(func(writer http.ResponseWriter, _ *http.Request) {
		service.writer.WriteError(writer, http.StatusMethodNotAllowed, "Method not allowed.")
	})

	// Register the API endpoint handlers
	service.registerEndpoints(router)

	return router
}

func (service *Service) registerEndpoints(router chi.Router) {
	// Register the weather proxy endpoints
	router.Get("/weather/current", service.EndpointGetCurrentWeather)
	router.Get("/weather/forecast", service.EndpointGetForecast)

	// Register the weather query controller endpoints
	router.Post("/queries", service.EndpointCreateQuery)
	router.Get("/queries", service.EndpointGetQueries)
	router.Get("/queries/export", service.EndpointExportQueries)
	router.Get("/queries/{id:[0-9]+}", service.EndpointGetQuery)
	router.Put("/queries/{id:[0-9]+}", service.EndpointUpdateQuery)
	router.Delete("/queries/{id:[0-9]+}", service.EndpointDeleteQuery)

	// Register the static frontend handler if a frontend directory is configured
	if service.Config.FrontendDir != "" {
		router.Get("/*", service.EndpointFrontend)
	}
}
