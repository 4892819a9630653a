// internal/wire/wire.go
package wire

import (
	"movies-api/internal/adaptor"
	"movies-api/internal/data/repository"
	"movies-api/internal/usecase"
	"movies-api/pkg/middleware"
	"movies-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)
	cors := middleware.NewCORSGate(config.CORS.AllowedOrigins, logger)

	router := setupRouter(handler, cors, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	cors *middleware.CORSGate,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(cors.CORS())
	r.Use(chimiddleware.GetHead) // HEAD falls back to the GET route

	r.NotFound(handler.Home.NotFound)
	r.MethodNotAllowed(handler.Home.MethodNotAllowed)

	r.Get("/", handler.Home.Index)
	r.Get("/health", handler.Home.Health)

	wireMovie(r, handler.Movie, cors)

	return r
}
