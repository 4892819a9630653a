package adaptor

import (
	"movies-api/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Home  *HomeHandler
	Movie *MovieHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Home:  NewHomeHandler(),
		Movie: NewMovieHandler(service.Movie, log),
	}
}
