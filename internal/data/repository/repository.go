package repository

import (
	"errors"

	"movies-api/internal/data/entity"

	"go.uber.org/zap"
)

// ErrMovieNotFound is returned when no stored movie has the requested id.
var ErrMovieNotFound = errors.New("movie not found")

type Repository struct {
	Movie MovieRepository
}

func NewRepository(movies []*entity.Movie, log *zap.Logger) *Repository {
	return &Repository{
		Movie: NewMovieRepository(movies, log),
	}
}
