package repository

import (
	"context"
	"fmt"
	"sync"

	"movies-api/internal/data/entity"

	"go.uber.org/zap"
)

type MovieRepository interface {
	// FindAll lists movies in insertion order. A non-empty genre keeps only
	// movies listing that genre, compared case-insensitively.
	FindAll(ctx context.Context, genre string) ([]*entity.Movie, error)
	FindByID(ctx context.Context, id string) (*entity.Movie, error)
	Create(ctx context.Context, movie *entity.Movie) error
	Update(ctx context.Context, movie *entity.Movie) error
	// Patch applies fn to the stored movie under the write lock and returns
	// the result. fn must not change the id.
	Patch(ctx context.Context, id string, fn func(*entity.Movie)) (*entity.Movie, error)
	Delete(ctx context.Context, id string) error
}

// movieRepository keeps movies in process memory.
type movieRepository struct {
	mu     sync.RWMutex
	movies []*entity.Movie
	log    *zap.Logger
}

func NewMovieRepository(seed []*entity.Movie, log *zap.Logger) MovieRepository {
	movies := make([]*entity.Movie, 0, len(seed))
	for _, m := range seed {
		movies = append(movies, m.Clone())
	}

	return &movieRepository{
		movies: movies,
		log:    log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) FindAll(_ context.Context, genre string) ([]*entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		if genre != "" && !m.HasGenre(genre) {
			continue
		}
		result = append(result, m.Clone())
	}

	return result, nil
}

func (r *movieRepository) FindByID(_ context.Context, id string) (*entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return nil, ErrMovieNotFound
	}

	return r.movies[idx].Clone(), nil
}

func (r *movieRepository) Create(_ context.Context, movie *entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if movie.ID == "" {
		return fmt.Errorf("create movie: empty id")
	}
	if r.indexOf(movie.ID) != -1 {
		r.log.Error("Duplicate movie id", zap.String("movie_id", movie.ID))
		return fmt.Errorf("create movie: id %s already exists", movie.ID)
	}

	r.movies = append(r.movies, movie.Clone())
	return nil
}

func (r *movieRepository) Update(_ context.Context, movie *entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(movie.ID)
	if idx == -1 {
		return ErrMovieNotFound
	}

	r.movies[idx] = movie.Clone()
	return nil
}

func (r *movieRepository) Patch(_ context.Context, id string, fn func(*entity.Movie)) (*entity.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return nil, ErrMovieNotFound
	}

	movie := r.movies[idx].Clone()
	fn(movie)
	movie.ID = id

	r.movies[idx] = movie
	return movie.Clone(), nil
}

func (r *movieRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return ErrMovieNotFound
	}

	r.movies = append(r.movies[:idx], r.movies[idx+1:]...)
	return nil
}

// indexOf expects r.mu to be held.
func (r *movieRepository) indexOf(id string) int {
	for i, m := range r.movies {
		if m.ID == id {
			return i
		}
	}
	return -1
}
