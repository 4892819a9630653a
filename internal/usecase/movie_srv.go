package usecase

import (
	"context"
	"errors"
	"fmt"

	"movies-api/internal/data/entity"
	"movies-api/internal/data/repository"
	"movies-api/internal/dto/request"
	"movies-api/internal/dto/response"
	"movies-api/pkg/utils"

	"go.uber.org/zap"
)

// ErrInvalidMovie is matched by every *ValidationError.
var ErrInvalidMovie = errors.New("invalid movie")

// ValidationError carries the field errors that rejected a request.
type ValidationError struct {
	Errors []utils.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Errors)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidMovie
}

type MovieService interface {
	GetMovies(ctx context.Context, genre string) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MoviePatchRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, genre string) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx, genre)
	if err != nil {
		s.log.Error("Failed to get movies",
			zap.Error(err),
			zap.String("genre", genre),
		)
		return nil, fmt.Errorf("get movies: %w", err)
	}

	s.log.Debug("Movies retrieved",
		zap.Int("count", len(movies)),
		zap.String("genre", genre),
	)

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, s.wrap(err, "get movie by id", movieID)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Errors: errs}
	}

	rate := entity.DefaultRate
	if req.Rate != nil {
		rate = *req.Rate
	}

	movie := &entity.Movie{
		ID:       utils.GenerateUUIDString(),
		Title:    *req.Title,
		Year:     int(*req.Year),
		Director: *req.Director,
		Duration: int(*req.Duration),
		Poster:   *req.Poster,
		Genre:    toGenres(req.Genre),
		Rate:     rate,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

// UpdateMovie overwrites exactly the fields present in req. The id never
// changes.
func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MoviePatchRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Errors: errs}
	}

	// Merge runs inside the store's write lock so concurrent patches of the
	// same movie cannot overwrite each other.
	movie, err := s.repo.Movie.Patch(ctx, movieID, func(movie *entity.Movie) {
		if req.Title != nil {
			movie.Title = *req.Title
		}
		if req.Year != nil {
			movie.Year = int(*req.Year)
		}
		if req.Director != nil {
			movie.Director = *req.Director
		}
		if req.Duration != nil {
			movie.Duration = int(*req.Duration)
		}
		if req.Rate != nil {
			movie.Rate = *req.Rate
		}
		if req.Poster != nil {
			movie.Poster = *req.Poster
		}
		if req.Genre != nil {
			movie.Genre = toGenres(req.Genre)
		}
	})
	if err != nil {
		return nil, s.wrap(err, "update movie", movieID)
	}

	s.log.Info("Movie updated", zap.String("movie_id", movieID))

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	if err := s.repo.Movie.Delete(ctx, movieID); err != nil {
		return s.wrap(err, "delete movie", movieID)
	}

	s.log.Info("Movie deleted", zap.String("movie_id", movieID))
	return nil
}

// wrap logs unexpected repository failures; not-found is left to the caller.
func (s *movieService) wrap(err error, operation, movieID string) error {
	if !errors.Is(err, repository.ErrMovieNotFound) {
		s.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
	}
	return fmt.Errorf("%s: %w", operation, err)
}

func toGenres(values []string) []entity.Genre {
	genres := make([]entity.Genre, len(values))
	for i, v := range values {
		genres[i] = entity.Genre(v)
	}
	return genres
}
