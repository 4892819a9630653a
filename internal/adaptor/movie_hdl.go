package adaptor

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"movies-api/internal/data/repository"
	"movies-api/internal/usecase"
	"movies-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	msgMovieNotFound = "Movie not found"
	msgMovieDeleted  = "Movie deleted"

	// maxBodyBytes caps movie request bodies.
	maxBodyBytes = 1 << 20
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /movies?genre=
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	genre := strings.TrimSpace(r.URL.Query().Get("genre"))

	movies, err := h.service.GetMovies(r.Context(), genre)
	if err != nil {
		h.handleServiceError(w, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, movies)
}

// GetMovieByID handles GET /movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, movie)
}

// CreateMovie handles POST /movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	body, ok := h.readBody(w, r)
	if !ok {
		return
	}

	result := usecase.ValidateMovie(body)
	if !result.Success {
		h.log.Debug("Create movie rejected", zap.String("errors", utils.FormatValidationErrors(result.Errors)))
		utils.ResponseBadRequest(w, result.Errors)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), result.Data)
	if err != nil {
		h.handleServiceError(w, err, "create movie")
		return
	}

	utils.ResponseCreated(w, movie)
}

// UpdateMovie handles PATCH /movies/{id}. The body is validated before the
// id is looked up.
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	body, ok := h.readBody(w, r)
	if !ok {
		return
	}

	result := usecase.ValidatePartialMovie(body)
	if !result.Success {
		h.log.Debug("Update movie rejected", zap.String("errors", utils.FormatValidationErrors(result.Errors)))
		utils.ResponseBadRequest(w, result.Errors)
		return
	}

	movieID := chi.URLParam(r, "id")
	movie, err := h.service.UpdateMovie(r.Context(), movieID, result.Data)
	if err != nil {
		h.handleServiceError(w, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, movie)
}

// DeleteMovie handles DELETE /movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	if err := h.service.DeleteMovie(r.Context(), movieID); err != nil {
		h.handleServiceError(w, err, "delete movie")
		return
	}

	utils.ResponseMessage(w, msgMovieDeleted)
}

func (h *MovieHandler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.log.Warn("Failed to read request body", zap.Error(err))
		utils.ResponseBadRequest(w, []utils.FieldError{{
			Code:    "invalid_body",
			Message: "Invalid request body",
		}})
		return nil, false
	}
	return body, true
}

// handleServiceError handles errors for movie operations
func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.Is(err, repository.ErrMovieNotFound):
		h.log.Debug(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, msgMovieNotFound)

	case errors.As(err, &validationErr):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, validationErr.Errors)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
