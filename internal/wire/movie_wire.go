package wire

import (
	"movies-api/internal/adaptor"
	"movies-api/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	cors *middleware.CORSGate,
) {
	r.Route("/movies", func(r chi.Router) {
		r.Get("/", movieHandler.GetMovies)    // GET /movies?genre=
		r.Post("/", movieHandler.CreateMovie) // POST /movies
		r.Options("/", cors.Preflight)        // OPTIONS /movies

		r.Get("/{id}", movieHandler.GetMovieByID)   // GET /movies/{id}
		r.Patch("/{id}", movieHandler.UpdateMovie)  // PATCH /movies/{id}
		r.Delete("/{id}", movieHandler.DeleteMovie) // DELETE /movies/{id}
	})
}
