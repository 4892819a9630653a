package adaptor

import (
	"net/http"

	"movies-api/pkg/utils"
)

const greeting = "Hola Mundo"

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Index handles GET /
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	utils.ResponseMessage(w, greeting)
}

// NotFound handles unknown routes
func (h *HomeHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	utils.ResponseNotFound(w, "Not found")
}

// MethodNotAllowed handles known routes hit with an unsupported method
func (h *HomeHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.ResponseMethodNotAllowed(w, "Method not allowed")
}

// Health handles GET /health
func (h *HomeHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
