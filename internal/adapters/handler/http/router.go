package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(actionHandler *ActionHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Route("/exec", func(r chi.Router) {
		r.Get("/", actionHandler.List)
		r.Post("/", actionHandler.Update)
	})

	return r
}
