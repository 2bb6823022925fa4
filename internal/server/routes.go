package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"rating-service/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Get("/health", handler(s.getHealth))

		r.Route("/v1", func(r chi.Router) {
			r.Post("/quote", handler(s.postV1Quote))
			r.Post("/bulk-quote", handler(s.postV1BulkQuote))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
