package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type Middleware func(http.Handler) http.Handler

// Wrap applies mws so that the last one is outermost.
func Wrap(h http.Handler, mws ...Middleware) http.Handler {
	for _, mw := range mws {
		h = mw(h)
	}
	return h
}

func RequestID() Middleware {
	return chimw.RequestID
}

func Recoverer() Middleware {
	return chimw.Recoverer
}
