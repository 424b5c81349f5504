package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader carries the request identity between client and server.
const RequestIDHeader = "X-Request-ID"

// WithRequestID echoes the client-supplied request ID, or generates one when
// the header is absent, and sets it on the response.
func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}
