package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestID assigns every request a unique id. An id supplied by the
// client is kept; otherwise a fresh UUID is generated. The id travels
// on both the request and response X-Request-ID headers so error
// bodies and logs can reference it.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
			r.Header.Set("X-Request-ID", id)
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}
