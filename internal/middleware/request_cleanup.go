package middleware

import (
	"io"
	"net/http"
)

// MaxRequestBodyBytes is far above any measurement, goal or profile payload.
const MaxRequestBodyBytes = 64 * 1024

// LimitAndDrainBody caps the request body at maxBytes, and once the handler is
// done drains what is left and closes it so keep-alive connections are reused.
func LimitAndDrainBody(maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			body := http.MaxBytesReader(w, r.Body, maxBytes)
			r.Body = body
			next.ServeHTTP(w, r)

			_, _ = io.Copy(io.Discard, body)
			_ = body.Close()
		})
	}
}
