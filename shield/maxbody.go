package shield

import "net/http"

// MaxBody returns middleware that caps the request body size for every
// request. Bulk-import payloads can be large, so the cap is configured in
// main rather than hard-coded.
func MaxBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
