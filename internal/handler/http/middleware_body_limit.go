package http

import "net/http"

// withBodyLimit caps the request body at the configured size. Reads past the
// limit fail with *http.MaxBytesError, which the upload handler maps to 413.
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limit := h.cfg.MaxBodyBytes; limit > 0 && r.Body != nil {
			if r.ContentLength > limit {
				http.Error(w, ErrBodyTooLarge.Error(), http.StatusRequestEntityTooLarge)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
