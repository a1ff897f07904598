package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log line per request. Server errors are
// logged at error level, client errors at warn, the rest at info.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		uri, method := r.RequestURI, r.Method

		lw := wrapResponseWriter(w)
		next.ServeHTTP(lw, r)

		status := lw.Status()
		logger.FromRequest(r).WithLevel(accessLogLevel(status)).
			Str("uri", uri).
			Str("method", method).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Str("remote_addr", r.RemoteAddr).
			Send()
	})
}

func accessLogLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
