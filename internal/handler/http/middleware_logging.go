package http

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Chakshu1409/fnp-integrations/internal/logger"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log := logger.FromRequest(r)
		level := zerolog.InfoLevel
		if lw.statusCode() >= http.StatusInternalServerError {
			level = zerolog.ErrorLevel
		}

		log.Logger.WithLevel(level).
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.statusCode()).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Msg("request served")
	})
}
