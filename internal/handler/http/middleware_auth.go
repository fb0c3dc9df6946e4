package http

import (
	"context"
	"net/http"

	"github.com/Chakshu1409/fnp-integrations/internal/logger"
	"github.com/Chakshu1409/fnp-integrations/internal/utils"
	"github.com/rs/zerolog"
)

// auth enforces bearer-token authentication of internal callers.
//
// The token is verified by [service.AuthService.ParseToken]; on success its
// subject is stored under [utils.CallerCtxKey] and added to the request
// logger as "caller". Missing, malformed, expired or otherwise invalid tokens
// are rejected with a 401 error envelope.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		l := logger.FromRequest(r).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("caller", token.Subject)
		})
		ctx = context.WithValue(l.WithContext(ctx), utils.CallerCtxKey, token.Subject)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
