package middleware

import (
	"context"
	"net/http"
	"strings"

	"ems/internal/domain/auth"
	"ems/internal/platform/logger"
	"ems/internal/platform/requestctx"
	"ems/internal/transport/http/api"
)

type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller in the request context otherwise.
func RequireAuth(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
				return
			}

			claims, err := tokens.Parse(raw)
			if err != nil {
				logger.From(r.Context()).Debug("token rejected", "err", err)
				api.Fail(w, http.StatusUnauthorized, "unauthorized", auth.ErrInvalidToken.Message, GetRequestID(r.Context()))
				return
			}

			ctx := requestctx.WithUser(r.Context(), requestctx.User{
				ID:       claims.UserID(),
				Email:    claims.Email,
				FullName: claims.FullName,
				Role:     claims.Role,
			})
			ctx = logger.With(ctx, "userId", claims.UserID())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUser(ctx context.Context) (requestctx.User, bool) {
	return requestctx.GetUser(ctx)
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
