package auth

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/interchain-gateway/pkg/app/errors"
	apphttp "github.com/chainsafe/interchain-gateway/pkg/app/http"
)

const bearerPrefix = "Bearer "

// Middleware rejects requests without a valid bearer token and stores the
// token's sender in the request context.
func Middleware(authority *TokenAuthority, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(ErrMissingToken, "bearer token required"))
				return
			}

			sender, err := authority.ValidateToken(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				logger.Debug("Rejected bearer token", zap.String("path", r.URL.Path), zap.Error(err))
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSender(r.Context(), sender)))
		})
	}
}
