package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/pkg/jwtauth"
)

const (
	msgMissingToken     = "missing bearer token"
	msgInvalidToken     = "invalid or expired token"
	msgInsufficientRole = "admin role required"
)

type claimsKey struct{}

// AdminAuth пропускает запрос только с валидным Bearer JWT и ролью role
// Проверка выполняется до любой доменной логики
func AdminAuth(verifier TokenVerifier, role string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := verifier.RequireRole(strings.TrimPrefix(header, "Bearer "), role)
			if err != nil {
				logger.Warn("%s %s - Token rejected: %v", r.Method, r.URL.Path, err)
				if errors.Is(err, jwtauth.ErrInsufficientRole) {
					handlers.RespondUnauthorized(w, msgInsufficientRole)
					return
				}
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
		})
	}
}

// GetClaims возвращает claims администратора из контекста
func GetClaims(ctx context.Context) (*jwtauth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*jwtauth.Claims)
	return claims, ok
}
