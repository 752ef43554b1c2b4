package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Tsolgiun/office-plus-booking/internal/api/handlers"
	"github.com/Tsolgiun/office-plus-booking/internal/auth"
	"github.com/Tsolgiun/office-plus-booking/internal/domain"
)

const (
	msgMissingToken = "missing bearer token"
	msgInvalidToken = "invalid or expired token"
)

// Auth validates the Authorization bearer token (HS256) issued by the
// identity provider and stores the caller identity (subject and role
// claims) in the request context for the handlers.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			identity, ok := identityFromClaims(token.Claims)
			if !ok {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
		})
	}
}

// identityFromClaims extracts the subject (user id) and role claims.
func identityFromClaims(claims jwt.Claims) (auth.Identity, bool) {
	mapClaims, ok := claims.(jwt.MapClaims)
	if !ok {
		return auth.Identity{}, false
	}

	sub, err := mapClaims.GetSubject()
	if err != nil {
		return auth.Identity{}, false
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return auth.Identity{}, false
	}

	roleClaim, ok := mapClaims["role"].(string)
	if !ok {
		return auth.Identity{}, false
	}
	role := domain.Role(roleClaim)
	if !role.Valid() {
		return auth.Identity{}, false
	}

	return auth.Identity{UserID: userID, Role: role}, true
}
