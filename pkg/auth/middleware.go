package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ndychko/gowallet/pkg/utils"
)

type ContextKey string

const (
	UserIDKey   ContextKey = "userID"
	UserTypeKey ContextKey = "userType"
)

// Middleware trusts the identity provider's token and puts the
// authenticated user id into the request context. No identity is issued
// here.
func (s *JWTService) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := s.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		ctx = context.WithValue(ctx, UserTypeKey, claims.UserType)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly guards the approval surface. It must run after Middleware.
func (s *JWTService) AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userType, _ := r.Context().Value(UserTypeKey).(string)
		if userType != AdminUserType {
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}
