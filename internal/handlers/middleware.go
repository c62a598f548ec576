package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"gitlab.com/leetlab-2025.net/internal/handlers/response"
)

type contextKey string

const userIDKey contextKey = "userId"

// MiddlewareProvider verifies bearer tokens and places the authenticated
// user id in the request context. Token issuance happens elsewhere; this
// service only consumes the identity.
type MiddlewareProvider struct {
	SecretOption string
}

func New(secret string) *MiddlewareProvider {
	return &MiddlewareProvider{
		SecretOption: secret,
	}
}

func (m *MiddlewareProvider) secret() []byte {
	return []byte(m.SecretOption)
}

func (m *MiddlewareProvider) JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.WriteError(w, response.ErrorMessage{
				Message:    "Authorization header missing",
				StatusCode: http.StatusUnauthorized,
			})
			return
		}

		// Extract token from "Bearer <token>"
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return m.secret(), nil
		})

		if err != nil || !token.Valid {
			response.WriteError(w, response.ErrorMessage{
				Message:    "Invalid token",
				StatusCode: http.StatusUnauthorized,
			})
			return
		}

		userID := subjectOf(token)
		if userID == "" {
			response.WriteError(w, response.ErrorMessage{
				Message:    "Invalid token",
				StatusCode: http.StatusUnauthorized,
			})
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// WithUserID returns a context carrying the authenticated user id.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

func subjectOf(token *jwt.Token) string {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	if sub, ok := claims["sub"].(string); ok {
		return sub
	}
	if id, ok := claims["id"].(string); ok {
		return id
	}
	return ""
}

// UserID returns the authenticated user id placed in the context by
// JWTMiddleware, or "" for unauthenticated requests.
func UserID(r *http.Request) string {
	if id, ok := r.Context().Value(userIDKey).(string); ok {
		return id
	}
	return ""
}
