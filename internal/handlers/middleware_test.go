package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func protectedProbe() (http.Handler, *string) {
	var seenUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = UserID(r)
		w.WriteHeader(http.StatusOK)
	})
	return New(testSecret).JWTMiddleware(next), &seenUserID
}

func TestJWTMiddlewarePassesSubject(t *testing.T) {
	handler, seenUserID := protectedProbe()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+signedToken(t, jwt.MapClaims{"sub": "user-1"}, testSecret))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", *seenUserID)
}

func TestJWTMiddlewareAcceptsLegacyIDClaim(t *testing.T) {
	handler, seenUserID := protectedProbe()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+signedToken(t, jwt.MapClaims{"id": "user-2"}, testSecret))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-2", *seenUserID)
}

func TestJWTMiddlewareRejects(t *testing.T) {
	tests := []struct {
		name   string
		header func(t *testing.T) string
	}{
		{"missing header", func(*testing.T) string { return "" }},
		{"garbage token", func(*testing.T) string { return "Bearer not-a-token" }},
		{"wrong secret", func(t *testing.T) string {
			return "Bearer " + signedToken(t, jwt.MapClaims{"sub": "user-1"}, "other-secret")
		}},
		{"no subject", func(t *testing.T) string {
			return "Bearer " + signedToken(t, jwt.MapClaims{"aud": "nobody"}, testSecret)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := protectedProbe()

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if header := tt.header(t); header != "" {
				r.Header.Set("Authorization", header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
