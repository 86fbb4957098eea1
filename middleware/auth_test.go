package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/sportsgeo/tournament-finder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func TestAuthenticatePassesClaimsToContext(t *testing.T) {
	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"user_id": 7,
		"role":    "organizer",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	var gotID int
	var gotRole models.UserRole
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetUserIDFromContext(r.Context())
		require.NoError(t, err)
		role, err := GetUserRoleFromContext(r.Context())
		require.NoError(t, err)
		gotID, gotRole = id, role
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()

	Authenticate(testSecret)(inner).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 7, gotID)
	assert.Equal(t, models.RoleOrganizer, gotRole)
}

func TestAuthenticateRejectsMissingHeader(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler must not run")
	})

	w := httptest.NewRecorder()
	Authenticate(testSecret)(inner).ServeHTTP(w, httptest.NewRequest("GET", "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateRejectsGarbageToken(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler must not run")
	})

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	w := httptest.NewRecorder()

	Authenticate(testSecret)(inner).ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateRejectsWrongSecret(t *testing.T) {
	tokenString := signToken(t, []byte("other-secret"), jwt.MapClaims{
		"user_id": 7,
		"role":    "player",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler must not run")
	})

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()

	Authenticate(testSecret)(inner).ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateRejectsExpiredToken(t *testing.T) {
	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"user_id": 7,
		"role":    "player",
		"exp":     time.Now().Add(-time.Minute).Unix(),
	})

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler must not run")
	})

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()

	Authenticate(testSecret)(inner).ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
