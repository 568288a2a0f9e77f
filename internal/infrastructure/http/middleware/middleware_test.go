package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func authedRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAuthenticate_ValidToken_SetsIdentity(t *testing.T) {
	userID := uuid.New()
	token := signToken(t, jwt.MapClaims{
		"sub":   userID.String(),
		"email": "cook@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	var gotID uuid.UUID
	var gotEmail string
	handler := Authenticate(testSecret, "")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = UserIDFromContext(r.Context())
		gotEmail, _ = UserEmailFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(token))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, "cook@example.com", gotEmail)
}

func TestAuthenticate_MissingHeader_Returns401(t *testing.T) {
	handler := Authenticate(testSecret, "")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_WrongSecret_Returns401(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}, "other-secret")

	handler := Authenticate(testSecret, "")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(token))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ExpiredToken_Returns401(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	}, testSecret)

	handler := Authenticate(testSecret, "")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(token))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_NonUUIDSubject_Returns401(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub": "not-a-uuid",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	handler := Authenticate(testSecret, "")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(token))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_WrongIssuer_Returns401(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub": uuid.New().String(),
		"iss": "someone-else",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	handler := Authenticate(testSecret, "ladle-auth")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(token))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
