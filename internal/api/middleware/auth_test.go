package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_MissingHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	rec := httptest.NewRecorder()
	Auth(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/visits", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_InvalidHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	for _, header := range []string{"abc", "0", "-5"} {
		req := httptest.NewRequest(http.MethodGet, "/api/visits", nil)
		req.Header.Set("X-User-ID", header)

		rec := httptest.NewRecorder()
		Auth(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header=%q", header)
	}
}

func TestAuth_PassesUserIDThroughContext(t *testing.T) {
	var gotUserID int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		require.True(t, ok)
		gotUserID = userID
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/visits", nil)
	req.Header.Set("X-User-ID", "42")

	rec := httptest.NewRecorder()
	Auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), gotUserID)
}

func TestUserIDFromContext_Absent(t *testing.T) {
	_, ok := UserIDFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}
