package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminAuthMiddleware(t *testing.T) {
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})

	t.Run("unset server token answers 500", func(t *testing.T) {
		nextCalled = false
		m := newAdminAuthMiddleware("")

		req := httptest.NewRequest(http.MethodPost, "/admin/projects", nil)
		req.Header.Set(AdminTokenHeader, "whatever")
		rr := httptest.NewRecorder()

		m.require(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.False(t, nextCalled)
	})

	t.Run("missing header answers 401", func(t *testing.T) {
		nextCalled = false
		m := newAdminAuthMiddleware("s3cret")

		rr := httptest.NewRecorder()
		m.require(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/admin/projects", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, nextCalled)
	})

	t.Run("wrong token answers 401", func(t *testing.T) {
		nextCalled = false
		m := newAdminAuthMiddleware("s3cret")

		req := httptest.NewRequest(http.MethodPost, "/admin/projects", nil)
		req.Header.Set(AdminTokenHeader, "S3CRET")
		rr := httptest.NewRecorder()

		m.require(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, nextCalled)
	})

	t.Run("matching token passes through", func(t *testing.T) {
		nextCalled = false
		m := newAdminAuthMiddleware("s3cret")

		req := httptest.NewRequest(http.MethodPost, "/admin/projects", nil)
		req.Header.Set(AdminTokenHeader, "s3cret")
		rr := httptest.NewRecorder()

		m.require(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, nextCalled)
	})
}

func TestCORSCheckMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	allowed := []string{"http://localhost:5500", "https://flowforge.app"}

	t.Run("no origin header passes through", func(t *testing.T) {
		rr := httptest.NewRecorder()
		CORSCheckMiddleware(allowed)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/projects", nil))

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("allowed origin passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/projects", nil)
		req.Header.Set("Origin", "https://flowforge.app")
		rr := httptest.NewRecorder()

		CORSCheckMiddleware(allowed)(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("disallowed preflight answers 403", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/projects", nil)
		req.Header.Set("Origin", "https://evil.example")
		rr := httptest.NewRecorder()

		CORSCheckMiddleware(allowed)(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("wildcard allows everything", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/projects", nil)
		req.Header.Set("Origin", "https://anywhere.example")
		rr := httptest.NewRecorder()

		CORSCheckMiddleware([]string{"*"})(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("disallowed non-preflight is left to the CORS handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/projects", nil)
		req.Header.Set("Origin", "https://evil.example")
		rr := httptest.NewRecorder()

		CORSCheckMiddleware(allowed)(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestLogInternalServerErrorsRecoversPanics(t *testing.T) {
	panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("handler blew up")
	})

	rr := httptest.NewRecorder()
	LogInternalServerErrors(panicky).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/projects", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
