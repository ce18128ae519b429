package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowforge-ai/backend/errs"
)

func TestWriteError(t *testing.T) {
	responder := NewResponder(zerolog.Nop())

	t.Run("ApiErr keeps its status and field", func(t *testing.T) {
		rr := httptest.NewRecorder()
		responder.WriteError(rr, errs.NewInvalidFieldError("slug", "must be at least 3 characters"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var res map[string]any
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Equal(t, "slug", res["field"])
		assert.Equal(t, "error", res["status"])
	})

	t.Run("unexpected errors collapse to a generic 500", func(t *testing.T) {
		rr := httptest.NewRecorder()
		responder.WriteError(rr, errors.New("pq: something exploded"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var res map[string]any
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Equal(t, "Internal Server Error", res["error"])
		assert.NotContains(t, rr.Body.String(), "exploded")
	})
}

func TestWriteJSON(t *testing.T) {
	responder := NewResponder(zerolog.Nop())

	rr := httptest.NewRecorder()
	responder.WriteJSON(rr, map[string]string{"status": "ok"})

	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}
