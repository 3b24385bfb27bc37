package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/promptlab/pkg/handlers"
	"github.com/JaimeStill/promptlab/pkg/logging"
	"github.com/JaimeStill/promptlab/pkg/validation"
)

func TestRespondJSON(t *testing.T) {
	tests := []struct {
		name   string
		status int
		data   any
		want   string
	}{
		{"200 with map", http.StatusOK, map[string]string{"key": "value"}, `{"key":"value"}`},
		{"201 with struct", http.StatusCreated, struct{ ID int }{ID: 42}, `{"ID":42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handlers.RespondJSON(rec, tt.status, tt.data)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestRespondError(t *testing.T) {
	t.Run("client error exposes message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handlers.RespondError(rec, logging.Nop(), http.StatusNotFound, errors.New("prompt not found"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail":"prompt not found"}`, rec.Body.String())
	})

	t.Run("server error hides message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handlers.RespondError(rec, logging.Nop(), http.StatusInternalServerError, errors.New("secret internals"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"detail":"Internal Server Error"}`, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "secret")
	})

	t.Run("validation errors render as field list", func(t *testing.T) {
		var verrs validation.Errors
		verrs.Add("title", "Field required", validation.TypeMissing)

		rec := httptest.NewRecorder()
		handlers.RespondError(rec, logging.Nop(), http.StatusBadRequest, verrs)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var body handlers.ValidationDetail
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Detail, 1)
		assert.Equal(t, []string{"body", "title"}, body.Detail[0].Loc)
		assert.Equal(t, "missing", body.Detail[0].Type)
	})
}

func TestRespondDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	handlers.RespondDetail(rec, http.StatusMethodNotAllowed, "Method Not Allowed")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"detail":"Method Not Allowed"}`, rec.Body.String())
}
