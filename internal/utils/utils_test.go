package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	err := WriteJSON(w, http.StatusCreated, map[string]string{"name": "ok"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"name":"ok"}`, w.Body.String())
}

func TestWriteJSONExtraHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	headers := http.Header{}
	headers.Set("X-Total-Count", "42")

	err := WriteJSON(w, http.StatusOK, []int{}, headers)
	require.NoError(t, err)

	assert.Equal(t, "42", w.Header().Get("X-Total-Count"))
	assert.Equal(t, "[]", w.Body.String())
}

func TestReadJSON(t *testing.T) {
	var data struct {
		Name string `json:"name"`
	}
	r := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":"ok"}`))
	w := httptest.NewRecorder()

	require.NoError(t, ReadJSON(w, r, &data))
	assert.Equal(t, "ok", data.Name)
}

func TestReadJSONRejectsMultipleValues(t *testing.T) {
	var data struct{}
	r := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{} {"again":true}`))
	w := httptest.NewRecorder()

	err := ReadJSON(w, r, &data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single JSON value")
}

func TestReadJSONRejectsMalformedBody(t *testing.T) {
	var data struct{}
	r := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{broken`))
	w := httptest.NewRecorder()

	assert.Error(t, ReadJSON(w, r, &data))
}

func TestBadRequest(t *testing.T) {
	w := httptest.NewRecorder()

	BadRequest(w, errors.New("missing field"))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var payload struct {
		Error   bool   `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&payload))
	assert.True(t, payload.Error)
	assert.Equal(t, "missing field", payload.Message)
}

func TestServerError(t *testing.T) {
	w := httptest.NewRecorder()

	ServerError(w, errors.New("connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t,
		`{"error":true,"status":"server_error","message":"connection refused"}`,
		w.Body.String())
}

func TestServerErrorNilError(t *testing.T) {
	w := httptest.NewRecorder()

	ServerError(w, nil)

	var payload struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&payload))
	assert.Equal(t, "Internal server error", payload.Message)
}

func TestNotFoundDefaultMessage(t *testing.T) {
	w := httptest.NewRecorder()

	NotFound(w, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t,
		`{"error":true,"status":"not_found","message":"Resource not found"}`,
		w.Body.String())
}

func TestGetURLParamTrims(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?search="+url.QueryEscape("  Member  "), nil)
	assert.Equal(t, "Member", GetURLParam(r, "search"))
	assert.Equal(t, "", GetURLParam(r, "absent"))
}

func TestIsUniqueViolation(t *testing.T) {
	err := errors.New(`duplicate key value violates unique constraint "customers_pkey"`)
	assert.True(t, IsUniqueViolation(err, "customers_pkey"))
	assert.False(t, IsUniqueViolation(err, "branches_pkey"))
	assert.False(t, IsUniqueViolation(nil, "customers_pkey"))
}
