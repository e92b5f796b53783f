package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusConflict)
	w.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusConflict, w.status)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestResponseWriter_WriteCountsBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	n, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = w.Write([]byte("de"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, "abcde", rec.Body.String())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	assert.Same(t, rec, w.Unwrap())
}
