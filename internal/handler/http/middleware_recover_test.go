package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-photo-album/internal/app"
)

func TestWithRecover_WritesGenericError(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("nil map write in album handler")
	})

	rr := httptest.NewRecorder()
	require.NotPanics(t, func() {
		newTestHandler().withRecover(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/albums", nil))
	})

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decodeError(t, rr)
	assert.Equal(t, app.MsgServerError, body.Error)
	assert.Equal(t, app.KindServer, body.Kind)
	assert.NotContains(t, rr.Body.String(), "nil map", "panic details stay in the log")
}

func TestWithRecover_RepanicsAbortHandler(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		newTestHandler().withRecover(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestWithRecover_PassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	rr := httptest.NewRecorder()
	newTestHandler().withRecover(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, rr.Code)
}
