package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootRedirectsToIndex(t *testing.T) {
	mux := http.NewServeMux()
	RegisterRoutes(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	require.Equal(t, "/static/", rec.Header().Get("Location"))
}

func TestStaticAssetsServed(t *testing.T) {
	mux := http.NewServeMux()
	RegisterRoutes(mux)

	for _, path := range []string{"/static/", "/static/app.js", "/static/styles.css"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
		require.NotEmpty(t, rec.Body.String(), path)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/missing.js", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
