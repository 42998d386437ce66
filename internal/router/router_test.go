package router

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", parseJSON(t, rec)["status"])
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	app := setupApp(t)
	app.request("GET", "/people", "")

	rec := app.request("GET", "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "splitledger_http_requests_total")
}

func TestSwaggerDoc(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "/expenses/{id}")
}

func TestUnknownRoute(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "NOT_FOUND", errorCode(t, rec))
}

func TestPreflight(t *testing.T) {
	app := setupApp(t)

	rec := app.request("OPTIONS", "/expenses", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
