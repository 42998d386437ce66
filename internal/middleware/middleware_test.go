package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	apperrors "splitledger/internal/errors"
	"splitledger/internal/logger"
	"splitledger/internal/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

func serve(r *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, vv := range header {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body.Error.Code
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/app", func(c *gin.Context) {
		_ = c.Error(apperrors.ErrExpenseNotFound)
	})
	r.GET("/wrapped", func(c *gin.Context) {
		_ = c.Error(apperrors.Wrap(apperrors.ErrInternalServer, errors.New("disk full")))
	})
	r.GET("/plain", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})
	r.GET("/written", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		_ = c.Error(errors.New("late"))
	})

	rec := serve(r, "GET", "/app", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "EXPENSE_NOT_FOUND", errorCode(t, rec))

	rec = serve(r, "GET", "/wrapped", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "disk full")

	rec = serve(r, "GET", "/plain", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "INTERNAL_ERROR", errorCode(t, rec))

	rec = serve(r, "GET", "/written", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouteNotFound(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.NoRoute(RouteNotFound())

	rec := serve(r, "GET", "/nowhere", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "NOT_FOUND", errorCode(t, rec))
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/panic", func(c *gin.Context) {
		panic("nil map")
	})

	rec := serve(r, "GET", "/panic", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "INTERNAL_ERROR", errorCode(t, rec))
}

func TestRequestLogging_RequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	rec := serve(r, "GET", "/ping", nil)
	generated := rec.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)
	require.Equal(t, generated, rec.Body.String())

	incoming := uuid.New().String()
	rec = serve(r, "GET", "/ping", http.Header{RequestIDHeader: {incoming}})
	require.Equal(t, incoming, rec.Header().Get(RequestIDHeader))

	rec = serve(r, "GET", "/ping", http.Header{RequestIDHeader: {"not-a-uuid"}})
	require.NotEqual(t, "not-a-uuid", rec.Header().Get(RequestIDHeader))
}

func TestCORS(t *testing.T) {
	t.Run("wildcard", func(t *testing.T) {
		r := gin.New()
		r.Use(CORS([]string{"*"}))
		r.GET("/people", func(c *gin.Context) { c.Status(http.StatusOK) })

		rec := serve(r, "GET", "/people", http.Header{"Origin": {"http://localhost:5173"}})
		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("allow list", func(t *testing.T) {
		r := gin.New()
		r.Use(CORS([]string{"http://localhost:5173"}))
		r.GET("/people", func(c *gin.Context) { c.Status(http.StatusOK) })

		rec := serve(r, "GET", "/people", http.Header{"Origin": {"http://localhost:5173"}})
		require.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

		rec = serve(r, "GET", "/people", http.Header{"Origin": {"http://evil.example"}})
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		r := gin.New()
		r.Use(CORS([]string{"*"}))
		r.POST("/expenses", func(c *gin.Context) { c.Status(http.StatusCreated) })

		rec := serve(r, "OPTIONS", "/expenses", http.Header{"Origin": {"http://localhost:5173"}})
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PUT")
	})
}

func TestMetrics(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/expenses/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	counter := metrics.HTTPRequests.WithLabelValues("GET", "/expenses/:id", "200")
	before := testutil.ToFloat64(counter)
	unmatched := metrics.HTTPRequests.WithLabelValues("GET", unmatchedRoute, "404")
	beforeUnmatched := testutil.ToFloat64(unmatched)

	serve(r, "GET", "/expenses/1", nil)
	serve(r, "GET", "/expenses/2", nil)
	serve(r, "GET", "/missing", nil)

	require.Equal(t, before+2, testutil.ToFloat64(counter))
	require.Equal(t, beforeUnmatched+1, testutil.ToFloat64(unmatched))
}
