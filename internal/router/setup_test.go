package router

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"splitledger/internal/config"
	"splitledger/internal/logger"
	"splitledger/internal/testutil"
)

// testApp holds the full application stack for router tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

// setupApp creates the full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	cfg := &config.Config{Env: "test", Port: "0", AllowedOrigins: []string{"*"}}
	return &testApp{DB: db, Router: New(db, cfg)}
}

func (a *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var result []interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseJSON(t, rec)["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %s", rec.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}
