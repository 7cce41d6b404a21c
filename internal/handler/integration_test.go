package handler_test

import (
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/foodexpress/foodexpress-api/internal/audit"
	"github.com/foodexpress/foodexpress-api/internal/handler"
	"github.com/foodexpress/foodexpress-api/internal/models"
	"github.com/foodexpress/foodexpress-api/internal/repository"
	"github.com/foodexpress/foodexpress-api/internal/router"
	"github.com/foodexpress/foodexpress-api/internal/service"
	"github.com/foodexpress/foodexpress-api/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testEnv is a full stack (database, services, routing table) backed by
// an in-memory SQLite database and a throwaway audit log.
type testEnv struct {
	testDB   *testutil.TestDatabase
	auditLog *audit.Log
	router   *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	testDB := testutil.SetupTestDatabase(t)
	t.Cleanup(func() { testDB.Teardown(t) })

	auditLog, err := audit.Open(filepath.Join(t.TempDir(), "audit.jsonl"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = auditLog.Close() })

	userRepo := repository.NewUserRepository(testDB.DB)
	restaurantRepo := repository.NewRestaurantRepository(testDB.DB)
	menuRepo := repository.NewMenuRepository(testDB.DB)

	userService := service.NewUserService(userRepo)
	restaurantService := service.NewRestaurantService(restaurantRepo)
	menuService := service.NewMenuService(menuRepo, restaurantRepo)

	r := router.New(router.Options{
		JWTSecret:   testutil.TestJWTSecret,
		Users:       handler.NewUserHandler(userService, auditLog, testutil.TestJWTSecret, time.Hour),
		Restaurants: handler.NewRestaurantHandler(restaurantService, auditLog),
		Menus:       handler.NewMenuHandler(menuService, auditLog),
	})

	return &testEnv{
		testDB:   testDB,
		auditLog: auditLog,
		router:   r,
	}
}

// request performs one HTTP round trip. body is raw JSON; token, when
// non-empty, is sent as a bearer credential.
func (e *testEnv) request(method, path, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) admin(t *testing.T) (*models.User, string) {
	admin := testutil.CreateTestAdmin(t, e.testDB.DB, "admin", "admin@example.com", "adminpass123")
	return admin, testutil.TokenFor(t, admin)
}

func (e *testEnv) user(t *testing.T, username, email string) (*models.User, string) {
	user := testutil.CreateTestUser(t, e.testDB.DB, username, email, "userpass123", nil)
	return user, testutil.TokenFor(t, user)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return body
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list), "body: %s", w.Body.String())
	return list
}

func assertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, w.Code, "body: %s", w.Body.String())
	body := decodeBody(t, w)
	require.Equal(t, float64(status), body["error"])
	require.Equal(t, message, body["message"])
}
