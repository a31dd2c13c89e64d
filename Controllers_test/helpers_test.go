package Controllers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeremiapane/orders-admin/auth"
	"github.com/yeremiapane/orders-admin/imageurl"
	"github.com/yeremiapane/orders-admin/models"
	"github.com/yeremiapane/orders-admin/router"
	"github.com/yeremiapane/orders-admin/store"
)

const (
	testEmail    = "admin@shop.test"
	testPassword = "hunter2"
)

// setupTestStore menggunakan SQLite in-memory untuk testing
func setupTestStore(t *testing.T) *store.GormStore {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	s := store.NewGormStore(db)
	require.NoError(t, s.Migrate())
	require.NoError(t, s.Seed(context.Background(), []models.Order{
		{ID: "A", FirstName: "Ana", LastName: "Lima", Address: "1 Main St", City: "Porto", Phone: "555-0100", Email: "ana@test",
			Total: 15, OrderDate: "2025-01-14T10:20:00Z", Status: models.StatusPending,
			CartItems: []models.LineItem{{ProductName: "Chair", Image: "chair.jpg"}}},
		{ID: "B", FirstName: "Ben", LastName: "Ode", Total: 20, OrderDate: "2025-01-15T10:20:00Z", Status: models.StatusDispatch},
		{ID: "C", FirstName: "Cai", LastName: "Wu", Total: 99.5, OrderDate: "2025-01-16T10:20:00Z"},
	}))
	return s
}

func setupRouterForTest(s store.OrderStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return router.SetupRouter(router.Deps{
		Store:  s,
		Gate:   auth.NewGate(auth.Credentials{Identifier: testEmail, Secret: testPassword}),
		Tokens: auth.NewTokens([]byte("test-secret")),
		Images: imageurl.Uploads{BaseURL: "/uploads"},
	})
}

// loginCookie logs in through the form and returns the session cookie.
func loginCookie(t *testing.T, r *gin.Engine) *http.Cookie {
	t.Helper()
	w := postForm(r, "/admin/login", url.Values{"email": {testEmail}, "password": {testPassword}}, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func postForm(r *gin.Engine, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
