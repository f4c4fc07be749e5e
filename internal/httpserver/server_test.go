package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/product_catalog/internal/events"
	"github.com/Skotchmaster/product_catalog/internal/models"
	"github.com/Skotchmaster/product_catalog/internal/repo"
	"github.com/Skotchmaster/product_catalog/internal/service"
	pkgdb "github.com/Skotchmaster/product_catalog/pkg/db"
)

var testSecret = []byte("test-jwt-secret")

type testEnv struct {
	E      *echo.Echo
	DB     *gorm.DB
	Events *events.Memory
	Deps   *Deps
}

func newTestEnv(t *testing.T, writeRoles ...string) *testEnv {
	t.Helper()

	db, err := pkgdb.Open(context.Background(), pkgdb.DriverSQLite, ":memory:")
	require.NoError(t, err)
	require.NoError(t, pkgdb.Migrate(db, models.All()...))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	r := repo.New(db)
	pub := &events.Memory{}

	deps := &Deps{
		DB:              db,
		AuthHandler:     &AuthHTTP{Svc: &service.AuthService{Repo: r, JWTSecret: testSecret, TokenTTL: time.Hour, Events: pub}},
		CategoryHandler: &CategoryHTTP{Svc: &service.CategoryService{Repo: r, Events: pub}},
		SupplierHandler: &SupplierHTTP{Svc: &service.SupplierService{Repo: r, Events: pub}},
		ProductHandler:  &ProductHTTP{Svc: &service.ProductService{Repo: r, Events: pub}},
		JWTSecret:       testSecret,
		WriteRoles:      writeRoles,
	}

	e := echo.New()
	Register(e, deps)

	return &testEnv{E: e, DB: db, Events: pub, Deps: deps}
}

func (env *testEnv) doJSONRequest(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

// login registers username and returns a fresh access token.
func (env *testEnv) login(t *testing.T, username string) string {
	t.Helper()

	rec := env.doJSONRequest(t, http.MethodPost, "/auth/register", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = env.doJSONRequest(t, http.MethodPost, "/auth/login", map[string]string{
		"username": username,
		"password": "secret",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["access_token"])
	return resp["access_token"]
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
