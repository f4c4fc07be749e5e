package httpserver

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/product_catalog/internal/models"
)

func TestCatalogFlow(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "alice")

	rec := env.doJSONRequest(t, http.MethodPost, "/categories", map[string]any{"name": "Tools"}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	tools := decode[models.Category](t, rec)

	rec = env.doJSONRequest(t, http.MethodPost, "/suppliers", map[string]any{
		"name": "Acme", "contactEmail": "sales@acme.io", "phoneNumber": "123456789",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	acme := decode[models.Supplier](t, rec)

	rec = env.doJSONRequest(t, http.MethodPost, "/products", map[string]any{
		"name":       "Hammer",
		"price":      9.99,
		"sku":        "H-1",
		"stock":      5,
		"categoryId": tools.ID,
		"providerId": acme.ID,
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	hammer := decode[models.Product](t, rec)

	path := fmt.Sprintf("/products/%d", hammer.ID)
	rec = env.doJSONRequest(t, http.MethodGet, path, nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[models.Product](t, rec)
	require.NotNil(t, got.Category)
	assert.Equal(t, "Tools", got.Category.Name)
	require.Len(t, got.Suppliers, 1)
	assert.Equal(t, "Acme", got.Suppliers[0].Name)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("9.99")))

	rec = env.doJSONRequest(t, http.MethodPut, path, `{"categoryId":null}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got = decode[models.Product](t, rec)
	assert.Nil(t, got.CategoryID)
	assert.Equal(t, "Hammer", got.Name)
	assert.Len(t, got.Suppliers, 1)

	rec = env.doJSONRequest(t, http.MethodGet, fmt.Sprintf("/categories/%d", tools.ID), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSONRequest(t, http.MethodDelete, fmt.Sprintf("/suppliers/%d", acme.ID), nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSONRequest(t, http.MethodGet, path, nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[models.Product](t, rec).Suppliers)

	rec = env.doJSONRequest(t, http.MethodDelete, path, nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSONRequest(t, http.MethodGet, path, nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	assert.Equal(t, []string{
		"user_registered",
		"category_created",
		"supplier_created",
		"product_created",
		"product_updated",
		"supplier_deleted",
		"product_deleted",
	}, env.Events.Types())
}

func TestProducts_UnknownReferences(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "alice")

	rec := env.doJSONRequest(t, http.MethodPost, "/products", map[string]any{
		"name": "Hammer", "price": 9.99, "sku": "H-1", "stock": 1, "categoryId": 999,
	}, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "category with ID 999 not found")

	rec = env.doJSONRequest(t, http.MethodPost, "/products", map[string]any{
		"name": "Hammer", "price": 9.99, "sku": "H-1", "stock": 1, "providerId": 999,
	}, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.doJSONRequest(t, http.MethodGet, "/products", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]models.Product](t, rec))
}

func TestProducts_Validation(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "alice")

	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "zero price", body: map[string]any{"name": "X", "price": 0, "sku": "X", "stock": 1}},
		{name: "negative stock", body: map[string]any{"name": "X", "price": 1, "sku": "X", "stock": -1}},
		{name: "missing sku", body: map[string]any{"name": "X", "price": 1, "stock": 1}},
		{name: "string category", body: map[string]any{"name": "X", "price": 1, "sku": "X", "categoryId": "one"}},
		{name: "sub-cent price", body: map[string]any{"name": "X", "price": 1.005, "sku": "X", "stock": 1}},
		{name: "price overflows column", body: map[string]any{"name": "X", "price": 12345678901.5, "sku": "X", "stock": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.doJSONRequest(t, http.MethodPost, "/products", tt.body, token)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/products", "/products/1", "/suppliers", "/suppliers/1"} {
		rec := env.doJSONRequest(t, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	rec := env.doJSONRequest(t, http.MethodPost, "/suppliers", map[string]any{"name": "Acme"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.doJSONRequest(t, http.MethodGet, "/categories", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWriteRoles(t *testing.T) {
	env := newTestEnv(t, "admin")
	token := env.login(t, "alice")

	rec := env.doJSONRequest(t, http.MethodPost, "/products", map[string]any{
		"name": "Hammer", "price": 9.99, "sku": "H-1", "stock": 1,
	}, token)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.doJSONRequest(t, http.MethodGet, "/products", nil, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCategories(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSONRequest(t, http.MethodPost, "/categories", map[string]any{"name": "Tools", "description": "hand tools"}, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	tools := decode[models.Category](t, rec)

	rec = env.doJSONRequest(t, http.MethodPost, "/categories", map[string]any{"name": "Tools"}, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = env.doJSONRequest(t, http.MethodPut, fmt.Sprintf("/categories/%d", tools.ID), map[string]any{"name": "Hardware"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[models.Category](t, rec)
	assert.Equal(t, "Hardware", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "hand tools", *updated.Description)

	rec = env.doJSONRequest(t, http.MethodGet, "/categories", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Category](t, rec), 1)

	rec = env.doJSONRequest(t, http.MethodGet, "/categories/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.doJSONRequest(t, http.MethodGet, "/categories/999", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.doJSONRequest(t, http.MethodDelete, fmt.Sprintf("/categories/%d", tools.ID), nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSONRequest(t, http.MethodDelete, fmt.Sprintf("/categories/%d", tools.ID), nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategoryGet_Direct(t *testing.T) {
	env := newTestEnv(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/categories/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := env.Deps.CategoryHandler.Get(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	assert.Equal(t, http.StatusNotFound, he.Code)
	assert.Equal(t, "category with ID 1 not found", he.Message)
}
