package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/product_catalog/internal/middleware"
	"github.com/Skotchmaster/product_catalog/pkg/logging"
)

type Deps struct {
	DB              *gorm.DB
	AuthHandler     *AuthHTTP
	CategoryHandler *CategoryHTTP
	SupplierHandler *SupplierHTTP
	ProductHandler  *ProductHTTP
	JWTSecret       []byte
	// WriteRoles restricts supplier and product writes; empty allows any
	// authenticated user.
	WriteRoles []string
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", d.ready)

	authMW := middleware.RequireAuth(d.JWTSecret)

	auth := e.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)
	auth.GET("/profile", d.AuthHandler.Profile, authMW)

	categories := e.Group("/categories")
	categories.POST("", d.CategoryHandler.Create)
	categories.GET("", d.CategoryHandler.List)
	categories.GET("/:id", d.CategoryHandler.Get)
	categories.PUT("/:id", d.CategoryHandler.Update)
	categories.PATCH("/:id", d.CategoryHandler.Update)
	categories.DELETE("/:id", d.CategoryHandler.Delete)

	suppliers := e.Group("/suppliers", authMW)
	suppliers.GET("", d.SupplierHandler.List)
	suppliers.GET("/:id", d.SupplierHandler.Get)

	supplierWrites := suppliers.Group("", d.writeGuard()...)
	supplierWrites.POST("", d.SupplierHandler.Create)
	supplierWrites.PUT("/:id", d.SupplierHandler.Update)
	supplierWrites.PATCH("/:id", d.SupplierHandler.Update)
	supplierWrites.DELETE("/:id", d.SupplierHandler.Delete)

	products := e.Group("/products", authMW)
	products.GET("", d.ProductHandler.List)
	products.GET("/:id", d.ProductHandler.Get)

	productWrites := products.Group("", d.writeGuard()...)
	productWrites.POST("", d.ProductHandler.Create)
	productWrites.PUT("/:id", d.ProductHandler.Update)
	productWrites.PATCH("/:id", d.ProductHandler.Update)
	productWrites.DELETE("/:id", d.ProductHandler.Delete)
}

func (d *Deps) writeGuard() []echo.MiddlewareFunc {
	if len(d.WriteRoles) == 0 {
		return nil
	}
	return []echo.MiddlewareFunc{middleware.RequireRole(d.WriteRoles...)}
}

func (d *Deps) ready(c echo.Context) error {
	if d.DB == nil {
		return c.NoContent(http.StatusOK)
	}
	sqlDB, err := d.DB.DB()
	if err == nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		logging.FromContext(c.Request().Context()).Error("readiness_failed", "status", 503, "error", err)
		return c.NoContent(http.StatusServiceUnavailable)
	}
	return c.NoContent(http.StatusOK)
}
