package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/product_catalog/internal/service"
	"github.com/Skotchmaster/product_catalog/internal/transport"
	"github.com/Skotchmaster/product_catalog/pkg/logging"
)

type ProductHTTP struct {
	Svc *service.ProductService
}

func (h *ProductHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req transport.CreateProductRequest
	if err := bindBody(c, l, "product_create_error", &req); err != nil {
		return err
	}

	product, err := h.Svc.Create(ctx, req)
	if err != nil {
		return fail(l, "product_create_error", err)
	}

	l.Info("product_create_success", "product_id", product.ID)
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	items, err := h.Svc.FindAll(ctx)
	if err != nil {
		return fail(l, "product_list_error", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get")

	id, err := parseID(c, l, "product_get_error")
	if err != nil {
		return err
	}

	product, err := h.Svc.FindOne(ctx, id)
	if err != nil {
		return fail(l, "product_get_error", err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update")

	id, err := parseID(c, l, "product_update_error")
	if err != nil {
		return err
	}

	var req transport.UpdateProductRequest
	if err := bindBody(c, l, "product_update_error", &req); err != nil {
		return err
	}

	product, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		return fail(l, "product_update_error", err)
	}

	l.Info("product_update_success", "product_id", id)
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, err := parseID(c, l, "product_delete_error")
	if err != nil {
		return err
	}

	if err := h.Svc.Remove(ctx, id); err != nil {
		return fail(l, "product_delete_error", err)
	}

	l.Info("product_delete_success", "product_id", id)
	return c.NoContent(http.StatusOK)
}
