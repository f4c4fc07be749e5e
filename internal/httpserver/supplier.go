package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/product_catalog/internal/service"
	"github.com/Skotchmaster/product_catalog/internal/transport"
	"github.com/Skotchmaster/product_catalog/pkg/logging"
)

type SupplierHTTP struct {
	Svc *service.SupplierService
}

func (h *SupplierHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "supplier.create")

	var req transport.CreateSupplierRequest
	if err := bindBody(c, l, "supplier_create_error", &req); err != nil {
		return err
	}

	supplier, err := h.Svc.Create(ctx, req)
	if err != nil {
		return fail(l, "supplier_create_error", err)
	}

	l.Info("supplier_create_success", "supplier_id", supplier.ID)
	return c.JSON(http.StatusCreated, supplier)
}

func (h *SupplierHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "supplier.list")

	items, err := h.Svc.FindAll(ctx)
	if err != nil {
		return fail(l, "supplier_list_error", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *SupplierHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "supplier.get")

	id, err := parseID(c, l, "supplier_get_error")
	if err != nil {
		return err
	}

	supplier, err := h.Svc.FindOne(ctx, id)
	if err != nil {
		return fail(l, "supplier_get_error", err)
	}
	return c.JSON(http.StatusOK, supplier)
}

func (h *SupplierHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "supplier.update")

	id, err := parseID(c, l, "supplier_update_error")
	if err != nil {
		return err
	}

	var req transport.UpdateSupplierRequest
	if err := bindBody(c, l, "supplier_update_error", &req); err != nil {
		return err
	}

	supplier, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		return fail(l, "supplier_update_error", err)
	}

	l.Info("supplier_update_success", "supplier_id", id)
	return c.JSON(http.StatusOK, supplier)
}

func (h *SupplierHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "supplier.delete")

	id, err := parseID(c, l, "supplier_delete_error")
	if err != nil {
		return err
	}

	if err := h.Svc.Remove(ctx, id); err != nil {
		return fail(l, "supplier_delete_error", err)
	}

	l.Info("supplier_delete_success", "supplier_id", id)
	return c.NoContent(http.StatusOK)
}
