package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/product_catalog/internal/service"
	"github.com/Skotchmaster/product_catalog/internal/transport"
	"github.com/Skotchmaster/product_catalog/pkg/logging"
)

type CategoryHTTP struct {
	Svc *service.CategoryService
}

func (h *CategoryHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.create")

	var req transport.CreateCategoryRequest
	if err := bindBody(c, l, "category_create_error", &req); err != nil {
		return err
	}

	category, err := h.Svc.Create(ctx, req)
	if err != nil {
		return fail(l, "category_create_error", err)
	}

	l.Info("category_create_success", "category_id", category.ID)
	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.list")

	items, err := h.Svc.FindAll(ctx)
	if err != nil {
		return fail(l, "category_list_error", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CategoryHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.get")

	id, err := parseID(c, l, "category_get_error")
	if err != nil {
		return err
	}

	category, err := h.Svc.FindOne(ctx, id)
	if err != nil {
		return fail(l, "category_get_error", err)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.update")

	id, err := parseID(c, l, "category_update_error")
	if err != nil {
		return err
	}

	var req transport.UpdateCategoryRequest
	if err := bindBody(c, l, "category_update_error", &req); err != nil {
		return err
	}

	category, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		return fail(l, "category_update_error", err)
	}

	l.Info("category_update_success", "category_id", id)
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.delete")

	id, err := parseID(c, l, "category_delete_error")
	if err != nil {
		return err
	}

	if err := h.Svc.Remove(ctx, id); err != nil {
		return fail(l, "category_delete_error", err)
	}

	l.Info("category_delete_success", "category_id", id)
	return c.NoContent(http.StatusOK)
}
