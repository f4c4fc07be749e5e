package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Skotchmaster/product_catalog/internal/events"
	"github.com/Skotchmaster/product_catalog/internal/models"
	"github.com/Skotchmaster/product_catalog/internal/repo"
	"github.com/Skotchmaster/product_catalog/internal/transport"
	"github.com/Skotchmaster/product_catalog/pkg/logging"
)

type CategoryRepo interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id uint) (*models.Category, error)
	CreateCategory(ctx context.Context, c *models.Category) error
	SaveCategory(ctx context.Context, c *models.Category) error
	DeleteCategory(ctx context.Context, c *models.Category) error
}

type CategoryService struct {
	Repo   CategoryRepo
	Events events.Publisher
}

func (s *CategoryService) Create(ctx context.Context, req transport.CreateCategoryRequest) (*models.Category, error) {
	l := logging.FromContext(ctx).With("svc", "category.create")

	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	category := models.Category{Name: req.Name, Description: req.Description}
	if err := s.Repo.CreateCategory(ctx, &category); err != nil {
		return nil, s.writeError(l, err, req.Name)
	}

	s.emit(ctx, "category_created", &category)
	return &category, nil
}

func (s *CategoryService) FindAll(ctx context.Context) ([]models.Category, error) {
	return s.Repo.ListCategories(ctx)
}

func (s *CategoryService) FindOne(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.Repo.GetCategory(ctx, id)
	if err != nil {
		return nil, notFound(err, "category with ID %d not found", id)
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, req transport.UpdateCategoryRequest) (*models.Category, error) {
	l := logging.FromContext(ctx).With("svc", "category.update", "category_id", id)

	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	category, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description.Set {
		category.Description = req.Description.Ptr()
	}

	if err := s.Repo.SaveCategory(ctx, category); err != nil {
		return nil, s.writeError(l, err, category.Name)
	}

	s.emit(ctx, "category_updated", category)
	return category, nil
}

func (s *CategoryService) Remove(ctx context.Context, id uint) error {
	category, err := s.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteCategory(ctx, category); err != nil {
		logging.FromContext(ctx).Error("category_delete_error", "status", 500, "category_id", id, "error", err)
		return err
	}

	s.emit(ctx, "category_deleted", category)
	return nil
}

func (s *CategoryService) writeError(l *slog.Logger, err error, name string) error {
	if errors.Is(err, repo.ErrDuplicate) {
		l.Warn("category_write_error", "status", 409, "reason", "name already used")
		return fmt.Errorf("%w: category %q already exists", ErrConflict, name)
	}
	l.Error("category_write_error", "status", 500, "error", err)
	return err
}

func (s *CategoryService) emit(ctx context.Context, typ string, c *models.Category) {
	events.Emit(ctx, s.Events, events.TopicCatalog, c.ID, map[string]any{
		"type":       typ,
		"categoryID": c.ID,
		"name":       c.Name,
	})
}
