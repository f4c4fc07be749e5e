package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Skotchmaster/product_catalog/internal/events"
	"github.com/Skotchmaster/product_catalog/internal/models"
	"github.com/Skotchmaster/product_catalog/internal/repo"
	"github.com/Skotchmaster/product_catalog/internal/transport"
	"github.com/Skotchmaster/product_catalog/pkg/logging"
)

type SupplierRepo interface {
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	GetSupplier(ctx context.Context, id uint) (*models.Supplier, error)
	CreateSupplier(ctx context.Context, s *models.Supplier) error
	SaveSupplier(ctx context.Context, s *models.Supplier) error
	DeleteSupplier(ctx context.Context, s *models.Supplier) error
}

type SupplierService struct {
	Repo   SupplierRepo
	Events events.Publisher
}

func (s *SupplierService) Create(ctx context.Context, req transport.CreateSupplierRequest) (*models.Supplier, error) {
	l := logging.FromContext(ctx).With("svc", "supplier.create")

	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	supplier := models.Supplier{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		PhoneNumber:  req.PhoneNumber,
	}
	if err := s.Repo.CreateSupplier(ctx, &supplier); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			l.Warn("supplier_create_error", "status", 409, "reason", "supplier already exists")
			return nil, fmt.Errorf("%w: supplier %q already exists", ErrConflict, req.Name)
		}
		l.Error("supplier_create_error", "status", 500, "error", err)
		return nil, err
	}

	s.emit(ctx, "supplier_created", &supplier)
	return &supplier, nil
}

func (s *SupplierService) FindAll(ctx context.Context) ([]models.Supplier, error) {
	return s.Repo.ListSuppliers(ctx)
}

func (s *SupplierService) FindOne(ctx context.Context, id uint) (*models.Supplier, error) {
	supplier, err := s.Repo.GetSupplier(ctx, id)
	if err != nil {
		return nil, notFound(err, "supplier with ID %d not found", id)
	}
	return supplier, nil
}

func (s *SupplierService) Update(ctx context.Context, id uint, req transport.UpdateSupplierRequest) (*models.Supplier, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	supplier, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.ContactEmail != nil {
		supplier.ContactEmail = *req.ContactEmail
	}
	if req.PhoneNumber != nil {
		supplier.PhoneNumber = *req.PhoneNumber
	}

	if err := s.Repo.SaveSupplier(ctx, supplier); err != nil {
		logging.FromContext(ctx).Error("supplier_update_error", "status", 500, "supplier_id", id, "error", err)
		return nil, err
	}

	s.emit(ctx, "supplier_updated", supplier)
	return supplier, nil
}

func (s *SupplierService) Remove(ctx context.Context, id uint) error {
	supplier, err := s.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteSupplier(ctx, supplier); err != nil {
		logging.FromContext(ctx).Error("supplier_delete_error", "status", 500, "supplier_id", id, "error", err)
		return err
	}

	s.emit(ctx, "supplier_deleted", supplier)
	return nil
}

func (s *SupplierService) emit(ctx context.Context, typ string, sup *models.Supplier) {
	events.Emit(ctx, s.Events, events.TopicCatalog, sup.ID, map[string]any{
		"type":       typ,
		"supplierID": sup.ID,
		"name":       sup.Name,
	})
}
