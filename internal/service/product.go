package service

import (
	"context"

	"github.com/Skotchmaster/product_catalog/internal/events"
	"github.com/Skotchmaster/product_catalog/internal/models"
	"github.com/Skotchmaster/product_catalog/internal/transport"
	"github.com/Skotchmaster/product_catalog/pkg/logging"
)

type ProductRepo interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	SaveProduct(ctx context.Context, p *models.Product) error
	DeleteProduct(ctx context.Context, p *models.Product) error

	FindCategory(ctx context.Context, id uint) (*models.Category, error)
	FindSupplier(ctx context.Context, id uint) (*models.Supplier, error)
}

type ProductService struct {
	Repo   ProductRepo
	Events events.Publisher
}

// Create rejects unknown category or supplier ids with ErrNotFound before
// anything is written.
func (s *ProductService) Create(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "product.create")

	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	product := models.Product{
		Name:        req.Name,
		Price:       req.Price,
		SKU:         req.SKU,
		Description: req.Description,
		Stock:       req.Stock,
		Suppliers:   []models.Supplier{},
	}

	if req.CategoryID != nil {
		category, err := s.category(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		product.CategoryID, product.Category = &category.ID, category
	}

	if req.ProviderID != nil {
		supplier, err := s.supplier(ctx, *req.ProviderID)
		if err != nil {
			return nil, err
		}
		product.Suppliers = []models.Supplier{*supplier}
	}

	if err := s.Repo.CreateProduct(ctx, &product); err != nil {
		l.Error("product_create_error", "status", 500, "reason", "cannot add product to db", "error", err)
		return nil, err
	}

	s.emit(ctx, "product_created", &product)
	return &product, nil
}

func (s *ProductService) FindAll(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx)
}

func (s *ProductService) FindOne(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, notFound(err, "product with ID %d not found", id)
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id uint, req transport.UpdateProductRequest) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "product.update", "product_id", id)

	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	product, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.SKU != nil {
		product.SKU = *req.SKU
	}
	if req.Description.Set {
		product.Description = req.Description.Ptr()
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if req.CategoryID.Set {
		if !req.CategoryID.Valid {
			product.CategoryID, product.Category = nil, nil
		} else {
			category, err := s.category(ctx, req.CategoryID.Value)
			if err != nil {
				return nil, err
			}
			product.CategoryID, product.Category = &category.ID, category
		}
	}

	if req.ProviderID.Set {
		if !req.ProviderID.Valid {
			product.Suppliers = []models.Supplier{}
		} else {
			supplier, err := s.supplier(ctx, req.ProviderID.Value)
			if err != nil {
				return nil, err
			}
			product.Suppliers = []models.Supplier{*supplier}
		}
	}

	if err := s.Repo.SaveProduct(ctx, product); err != nil {
		l.Error("product_update_error", "status", 500, "reason", "cannot save product", "error", err)
		return nil, err
	}

	s.emit(ctx, "product_updated", product)
	return product, nil
}

func (s *ProductService) Remove(ctx context.Context, id uint) error {
	product, err := s.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteProduct(ctx, product); err != nil {
		logging.FromContext(ctx).Error("product_delete_error", "status", 500, "product_id", id, "error", err)
		return err
	}

	s.emit(ctx, "product_deleted", product)
	return nil
}

func (s *ProductService) category(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.Repo.FindCategory(ctx, id)
	if err != nil {
		return nil, notFound(err, "category with ID %d not found", id)
	}
	return category, nil
}

func (s *ProductService) supplier(ctx context.Context, id uint) (*models.Supplier, error) {
	supplier, err := s.Repo.FindSupplier(ctx, id)
	if err != nil {
		return nil, notFound(err, "supplier with ID %d not found", id)
	}
	return supplier, nil
}

func (s *ProductService) emit(ctx context.Context, typ string, p *models.Product) {
	events.Emit(ctx, s.Events, events.TopicCatalog, p.ID, map[string]any{
		"type":      typ,
		"productID": p.ID,
		"name":      p.Name,
	})
}
