package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/product_catalog/internal/models"
)

func (r *GormRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	var items []models.Product
	if err := r.DB.WithContext(ctx).
		Preload("Category").
		Preload("Suppliers").
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).
		Preload("Category").
		Preload("Suppliers").
		First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct inserts the product row and its product_suppliers rows.
// The referenced category and suppliers are never written.
func (r *GormRepo) CreateProduct(ctx context.Context, p *models.Product) error {
	return r.DB.WithContext(ctx).Omit("Category", "Suppliers.*").Create(p).Error
}

// SaveProduct writes the scalar columns and category_id, then replaces the
// supplier set with p.Suppliers.
func (r *GormRepo) SaveProduct(ctx context.Context, p *models.Product) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(p).Error; err != nil {
			return err
		}
		suppliers := tx.Model(p).Association("Suppliers")
		if len(p.Suppliers) == 0 {
			return suppliers.Clear()
		}
		return suppliers.Replace(p.Suppliers)
	})
}

func (r *GormRepo) DeleteProduct(ctx context.Context, p *models.Product) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(p).Association("Suppliers").Clear(); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Delete(p).Error
	})
}
