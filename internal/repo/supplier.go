package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/product_catalog/internal/models"
)

func (r *GormRepo) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	var items []models.Supplier
	if err := r.DB.WithContext(ctx).Preload("Products").Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetSupplier(ctx context.Context, id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.DB.WithContext(ctx).Preload("Products").First(&supplier, id).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *GormRepo) CreateSupplier(ctx context.Context, s *models.Supplier) error {
	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Create(s).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *GormRepo) SaveSupplier(ctx context.Context, s *models.Supplier) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Save(s).Error
}

// DeleteSupplier removes the product_suppliers rows and then the supplier.
func (r *GormRepo) DeleteSupplier(ctx context.Context, s *models.Supplier) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(s).Association("Products").Clear(); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Delete(s).Error
	})
}

func (r *GormRepo) FindSupplier(ctx context.Context, id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.DB.WithContext(ctx).First(&supplier, id).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}
