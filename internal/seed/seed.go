// Package seed loads the demo catalog and the two default accounts.
package seed

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/product_catalog/internal/models"
	pkg_hash "github.com/Skotchmaster/product_catalog/pkg/hash"
	"github.com/Skotchmaster/product_catalog/pkg/logging"
)

type category struct {
	name, description string
}

type supplier struct {
	name, email, phone string
}

type product struct {
	name, price, sku, description string
	stock                         int
	category, supplier            string
}

type account struct {
	username, password, email, role string
}

var (
	categories = []category{
		{"Electrónica", "Productos electrónicos y tecnológicos"},
		{"Ropa", "Prendas de vestir para todas las edades"},
		{"Hogar", "Artículos para el hogar y decoración"},
	}
	suppliers = []supplier{
		{"Tecnología Global", "contacto@tecnologiaglobal.com", "+54 11 1234 5678"},
		{"Moda Trends", "ventas@modatrends.com", "+54 11 8765 4321"},
		{"Hogar Diseño", "info@hogardiseno.com", "+54 11 5555 7777"},
	}
	products = []product{
		{"Smartphone X2000", "599.99", "TECH-001", "Smartphone de última generación", 50, "Electrónica", "Tecnología Global"},
		{"Camisa Casual", "79.99", "CLOTH-001", "Camisa de algodón para hombre", 100, "Ropa", "Moda Trends"},
		{"Lámpara de Mesa Moderna", "129.99", "HOME-001", "Lámpara decorativa para sala", 30, "Hogar", "Hogar Diseño"},
	}
	accounts = []account{
		{"admin", "admin123", "admin@example.com", "admin"},
		{"user", "user123", "user@example.com", models.RoleUser},
	}
)

// Run inserts whatever fixture rows are missing, matching existing rows by
// natural key (category name, supplier name, product sku, username).
// Running it again is a no-op.
func Run(ctx context.Context, db *gorm.DB) error {
	l := logging.FromContext(ctx).With("svc", "seed")
	created := 0

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categoryIDs := make(map[string]uint, len(categories))
		for _, c := range categories {
			row := models.Category{}
			res := tx.Where(models.Category{Name: c.name}).
				Attrs(models.Category{Description: &c.description}).
				FirstOrCreate(&row)
			if res.Error != nil {
				return fmt.Errorf("seed category %q: %w", c.name, res.Error)
			}
			created += int(res.RowsAffected)
			categoryIDs[c.name] = row.ID
		}

		supplierRows := make(map[string]models.Supplier, len(suppliers))
		for _, s := range suppliers {
			row := models.Supplier{}
			res := tx.Where(models.Supplier{Name: s.name}).
				Attrs(models.Supplier{ContactEmail: s.email, PhoneNumber: s.phone}).
				FirstOrCreate(&row)
			if res.Error != nil {
				return fmt.Errorf("seed supplier %q: %w", s.name, res.Error)
			}
			created += int(res.RowsAffected)
			supplierRows[s.name] = row
		}

		for _, p := range products {
			categoryID := categoryIDs[p.category]
			row := models.Product{}
			res := tx.Omit(clause.Associations).
				Where(models.Product{SKU: p.sku}).
				Attrs(models.Product{
					Name:        p.name,
					Price:       decimal.RequireFromString(p.price),
					Description: &p.description,
					Stock:       p.stock,
					CategoryID:  &categoryID,
				}).
				FirstOrCreate(&row)
			if res.Error != nil {
				return fmt.Errorf("seed product %q: %w", p.sku, res.Error)
			}
			if res.RowsAffected == 0 {
				continue
			}
			created++

			sup := supplierRows[p.supplier]
			if err := tx.Model(&row).Association("Suppliers").Append(&sup); err != nil {
				return fmt.Errorf("seed product %q suppliers: %w", p.sku, err)
			}
		}

		for _, a := range accounts {
			var n int64
			if err := tx.Model(&models.User{}).Where("username = ?", a.username).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				continue
			}
			pwHash, err := pkg_hash.HashPassword(a.password)
			if err != nil {
				return err
			}
			user := models.User{Username: a.username, Email: a.email, PasswordHash: pwHash, Roles: []string{a.role}}
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&user)
			if res.Error != nil {
				return fmt.Errorf("seed user %q: %w", a.username, res.Error)
			}
			created += int(res.RowsAffected)
		}
		return nil
	})
	if err != nil {
		l.Error("seed_failed", "error", err)
		return err
	}

	l.Info("seed_completed", "created", created)
	return nil
}
