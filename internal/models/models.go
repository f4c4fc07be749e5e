package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const RoleUser = "user"

type User struct {
	ID           uint                        `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string                      `gorm:"uniqueIndex;not null"     json:"username"`
	Email        string                      `gorm:"not null"                 json:"email"`
	PasswordHash string                      `gorm:"column:password;not null" json:"-"`
	Roles        datatypes.JSONSlice[string] `gorm:"not null"                 json:"roles"`
}

type Category struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null"     json:"name"`
	Description *string   `json:"description"`
	Products    []Product `gorm:"constraint:OnDelete:SET NULL;" json:"products,omitempty"`
}

type Supplier struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"   json:"id"`
	Name         string    `gorm:"not null"                   json:"name"`
	ContactEmail string    `gorm:"not null"                   json:"contactEmail"`
	PhoneNumber  string    `gorm:"not null"                   json:"phoneNumber"`
	Products     []Product `gorm:"many2many:product_suppliers" json:"products,omitempty"`
}

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"    json:"id"`
	Name        string          `gorm:"not null"                    json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	SKU         string          `gorm:"not null"                    json:"sku"`
	Description *string         `json:"description"`
	Stock       int             `gorm:"not null"                    json:"stock"`
	CategoryID  *uint           `gorm:"index"                       json:"categoryId"`
	Category    *Category       `json:"category,omitempty"`
	Suppliers   []Supplier      `gorm:"many2many:product_suppliers" json:"suppliers"`
}

// All lists every table owned by the service, in migration order.
func All() []any {
	return []any{&User{}, &Category{}, &Supplier{}, &Product{}}
}
