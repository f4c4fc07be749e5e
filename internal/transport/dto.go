package transport

import "github.com/shopspring/decimal"

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type ProfileResponse struct {
	UserID   uint     `json:"userId"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type UpdateCategoryRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description Optional[string] `json:"description,omitzero"`
}

type CreateSupplierRequest struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail"`
	PhoneNumber  string `json:"phoneNumber"`
}

type UpdateSupplierRequest struct {
	Name         *string `json:"name,omitempty"`
	ContactEmail *string `json:"contactEmail,omitempty"`
	PhoneNumber  *string `json:"phoneNumber,omitempty"`
}

type CreateProductRequest struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	SKU         string          `json:"sku"`
	Description *string         `json:"description,omitempty"`
	Stock       int             `json:"stock"`
	CategoryID  *uint           `json:"categoryId,omitempty"`
	ProviderID  *uint           `json:"providerId,omitempty"`
}

// UpdateProductRequest changes only the keys present in the body.
// A null categoryId detaches the category, a null providerId empties the
// supplier set.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	SKU         *string          `json:"sku,omitempty"`
	Description Optional[string] `json:"description,omitzero"`
	Stock       *int             `json:"stock,omitempty"`
	CategoryID  Optional[uint]   `json:"categoryId,omitzero"`
	ProviderID  Optional[uint]   `json:"providerId,omitzero"`
}
