package transport

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/shopspring/decimal"
)

const (
	MinPasswordLength = 6
	// bcrypt rejects longer inputs.
	MaxPasswordBytes = 72

	// prices are stored as decimal(10,2).
	PriceScale = 2
)

var maxPrice = decimal.New(1, 10-PriceScale)

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(MinPasswordLength, MaxPasswordBytes)),
	)
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
	)
}

func (r UpdateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 255)),
	)
}

func (r CreateSupplierRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.ContactEmail, validation.Required, is.Email),
		validation.Field(&r.PhoneNumber, validation.Required),
	)
}

func (r UpdateSupplierRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty),
		validation.Field(&r.ContactEmail, validation.NilOrNotEmpty, is.Email),
		validation.Field(&r.PhoneNumber, validation.NilOrNotEmpty),
	)
}

func (r CreateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Price, validation.By(func(interface{}) error { return checkPrice(r.Price) })),
		validation.Field(&r.SKU, validation.Required),
		validation.Field(&r.Stock, validation.Min(0)),
	)
}

func (r UpdateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty),
		validation.Field(&r.Price, validation.By(func(interface{}) error {
			if r.Price == nil {
				return nil
			}
			return checkPrice(*r.Price)
		})),
		validation.Field(&r.SKU, validation.NilOrNotEmpty),
		validation.Field(&r.Stock, validation.Min(0)),
	)
}

// checkPrice looks at the decimal itself: ozzo unwraps driver.Valuer
// values, so a rule would only ever see decimal.Decimal as a string.
func checkPrice(d decimal.Decimal) error {
	switch {
	case !d.IsPositive():
		return errors.New("must be greater than 0")
	case !d.Equal(d.Truncate(PriceScale)):
		return fmt.Errorf("must have at most %d decimal places", PriceScale)
	case d.GreaterThanOrEqual(maxPrice):
		return fmt.Errorf("must be less than %s", maxPrice)
	}
	return nil
}
