package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/product_catalog/internal/events"
	"github.com/Skotchmaster/product_catalog/internal/transport"
)

func acmeRequest() transport.CreateSupplierRequest {
	return transport.CreateSupplierRequest{Name: "Acme", ContactEmail: "sales@acme.io", PhoneNumber: "+1 555 0100"}
}

func TestSupplierService_CRUD(t *testing.T) {
	pub := &events.Memory{}
	svc := &SupplierService{Repo: newTestRepo(t), Events: pub}
	ctx := context.Background()

	created, err := svc.Create(ctx, acmeRequest())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	updated, err := svc.Update(ctx, created.ID, transport.UpdateSupplierRequest{PhoneNumber: strPtr("+1 555 0199")})
	require.NoError(t, err)
	assert.Equal(t, "+1 555 0199", updated.PhoneNumber)
	assert.Equal(t, "Acme", updated.Name)
	assert.Equal(t, "sales@acme.io", updated.ContactEmail)

	got, err := svc.FindOne(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "+1 555 0199", got.PhoneNumber)

	list, err := svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Remove(ctx, created.ID))
	_, err = svc.FindOne(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, []string{"supplier_created", "supplier_updated", "supplier_deleted"}, pub.Types())
}

func TestSupplierService_Validation(t *testing.T) {
	svc := &SupplierService{Repo: newTestRepo(t)}
	ctx := context.Background()

	_, err := svc.Create(ctx, transport.CreateSupplierRequest{Name: "Acme", ContactEmail: "not-an-email", PhoneNumber: "1"})
	require.ErrorIs(t, err, ErrValidation)

	created, err := svc.Create(ctx, acmeRequest())
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, transport.UpdateSupplierRequest{ContactEmail: strPtr("broken")})
	require.ErrorIs(t, err, ErrValidation)
}

func TestSupplierService_NotFound(t *testing.T) {
	svc := &SupplierService{Repo: newTestRepo(t)}
	ctx := context.Background()

	_, err := svc.Update(ctx, 7, transport.UpdateSupplierRequest{Name: strPtr("x")})
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, svc.Remove(ctx, 7), ErrNotFound)
}

func TestSupplierService_RemoveKeepsProducts(t *testing.T) {
	r := newTestRepo(t)
	suppliers := &SupplierService{Repo: r}
	products := &ProductService{Repo: r}
	ctx := context.Background()

	acme, err := suppliers.Create(ctx, acmeRequest())
	require.NoError(t, err)

	p, err := products.Create(ctx, transport.CreateProductRequest{
		Name: "Hammer", Price: decimal.RequireFromString("9.99"), SKU: "H-1", ProviderID: &acme.ID,
	})
	require.NoError(t, err)

	loaded, err := suppliers.FindOne(ctx, acme.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Products, 1)

	require.NoError(t, suppliers.Remove(ctx, acme.ID))

	kept, err := products.FindOne(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, kept.Suppliers)
}
