package service_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hovixy/storefront/internal/adapter/localstore"
	"github.com/hovixy/storefront/internal/adapter/memstate"
	"github.com/hovixy/storefront/internal/adapter/prefs"
	"github.com/hovixy/storefront/internal/adapter/session"
	"github.com/hovixy/storefront/internal/core/domain"
	"github.com/hovixy/storefront/internal/core/service"
)

func seed() []domain.Product {
	return []domain.Product{
		{ProductID: "1", Name: "Quantum Laptop X1", Price: 2999.99, Category: "Electronics", Rating: 4.8},
		{ProductID: "2", Name: "Neural Headset Pro", Price: 799.99, Category: "Electronics", Rating: 4.6},
		{ProductID: "3", Name: "Solar Jacket", Price: 249.99, Category: "Fashion", Rating: 4.4},
	}
}

func newStorefront(t *testing.T) service.Storefront {
	t.Helper()
	kv := localstore.New(afero.NewMemMapFs(), "/data")
	return service.New(
		memstate.NewCatalog(seed()),
		memstate.NewCart(),
		session.New(kv),
		prefs.NewThemeStore(kv),
	)
}

func TestProducts(t *testing.T) {
	t.Run("AppliesCriteria", func(t *testing.T) {
		svc := newStorefront(t)

		c := svc.DefaultFilter()
		c.Category = "electronics"
		c.SortBy = domain.SortByPrice
		c.SortOrder = domain.SortDesc

		got := svc.Products(c)
		require.Len(t, got, 2)
		assert.Equal(t, "1", got[0].ProductID)
		assert.Equal(t, "2", got[1].ProductID)
	})

	t.Run("ByID", func(t *testing.T) {
		svc := newStorefront(t)

		p, err := svc.Product("3")
		require.NoError(t, err)
		assert.Equal(t, "Solar Jacket", p.Name)

		_, err = svc.Product("nope")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCategories(t *testing.T) {
	t.Run("DedupedInFirstOccurrenceOrder", func(t *testing.T) {
		svc := newStorefront(t)

		assert.Equal(t, []string{"Electronics", "Fashion"}, svc.Categories())
	})
}

func TestCartFlow(t *testing.T) {
	t.Run("AddUnknownProductFails", func(t *testing.T) {
		svc := newStorefront(t)

		_, err := svc.AddToCart("nope", 1)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Empty(t, svc.Cart().Lines)
	})

	t.Run("CheckoutClearsCartAndMintsOrder", func(t *testing.T) {
		svc := newStorefront(t)

		_, err := svc.AddToCart("1", 2)
		require.NoError(t, err)
		_, err = svc.AddToCart("2", 1)
		require.NoError(t, err)

		order := svc.Checkout()

		assert.NotEmpty(t, order.OrderID)
		assert.Len(t, order.Lines, 2)
		assert.InDelta(t, 2999.99*2+799.99, order.Total, 1e-9)
		assert.False(t, order.PlacedAt.IsZero())
		assert.Empty(t, svc.Cart().Lines)
	})

	t.Run("EmptyCheckoutStillSucceeds", func(t *testing.T) {
		svc := newStorefront(t)

		order := svc.Checkout()
		assert.NotEmpty(t, order.OrderID)
		assert.Zero(t, order.Total)
	})
}

func TestSessionFlow(t *testing.T) {
	t.Run("SignOutClearsIdentityAndCart", func(t *testing.T) {
		svc := newStorefront(t)

		_, err := svc.SignIn("alex@example.com", "pw")
		require.NoError(t, err)
		_, err = svc.AddToCart("1", 1)
		require.NoError(t, err)

		require.NoError(t, svc.SignOut())

		_, ok := svc.User()
		assert.False(t, ok)
		assert.Empty(t, svc.Cart().Lines)
	})
}

func TestSetCatalog(t *testing.T) {
	t.Run("ReplacesAndResetsFlags", func(t *testing.T) {
		svc := newStorefront(t)

		svc.SetCatalog([]domain.Product{{ProductID: "9", Name: "New", Category: "Misc"}})

		got := svc.Products(domain.FilterCriteria{PriceRange: domain.PriceRange{Max: 1}})
		require.Len(t, got, 1)
		assert.Equal(t, "9", got[0].ProductID)
	})
}
