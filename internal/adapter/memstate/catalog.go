// Package memstate holds the in-memory storefront state: the product
// catalog and the cart ledger. All state lives for one session, there
// is no durability. Stores are mutex-guarded because gateway latency
// lets operations interleave in real time.
package memstate

import (
	"fmt"
	"slices"
	"sync"

	"github.com/hovixy/storefront/internal/core/domain"
	"github.com/hovixy/storefront/internal/core/port"
)

var _ port.CatalogStore = (*Catalog)(nil)

type Catalog struct {
	mu      sync.Mutex
	items   []domain.Product
	loading bool
	errMsg  string
}

func NewCatalog(seed []domain.Product) *Catalog {
	return &Catalog{items: slices.Clone(seed)}
}

// List returns all products in insertion order.
func (c *Catalog) List() []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

func (c *Catalog) Get(id string) (domain.Product, error) {
	const op = "Catalog.Get"

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.items {
		if p.ProductID == id {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("%s: %q: %w", op, id, domain.ErrNotFound)
}

func (c *Catalog) Replace(ps []domain.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = slices.Clone(ps)
}

func (c *Catalog) SetLoading(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = v
}

func (c *Catalog) SetError(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errMsg = msg
}

func (c *Catalog) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Catalog) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}
