package memstate

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/hovixy/storefront/internal/core/domain"
	"github.com/hovixy/storefront/internal/core/port"
)

var _ port.CartLedger = (*Cart)(nil)

// Cart is the session cart ledger: at most one line per product id,
// quantity at least 1 on every stored line.
type Cart struct {
	mu    sync.Mutex
	lines []domain.CartLine
	open  bool
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts quantity units of p into the cart, incrementing the
// existing line when there is one. A quantity below 1 counts as 1.
// Stock is not checked, it stays informational.
func (c *Cart) Add(p domain.Product, quantity int) domain.CartLine {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.find(p.ProductID); i >= 0 {
		c.lines[i].Quantity += quantity
		return c.lines[i]
	}

	line := domain.CartLine{Product: p, Quantity: quantity}
	c.lines = append(c.lines, line)
	return line
}

// Remove deletes the line for productID, a no-op when absent.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.find(productID); i >= 0 {
		c.lines = slices.Delete(c.lines, i, i+1)
	}
}

// UpdateQuantity sets the line's quantity. A quantity below 1 is
// rejected here in the ledger, so no stored line ever goes
// non-positive. Returns the resulting line and whether it exists
// and was updated.
func (c *Cart) UpdateQuantity(productID string, quantity int) (domain.CartLine, bool) {
	const op = "Cart.UpdateQuantity"

	if quantity < 1 {
		slog.Warn("rejected non-positive quantity",
			"op", op, "productID", productID, "quantity", quantity)
		return domain.CartLine{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.find(productID)
	if i < 0 {
		return domain.CartLine{}, false
	}
	c.lines[i].Quantity = quantity
	return c.lines[i], true
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// ToggleVisibility flips the open/closed display flag and returns
// the new value.
func (c *Cart) ToggleVisibility() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = !c.open
	return c.open
}

func (c *Cart) Snapshot() domain.Cart {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.Cart{Lines: slices.Clone(c.lines), Open: c.open}
}

func (c *Cart) find(productID string) int {
	return slices.IndexFunc(c.lines, func(l domain.CartLine) bool {
		return l.Product.ProductID == productID
	})
}
