// Package service wires the storefront stores behind one mutation
// surface. Both the direct dispatch path and the mock gateway go
// through Storefront, so there is a single authoritative copy of
// catalog, cart and session state.
package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hovixy/storefront/internal/core/domain"
	"github.com/hovixy/storefront/internal/core/port"
)

type Storefront struct {
	catalog port.CatalogStore
	cart    port.CartLedger
	session port.SessionStore
	theme   port.ThemeStore
}

func New(
	catalog port.CatalogStore,
	cart port.CartLedger,
	session port.SessionStore,
	theme port.ThemeStore,
) Storefront {
	return Storefront{catalog, cart, session, theme}
}

// Products derives the displayed subset and order from the current
// catalog, recomputed on every call.
func (s Storefront) Products(c domain.FilterCriteria) []domain.Product {
	return domain.ApplyFilter(s.catalog.List(), c)
}

func (s Storefront) Product(id string) (domain.Product, error) {
	const op = "Storefront.Product"

	p, err := s.catalog.Get(id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// Categories returns the deduplicated category labels across the
// catalog, in order of first occurrence.
func (s Storefront) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range s.catalog.List() {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

func (s Storefront) DefaultFilter() domain.FilterCriteria {
	return domain.DefaultFilter(s.catalog.List())
}

// AddToCart puts quantity units of the referenced product into the
// cart. Unknown product ids fail with domain.ErrNotFound.
func (s Storefront) AddToCart(productID string, quantity int) (domain.CartLine, error) {
	const op = "Storefront.AddToCart"

	p, err := s.catalog.Get(productID)
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("%s: %w", op, err)
	}
	return s.cart.Add(p, quantity), nil
}

func (s Storefront) RemoveFromCart(productID string) {
	s.cart.Remove(productID)
}

func (s Storefront) UpdateCartQuantity(productID string, quantity int) (domain.CartLine, bool) {
	return s.cart.UpdateQuantity(productID, quantity)
}

func (s Storefront) ClearCart() {
	s.cart.Clear()
}

func (s Storefront) ToggleCart() bool {
	return s.cart.ToggleVisibility()
}

func (s Storefront) Cart() domain.Cart {
	return s.cart.Snapshot()
}

// Checkout clears the cart and returns an order confirmation for
// what it held. Stock counts are informational and stay untouched.
// An empty cart still checks out, producing an empty order.
func (s Storefront) Checkout() domain.Order {
	const op = "Storefront.Checkout"

	cart := s.cart.Snapshot()
	s.cart.Clear()

	order := domain.Order{
		OrderID:  uuid.NewString(),
		Lines:    cart.Lines,
		Total:    cart.Subtotal(),
		PlacedAt: time.Now(),
	}

	slog.Info("order placed",
		"op", op, "orderID", order.OrderID,
		"items", cart.ItemCount(), "total", order.Total)
	return order
}

func (s Storefront) SignIn(email, password string) (domain.User, error) {
	const op = "Storefront.SignIn"

	u, err := s.session.SignIn(email, password)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// SignOut clears the identity and the cart. The original kept two
// diverging sign-out paths; this port unifies them on the stronger
// contract, see DESIGN.md.
func (s Storefront) SignOut() error {
	const op = "Storefront.SignOut"

	if err := s.session.SignOut(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.cart.Clear()
	return nil
}

func (s Storefront) RestoreSession() {
	s.session.Restore()
}

func (s Storefront) User() (domain.User, bool) {
	return s.session.Current()
}

func (s Storefront) Theme() domain.Theme {
	return s.theme.Theme()
}

func (s Storefront) ToggleTheme() (domain.Theme, error) {
	const op = "Storefront.ToggleTheme"

	t, err := s.theme.Toggle()
	if err != nil {
		return t, fmt.Errorf("%s: %w", op, err)
	}
	return t, nil
}

// SetCatalog replaces the product list, flipping the loading flag
// around the swap the way the loading view expects.
func (s Storefront) SetCatalog(ps []domain.Product) {
	s.catalog.SetLoading(true)
	s.catalog.Replace(ps)
	s.catalog.SetError("")
	s.catalog.SetLoading(false)
}
