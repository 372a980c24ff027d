// Package gateway simulates a remote API boundary over the single
// authoritative storefront service: every operation waits out an
// artificial network latency before touching state. The original
// dispatched by substring-matching operation text against a fixed
// list; here that is a closed set of typed methods instead.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hovixy/storefront/internal/core/domain"
	"github.com/hovixy/storefront/internal/core/service"
)

const (
	DefaultQueryDelay    = 200 * time.Millisecond
	DefaultMutationDelay = 300 * time.Millisecond
)

type Gateway struct {
	svc           service.Storefront
	queryDelay    time.Duration
	mutationDelay time.Duration
}

type Opt func(*Gateway)

// DelaysOpt overrides the simulated query and mutation latencies.
func DelaysOpt(query, mutation time.Duration) Opt {
	return func(g *Gateway) {
		g.queryDelay = query
		g.mutationDelay = mutation
	}
}

func New(svc service.Storefront, opts ...Opt) Gateway {
	g := Gateway{
		svc:           svc,
		queryDelay:    DefaultQueryDelay,
		mutationDelay: DefaultMutationDelay,
	}
	for _, o := range opts {
		o(&g)
	}
	return g
}

// Products runs the products query: the filter engine applied over
// the catalog.
func (g Gateway) Products(ctx context.Context, c domain.FilterCriteria) ([]domain.Product, error) {
	const op = "Gateway.Products"

	if err := g.query(ctx, op); err != nil {
		return nil, err
	}
	return g.svc.Products(c), nil
}

// Product returns the single match, or nil when the id is unknown.
func (g Gateway) Product(ctx context.Context, id string) (*domain.Product, error) {
	const op = "Gateway.Product"

	if err := g.query(ctx, op); err != nil {
		return nil, err
	}
	p, err := g.svc.Product(id)
	if err != nil {
		return nil, nil
	}
	return &p, nil
}

func (g Gateway) Categories(ctx context.Context) ([]string, error) {
	const op = "Gateway.Categories"

	if err := g.query(ctx, op); err != nil {
		return nil, err
	}
	return g.svc.Categories(), nil
}

func (g Gateway) Cart(ctx context.Context) ([]domain.CartLine, error) {
	const op = "Gateway.Cart"

	if err := g.query(ctx, op); err != nil {
		return nil, err
	}
	return g.svc.Cart().Lines, nil
}

// User returns the current identity, or nil when nobody is signed in.
func (g Gateway) User(ctx context.Context) (*domain.User, error) {
	const op = "Gateway.User"

	if err := g.query(ctx, op); err != nil {
		return nil, err
	}
	u, ok := g.svc.User()
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (g Gateway) Login(ctx context.Context, email, password string) (domain.User, error) {
	const op = "Gateway.Login"

	if err := g.mutation(ctx, op); err != nil {
		return domain.User{}, err
	}
	u, err := g.svc.SignIn(email, password)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// Logout clears the identity and the cart in one call.
func (g Gateway) Logout(ctx context.Context) (bool, error) {
	const op = "Gateway.Logout"

	if err := g.mutation(ctx, op); err != nil {
		return false, err
	}
	if err := g.svc.SignOut(); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

// AddToCart adds quantity units at once, defaulting to 1 when the
// caller passes zero. An unknown product id rejects the operation
// with domain.ErrNotFound.
func (g Gateway) AddToCart(ctx context.Context, productID string, quantity int) (domain.CartLine, error) {
	const op = "Gateway.AddToCart"

	if err := g.mutation(ctx, op); err != nil {
		return domain.CartLine{}, err
	}
	if quantity == 0 {
		quantity = 1
	}
	line, err := g.svc.AddToCart(productID, quantity)
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("%s: %w", op, err)
	}
	return line, nil
}

func (g Gateway) RemoveFromCart(ctx context.Context, productID string) (bool, error) {
	const op = "Gateway.RemoveFromCart"

	if err := g.mutation(ctx, op); err != nil {
		return false, err
	}
	g.svc.RemoveFromCart(productID)
	return true, nil
}

// UpdateCartQuantity sets the line quantity and returns the
// resulting line; absent lines and non-positive quantities leave
// the cart as it was.
func (g Gateway) UpdateCartQuantity(ctx context.Context, productID string, quantity int) (domain.CartLine, error) {
	const op = "Gateway.UpdateCartQuantity"

	if err := g.mutation(ctx, op); err != nil {
		return domain.CartLine{}, err
	}
	line, _ := g.svc.UpdateCartQuantity(productID, quantity)
	return line, nil
}

// Checkout places the order and clears the cart.
func (g Gateway) Checkout(ctx context.Context) (domain.Order, error) {
	const op = "Gateway.Checkout"

	if err := g.mutation(ctx, op); err != nil {
		return domain.Order{}, err
	}
	return g.svc.Checkout(), nil
}

func (g Gateway) query(ctx context.Context, op string) error {
	return g.wait(ctx, op, g.queryDelay)
}

func (g Gateway) mutation(ctx context.Context, op string) error {
	return g.wait(ctx, op, g.mutationDelay)
}

// wait models network latency. Unlike the original, the wait honors
// context cancellation so a torn-down caller never receives a result.
func (g Gateway) wait(ctx context.Context, op string, d time.Duration) error {
	slog.Debug("simulating latency", "op", op, "delay", d)

	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	case <-timer.C:
		return nil
	}
}
